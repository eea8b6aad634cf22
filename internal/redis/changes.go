package redis

import (
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

// ChangeStreamMaxLen bounds each map's change stream (approximate trim).
const ChangeStreamMaxLen = 1000

// Stream entry fields
const (
	changeFieldTable = "table"
	changeFieldOp    = "op"
	changeFieldRowID = "row_id"
	changeFieldAt    = "at"
)

// ChangeArgs builds the XADD arguments recording one committed change.
func ChangeArgs(mapID string, table entities.ChangeTable, op entities.ChangeOp, rowID string, at time.Time) *redis.XAddArgs {
	return &redis.XAddArgs{
		Stream: MapChangesKey(mapID),
		MaxLen: ChangeStreamMaxLen,
		Approx: true,
		Values: map[string]any{
			changeFieldTable: string(table),
			changeFieldOp:    string(op),
			changeFieldRowID: rowID,
			changeFieldAt:    at.UnixMilli(),
		},
	}
}

// ParseChange decodes a stream entry written with ChangeArgs.
func ParseChange(mapID string, msg redis.XMessage) (entities.Change, error) {
	change := entities.Change{ID: msg.ID, MapID: mapID}

	table, ok := msg.Values[changeFieldTable].(string)
	if !ok || table == "" {
		return change, fmt.Errorf("change %s: missing %s", msg.ID, changeFieldTable)
	}
	op, ok := msg.Values[changeFieldOp].(string)
	if !ok || op == "" {
		return change, fmt.Errorf("change %s: missing %s", msg.ID, changeFieldOp)
	}
	change.Table = entities.ChangeTable(table)
	change.Op = entities.ChangeOp(op)
	change.RowID, _ = msg.Values[changeFieldRowID].(string)

	if raw, ok := msg.Values[changeFieldAt].(string); ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return change, fmt.Errorf("change %s: bad %s: %w", msg.ID, changeFieldAt, err)
		}
		change.At = time.UnixMilli(ms).UTC()
	}

	return change, nil
}
