package entities

import (
	"time"
)

// LiveEventKind names an ephemeral map event
type LiveEventKind string

const (
	LiveTokenMoved   LiveEventKind = "token_moved"
	LiveTokenRemoved LiveEventKind = "token_removed"
	LiveTokenAdded   LiveEventKind = "token_added" // Payload not guaranteed
)

// LiveEvent is an at-most-once notification broadcast to a map's viewers.
type LiveEvent struct {
	Kind    LiveEventKind `json:"kind"`
	MapID   string        `json:"map_id"`
	TokenID string        `json:"token_id,omitempty"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
}

// ChangeTable is the kind of row a durable change touched
type ChangeTable string

const (
	ChangeTableMaps       ChangeTable = "maps"
	ChangeTableTokens     ChangeTable = "tokens"
	ChangeTableZones      ChangeTable = "zones"
	ChangeTableRestPoints ChangeTable = "rest_points"
	ChangeTableChurches   ChangeTable = "churches"
)

// ChangeOp is the mutation applied to the row
type ChangeOp string

const (
	ChangeOpInsert ChangeOp = "insert"
	ChangeOpUpdate ChangeOp = "update"
	ChangeOpDelete ChangeOp = "delete"
)

// Change is one committed mutation on a map's change feed.
type Change struct {
	ID    string      `json:"id"` // Feed position
	MapID string      `json:"map_id"`
	Table ChangeTable `json:"table"`
	Op    ChangeOp    `json:"op"`
	RowID string      `json:"row_id"`
	At    time.Time   `json:"at"`
}
