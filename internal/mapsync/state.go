package mapsync

import (
	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

// State is where a view is in its lifecycle.
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateLive
	StateReconciling
	StateClosed
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateLive:
		return "live"
	case StateReconciling:
		return "reconciling"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// EventKind names an outbound view event
type EventKind string

const (
	// EventSnapshot follows every full replace.
	EventSnapshot EventKind = "snapshot"
	// EventTokenMoved and EventTokenRemoved mirror applied ephemeral patches.
	EventTokenMoved   EventKind = "token_moved"
	EventTokenRemoved EventKind = "token_removed"
	// EventState reports a state transition.
	EventState EventKind = "state"
	// EventSyncFailed reports a failed refetch; the last snapshot stays.
	EventSyncFailed EventKind = "sync_failed"
)

// Event is what a view tells its consumer.
type Event struct {
	Kind     EventKind             `json:"kind"`
	State    string                `json:"state,omitempty"`
	Snapshot *entities.MapSnapshot `json:"snapshot,omitempty"`
	TokenID  string                `json:"token_id,omitempty"`
	X        float64               `json:"x"`
	Y        float64               `json:"y"`
	Error    string                `json:"error,omitempty"`
}
