// Package world holds the in-memory picture of a single map. A Model is
// owned by exactly one goroutine; none of its methods lock or perform I/O.
package world

import (
	"time"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
)

// Model is the best-known snapshot of one map.
type Model struct {
	mapID      string
	m          *entities.Map
	tokens     map[string]*entities.Token
	order      []string // token ids in snapshot order
	zones      []*entities.LockedZone
	restPoints []*entities.CircleRegion
	churches   []*entities.CircleRegion
	roster     []*entities.PlayerSummary
	fetchedAt  time.Time
}

// New returns an empty model bound to mapID.
func New(mapID string) *Model {
	return &Model{
		mapID:  mapID,
		tokens: make(map[string]*entities.Token),
	}
}

// MapID returns the id the model is bound to
func (m *Model) MapID() string {
	return m.mapID
}

// ReplaceAll swaps in a full snapshot. The snapshot is validated first and
// rejected as a whole if any part belongs to another map or a token breaks
// the player/npc invariant; the model is untouched on error. A snapshot
// without a Map means the map is gone and clears everything.
func (m *Model) ReplaceAll(snap *entities.MapSnapshot) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot is required")
	}
	if err := m.validate(snap); err != nil {
		return err
	}

	snap = snap.Clone()
	m.fetchedAt = snap.FetchedAt
	m.tokens = make(map[string]*entities.Token, len(snap.Tokens))
	m.order = m.order[:0]

	if snap.Map == nil {
		m.m = nil
		m.zones, m.restPoints, m.churches, m.roster = nil, nil, nil, nil
		return nil
	}

	m.m = snap.Map
	for _, t := range snap.Tokens {
		if _, dup := m.tokens[t.ID]; !dup {
			m.order = append(m.order, t.ID)
		}
		m.tokens[t.ID] = t
	}
	m.zones = snap.Zones
	m.restPoints = snap.RestPoints
	m.churches = snap.Churches
	m.roster = snap.Roster
	return nil
}

func (m *Model) validate(snap *entities.MapSnapshot) error {
	if snap.Map == nil {
		return nil
	}
	if snap.Map.ID != m.mapID {
		return errors.InvalidArgumentf("snapshot for map %q applied to model of map %q", snap.Map.ID, m.mapID)
	}
	for _, t := range snap.Tokens {
		if err := m.validateToken(t); err != nil {
			return err
		}
	}
	for _, z := range snap.Zones {
		if z == nil || z.MapID != m.mapID {
			return errors.InvalidArgument("locked zone belongs to another map")
		}
	}
	for _, r := range append(append([]*entities.CircleRegion{}, snap.RestPoints...), snap.Churches...) {
		if r == nil || r.MapID != m.mapID {
			return errors.InvalidArgument("region belongs to another map")
		}
	}
	return nil
}

func (m *Model) validateToken(t *entities.Token) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.MapID != m.mapID {
		return errors.InvalidArgumentf("token %s belongs to map %q", t.ID, t.MapID)
	}
	return nil
}

// PatchTokenPosition moves a known token. It reports false when the token
// is unknown or already at (x, y).
func (m *Model) PatchTokenPosition(id string, x, y float64) bool {
	t, ok := m.tokens[id]
	if !ok || (t.X == x && t.Y == y) {
		return false
	}
	t.X, t.Y = x, y
	return true
}

// RemoveToken drops a token; false when it was not present.
func (m *Model) RemoveToken(id string) bool {
	if _, ok := m.tokens[id]; !ok {
		return false
	}
	delete(m.tokens, id)
	for i, tid := range m.order {
		if tid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// UpsertTokenStub records a token seen only through a low-latency event.
// An existing token just takes the new position; an unknown one is added
// flagged as a stub until the next full replace.
func (m *Model) UpsertTokenStub(t *entities.Token) error {
	if t == nil || t.ID == "" {
		return errors.InvalidArgument("token id is required")
	}
	if t.MapID != m.mapID {
		return errors.InvalidArgumentf("token %s belongs to map %q", t.ID, t.MapID)
	}
	if m.m == nil {
		return errors.FailedPrecondition("model has no map loaded")
	}

	if existing, ok := m.tokens[t.ID]; ok {
		m.PatchTokenPosition(existing.ID, t.X, t.Y)
		return nil
	}

	stub := t.Clone()
	stub.Stub = true
	m.tokens[stub.ID] = stub
	m.order = append(m.order, stub.ID)
	return nil
}

// Loaded reports whether a map is present.
func (m *Model) Loaded() bool {
	return m.m != nil
}

// Token returns a copy of one token.
func (m *Model) Token(id string) (*entities.Token, bool) {
	t, ok := m.tokens[id]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// PlayerToken returns a copy of the token linked to playerID.
func (m *Model) PlayerToken(playerID string) (*entities.Token, bool) {
	for _, id := range m.order {
		t := m.tokens[id]
		if t.Type == entities.TokenTypePlayer && t.PlayerID == playerID {
			return t.Clone(), true
		}
	}
	return nil, false
}

// Snapshot returns a copy of the current state that callers may keep.
func (m *Model) Snapshot() *entities.MapSnapshot {
	snap := &entities.MapSnapshot{
		Map:        m.m,
		Zones:      m.zones,
		RestPoints: m.restPoints,
		Churches:   m.churches,
		Roster:     m.roster,
		FetchedAt:  m.fetchedAt,
	}
	for _, id := range m.order {
		snap.Tokens = append(snap.Tokens, m.tokens[id])
	}
	return snap.Clone()
}
