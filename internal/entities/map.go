// Package entities provides the shared data structures of rpg-atlas.
package entities

import (
	"time"
)

// Map is a background image players move tokens across.
type Map struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	EmbedEnabled bool      `json:"embed_enabled"` // Viewable anonymously through /embed
	CreatedBy    string    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MapSnapshot is everything a viewer needs to render one map.
type MapSnapshot struct {
	Map        *Map             `json:"map"` // nil once the map has been deleted
	Tokens     []*Token         `json:"tokens"`
	Zones      []*LockedZone    `json:"zones"`
	RestPoints []*CircleRegion  `json:"rest_points"`
	Churches   []*CircleRegion  `json:"churches"`
	Roster     []*PlayerSummary `json:"roster,omitempty"` // Managers only
	FetchedAt  time.Time        `json:"fetched_at"`
}

// Clone returns a deep copy of the snapshot.
func (s *MapSnapshot) Clone() *MapSnapshot {
	if s == nil {
		return nil
	}

	out := &MapSnapshot{FetchedAt: s.FetchedAt}
	if s.Map != nil {
		m := *s.Map
		out.Map = &m
	}
	for _, t := range s.Tokens {
		out.Tokens = append(out.Tokens, t.Clone())
	}
	for _, z := range s.Zones {
		out.Zones = append(out.Zones, z.Clone())
	}
	for _, r := range s.RestPoints {
		c := *r
		out.RestPoints = append(out.RestPoints, &c)
	}
	for _, r := range s.Churches {
		c := *r
		out.Churches = append(out.Churches, &c)
	}
	for _, p := range s.Roster {
		c := *p
		out.Roster = append(out.Roster, &c)
	}
	return out
}
