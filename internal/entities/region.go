package entities

import (
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
)

// DefaultLockedZoneMessage is shown when a zone was saved without a message.
const DefaultLockedZoneMessage = "พื้นที่นี้ถูกล็อค"

// LockedZone blocks movement into a rectangle for everyone not exempt.
type LockedZone struct {
	ID              string    `json:"id"`
	MapID           string    `json:"map_id"`
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	Width           float64   `json:"width"`
	Height          float64   `json:"height"`
	Message         string    `json:"message"`
	ExemptPlayerIDs []string  `json:"exempt_player_ids,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Rect returns the zone's rectangle.
func (z *LockedZone) Rect() geofence.Rect {
	return geofence.Rect{X: z.X, Y: z.Y, Width: z.Width, Height: z.Height}
}

// RegionID implements geofence.Region
func (z *LockedZone) RegionID() string { return z.ID }

// Contains implements geofence.Region
func (z *LockedZone) Contains(p geofence.Point) bool {
	return geofence.PointInRect(p.X, p.Y, z.Rect())
}

// Exempts reports whether playerID may enter the zone.
func (z *LockedZone) Exempts(playerID string) bool {
	return playerID != "" && slices.Contains(z.ExemptPlayerIDs, playerID)
}

// Clone returns a copy that shares nothing with z.
func (z *LockedZone) Clone() *LockedZone {
	c := *z
	c.ExemptPlayerIDs = slices.Clone(z.ExemptPlayerIDs)
	return &c
}

// RegionKind distinguishes the circular points of interest.
type RegionKind string

const (
	RegionKindRestPoint RegionKind = "rest_point"
	RegionKindChurch    RegionKind = "church"
)

// Radius bounds for circular regions.
const (
	MinRegionRadius = 1
	MaxRegionRadius = 50
)

// CircleRegion is a rest point or a church.
type CircleRegion struct {
	ID          string     `json:"id"`
	MapID       string     `json:"map_id"`
	Kind        RegionKind `json:"kind"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	ReligionID  string     `json:"religion_id,omitempty"` // Churches only
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Radius      float64    `json:"radius"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Circle returns the region's circle.
func (r *CircleRegion) Circle() geofence.Circle {
	return geofence.Circle{X: r.X, Y: r.Y, Radius: r.Radius}
}

// RegionID implements geofence.Region
func (r *CircleRegion) RegionID() string { return r.ID }

// Contains implements geofence.Region
func (r *CircleRegion) Contains(p geofence.Point) bool {
	return geofence.PointInCircle(p.X, p.Y, r.Circle())
}

// ClampRadius limits a region radius to the supported range.
func ClampRadius(r float64) float64 {
	if r < MinRegionRadius {
		return MinRegionRadius
	}
	if r > MaxRegionRadius {
		return MaxRegionRadius
	}
	return r
}
