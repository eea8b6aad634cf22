package entities

import (
	"time"
)

// Role is a player's standing in the campaign
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
	RoleDM     Role = "dm"
)

// CanManage reports whether the role may edit maps and move any token.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleDM
}

// ProgressionFact is one (pathway, sequence) pair a player holds.
type ProgressionFact struct {
	PathwayName string `json:"pathway_name"`
	Sequence    int    `json:"sequence"`
}

// Profile holds a player's display data and spendable resources.
type Profile struct {
	ID              string            `json:"id"`
	DisplayName     string            `json:"display_name"`
	AvatarURL       string            `json:"avatar_url,omitempty"`
	Role            Role              `json:"role"`
	TravelPoints    int               `json:"travel_points"`
	MaxTravelPoints int               `json:"max_travel_points"`
	Spirituality    int               `json:"spirituality"`
	MaxSpirituality int               `json:"max_spirituality"`
	Sanity          int               `json:"sanity"`
	MaxSanity       int               `json:"max_sanity"`
	ReligionID      string            `json:"religion_id,omitempty"`
	Progression     []ProgressionFact `json:"progression,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Summary returns the display fields shared with other viewers.
func (p *Profile) Summary() *PlayerSummary {
	return &PlayerSummary{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		Role:        p.Role,
	}
}

// PlayerSummary is the public face of a profile.
type PlayerSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Role        Role   `json:"role"`
}

// Capability is what a session may do, computed once when the session starts.
type Capability struct {
	PlayerID  string `json:"player_id,omitempty"`
	Role      Role   `json:"role,omitempty"`
	CanManage bool   `json:"can_manage"`
}

// CapabilityFor derives the session capability from a profile.
func CapabilityFor(p *Profile) Capability {
	if p == nil {
		return Capability{}
	}
	return Capability{
		PlayerID:  p.ID,
		Role:      p.Role,
		CanManage: p.Role.CanManage(),
	}
}

// Anonymous is the capability of an embed viewer.
func Anonymous() Capability {
	return Capability{}
}

// IsAnonymous reports whether no player is attached.
func (c Capability) IsAnonymous() bool {
	return c.PlayerID == ""
}
