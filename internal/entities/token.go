package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
)

// TokenType distinguishes player tokens from npc tokens
type TokenType string

const (
	TokenTypePlayer TokenType = "player"
	TokenTypeNPC    TokenType = "npc"
)

// Position bounds in percent of the background image.
const (
	MinPosition = 0
	MaxPosition = 100
)

// Token is a marker placed on a map.
type Token struct {
	ID                string    `json:"id"`
	MapID             string    `json:"map_id"`
	Type              TokenType `json:"type"`
	PlayerID          string    `json:"player_id,omitempty"`     // Player tokens only
	NPCName           string    `json:"npc_name,omitempty"`      // NPC tokens only
	NPCImageURL       string    `json:"npc_image_url,omitempty"` // NPC tokens only
	X                 float64   `json:"x"`
	Y                 float64   `json:"y"`
	InteractionRadius float64   `json:"interaction_radius,omitempty"`
	CreatedBy         string    `json:"created_by,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Resolved at fetch time, never persisted
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Role        Role   `json:"role,omitempty"`

	// Stub marks a token seen only through an ephemeral event.
	Stub bool `json:"stub,omitempty"`
}

// Validate enforces that exactly one of the player link and the npc display
// fields is populated, as selected by Type.
func (t *Token) Validate() error {
	if t == nil {
		return errors.InvalidArgument("token is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", t.ID, vb)
	errors.ValidateRequired("map_id", t.MapID, vb)

	switch t.Type {
	case TokenTypePlayer:
		errors.ValidateRequired("player_id", t.PlayerID, vb)
		if t.NPCName != "" || t.NPCImageURL != "" {
			vb.InvalidField("npc_name", "player tokens carry no npc fields")
		}
	case TokenTypeNPC:
		errors.ValidateRequired("npc_name", t.NPCName, vb)
		if t.PlayerID != "" {
			vb.InvalidField("player_id", "npc tokens carry no player link")
		}
	default:
		vb.InvalidField("type", "must be player or npc")
	}

	return vb.Build()
}

// Position returns the token's location as a geofence point.
func (t *Token) Position() geofence.Point {
	return geofence.Point{X: t.X, Y: t.Y}
}

// Clone returns a copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// ClampPosition limits v to the map's percentage range.
func ClampPosition(v float64) float64 {
	if v < MinPosition {
		return MinPosition
	}
	if v > MaxPosition {
		return MaxPosition
	}
	return v
}
