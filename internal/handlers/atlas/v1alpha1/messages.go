package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck"
	"github.com/KirkDiggler/rpg-atlas/internal/refcode"
)

// ResolveTravelRuleRequest asks which policy applies to a set of facts.
type ResolveTravelRuleRequest struct {
	Progression []entities.ProgressionFact `json:"progression"`
}

// GeofenceRegion is one named rectangle or circle to test against.
// Radius set means a circle; otherwise Width and Height make a rectangle.
type GeofenceRegion struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

func (r GeofenceRegion) region() geofence.Region {
	if r.Radius > 0 {
		return geofence.NamedCircle{ID: r.ID, Circle: geofence.Circle{X: r.X, Y: r.Y, Radius: r.Radius}}
	}
	return geofence.NamedRect{ID: r.ID, Rect: geofence.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}}
}

// EvaluateGeofenceRequest classifies a point. A null point is a player
// with no token.
type EvaluateGeofenceRequest struct {
	Point   *geofence.Point  `json:"point"`
	Regions []GeofenceRegion `json:"regions"`
}

// DecodeOutcomeRequest looks up a reference code.
type DecodeOutcomeRequest struct {
	Code string `json:"code"`
}

// DecodeOutcomeResponse is what is known about a code.
type DecodeOutcomeResponse struct {
	Outcome entities.Outcome        `json:"outcome"`
	Source  skillcheck.Source       `json:"source"`
	Record  *entities.OutcomeRecord `json:"record,omitempty"`
	Decoded *refcode.Decoded        `json:"decoded,omitempty"`
}

// RollSkillRequest rolls a check for the signed-in player.
type RollSkillRequest struct {
	SkillID     string `json:"skill_id"`
	SkillName   string `json:"skill_name"`
	SuccessRate int    `json:"success_rate"`
	Note        string `json:"note,omitempty"`
}

// RollSkillResponse carries the journaled record.
type RollSkillResponse struct {
	Record *entities.OutcomeRecord `json:"record"`
}

// MoveTokenRequest moves a token. Both evidence links together replace
// the move's cost.
type MoveTokenRequest struct {
	TokenID        string  `json:"token_id"`
	MapID          string  `json:"map_id,omitempty"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	OriginURL      string  `json:"origin_url,omitempty"`
	DestinationURL string  `json:"destination_url,omitempty"`
}

func (r *MoveTokenRequest) evidence() *movement.RoleplayEvidence {
	if r.OriginURL == "" && r.DestinationURL == "" {
		return nil
	}
	return &movement.RoleplayEvidence{OriginURL: r.OriginURL, DestinationURL: r.DestinationURL}
}

// MoveTokenResponse reports where the token ended up and what it cost.
type MoveTokenResponse struct {
	Token         *entities.Token   `json:"token"`
	PreviousMapID string            `json:"previous_map_id,omitempty"`
	MoveType      entities.MoveType `json:"move_type"`
	Charge        *movement.Charge  `json:"charge,omitempty"`
}

// WatchMapRequest opens a live view of one map.
type WatchMapRequest struct {
	MapID string `json:"map_id"`
}

// Decode copies a Struct into a typed request through its JSON form.
func Decode(in *structpb.Struct, out any) error {
	raw, err := json.Marshal(in.AsMap())
	if err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// Encode renders a typed value as a Struct through its JSON form.
func Encode(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal response")
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build struct")
	}
	return out, nil
}
