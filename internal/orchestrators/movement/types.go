package movement

import (
	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
	"github.com/KirkDiggler/rpg-atlas/internal/travel"
)

// RoleplayEvidence replaces a move's cost with two links to the scene that
// justified it.
type RoleplayEvidence struct {
	OriginURL      string
	DestinationURL string
}

// Charge describes what a move took from the mover's balance.
type Charge struct {
	Resource  travel.Resource `json:"resource"`
	Amount    int             `json:"amount"`
	Remaining int             `json:"remaining"`
}

// MoveTokenInput defines the request for moving a token
type MoveTokenInput struct {
	Capability entities.Capability
	TokenID    string
	MapID      string // Target map; empty keeps the token's current map
	X          float64
	Y          float64
	Evidence   *RoleplayEvidence
}

// MoveTokenOutput defines the response for moving a token
type MoveTokenOutput struct {
	Token         *entities.Token
	PreviousMapID string
	MoveType      entities.MoveType
	Charge        *Charge // nil when the move was free
	TravelLog     *entities.TravelLog
}

// AddPlayerToMapInput defines the request for placing a player's token
type AddPlayerToMapInput struct {
	Capability entities.Capability
	PlayerID   string // Empty means the caller
	MapID      string
	Position   *geofence.Point // nil means the map's center
	Evidence   *RoleplayEvidence
}

// AddPlayerToMapOutput defines the response for placing a player's token
type AddPlayerToMapOutput struct {
	Token         *entities.Token
	PreviousMapID string
	MoveType      entities.MoveType
	Charge        *Charge
}

// AddNPCToMapInput defines the request for placing an npc
type AddNPCToMapInput struct {
	Capability        entities.Capability
	MapID             string
	Name              string
	ImageURL          string
	X                 float64
	Y                 float64
	InteractionRadius float64
}

// AddNPCToMapOutput defines the response for placing an npc
type AddNPCToMapOutput struct {
	Token *entities.Token
}

// RemoveTokenInput defines the request for removing a token
type RemoveTokenInput struct {
	Capability entities.Capability
	TokenID    string
}

// RemoveTokenOutput defines the response for removing a token
type RemoveTokenOutput struct {
	Token *entities.Token
}

// UpdateNPCRadiusInput defines the request for changing an npc's reach
type UpdateNPCRadiusInput struct {
	Capability entities.Capability
	TokenID    string
	Radius     float64
}

// UpdateNPCRadiusOutput defines the response for changing an npc's reach
type UpdateNPCRadiusOutput struct {
	Token *entities.Token
}

// ListTravelLogsInput defines the request for reading roleplay travel logs
type ListTravelLogsInput struct {
	Capability entities.Capability
	PlayerID   string // Managers may leave empty for everyone
	Page       int
}

// ListTravelLogsOutput defines the response for reading roleplay travel logs
type ListTravelLogsOutput struct {
	Logs    []*entities.TravelLog
	HasMore bool
}
