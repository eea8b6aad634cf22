// Package maps provides the durable store of maps and everything placed on
// them. Every committed write is also appended to the map's change stream.
package maps

//go:generate mockgen -destination=mock/mock_repository.go -package=mapsmock github.com/KirkDiggler/rpg-atlas/internal/repositories/maps Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

// Repository defines the interface for map persistence
type Repository interface {
	// GetMap retrieves a map row
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the map doesn't exist
	GetMap(ctx context.Context, input GetMapInput) (*GetMapOutput, error)

	// SaveMap creates or replaces a map row
	// Returns errors.InvalidArgument for validation failures
	SaveMap(ctx context.Context, input SaveMapInput) (*SaveMapOutput, error)

	// DeleteMap removes a map and everything placed on it
	// Returns errors.NotFound if the map doesn't exist
	DeleteMap(ctx context.Context, input DeleteMapInput) (*DeleteMapOutput, error)

	// ListMaps returns every map ordered by name
	ListMaps(ctx context.Context, input ListMapsInput) (*ListMapsOutput, error)

	// ListTokens returns the tokens of a map ordered by creation
	ListTokens(ctx context.Context, input ListTokensInput) (*ListTokensOutput, error)

	// GetToken retrieves a token wherever it is placed
	// Returns errors.NotFound if the token doesn't exist
	GetToken(ctx context.Context, input GetTokenInput) (*GetTokenOutput, error)

	// FindPlayerToken retrieves the single token a player owns
	// Returns errors.NotFound if the player has no token
	FindPlayerToken(ctx context.Context, input FindPlayerTokenInput) (*FindPlayerTokenOutput, error)

	// CreateToken places a new token
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the map doesn't exist
	// Returns errors.AlreadyExists if the player already has a token
	CreateToken(ctx context.Context, input CreateTokenInput) (*CreateTokenOutput, error)

	// UpdateToken replaces a token, moving it between maps when MapID changed
	// Returns errors.NotFound if the token or the target map doesn't exist
	UpdateToken(ctx context.Context, input UpdateTokenInput) (*UpdateTokenOutput, error)

	// DeleteToken removes a token
	// Returns errors.NotFound if the token doesn't exist
	DeleteToken(ctx context.Context, input DeleteTokenInput) (*DeleteTokenOutput, error)

	// ListZones returns the locked zones of a map
	ListZones(ctx context.Context, input ListZonesInput) (*ListZonesOutput, error)

	// SaveZone creates or replaces a locked zone
	// Returns errors.NotFound if the map doesn't exist
	SaveZone(ctx context.Context, input SaveZoneInput) (*SaveZoneOutput, error)

	// DeleteZone removes a locked zone
	// Returns errors.NotFound if the zone doesn't exist
	DeleteZone(ctx context.Context, input DeleteZoneInput) (*DeleteZoneOutput, error)

	// ListRegions returns the rest points or churches of a map
	ListRegions(ctx context.Context, input ListRegionsInput) (*ListRegionsOutput, error)

	// SaveRegion creates or replaces a rest point or church
	// Returns errors.NotFound if the map doesn't exist
	SaveRegion(ctx context.Context, input SaveRegionInput) (*SaveRegionOutput, error)

	// DeleteRegion removes a rest point or church
	// Returns errors.NotFound if the region doesn't exist
	DeleteRegion(ctx context.Context, input DeleteRegionInput) (*DeleteRegionOutput, error)
}

// GetMapInput defines the input for getting a map
type GetMapInput struct {
	MapID string
}

// GetMapOutput defines the output for getting a map
type GetMapOutput struct {
	Map *entities.Map
}

// SaveMapInput defines the input for saving a map
type SaveMapInput struct {
	Map *entities.Map
}

// SaveMapOutput defines the output for saving a map
type SaveMapOutput struct {
	Map     *entities.Map
	Created bool
}

// DeleteMapInput defines the input for deleting a map
type DeleteMapInput struct {
	MapID string
}

// DeleteMapOutput defines the output for deleting a map
type DeleteMapOutput struct{}

// ListMapsInput defines the input for listing maps
type ListMapsInput struct{}

// ListMapsOutput defines the output for listing maps
type ListMapsOutput struct {
	Maps []*entities.Map
}

// ListTokensInput defines the input for listing a map's tokens
type ListTokensInput struct {
	MapID string
}

// ListTokensOutput defines the output for listing a map's tokens
type ListTokensOutput struct {
	Tokens []*entities.Token
}

// GetTokenInput defines the input for getting a token
type GetTokenInput struct {
	TokenID string
}

// GetTokenOutput defines the output for getting a token
type GetTokenOutput struct {
	Token *entities.Token
}

// FindPlayerTokenInput defines the input for finding a player's token
type FindPlayerTokenInput struct {
	PlayerID string
}

// FindPlayerTokenOutput defines the output for finding a player's token
type FindPlayerTokenOutput struct {
	Token *entities.Token
}

// CreateTokenInput defines the input for placing a token
type CreateTokenInput struct {
	Token *entities.Token
}

// CreateTokenOutput defines the output for placing a token
type CreateTokenOutput struct {
	Token *entities.Token
}

// UpdateTokenInput defines the input for updating a token
type UpdateTokenInput struct {
	Token *entities.Token
}

// UpdateTokenOutput defines the output for updating a token
type UpdateTokenOutput struct {
	Token         *entities.Token
	PreviousMapID string // Differs from Token.MapID after a cross-map move
}

// DeleteTokenInput defines the input for deleting a token
type DeleteTokenInput struct {
	TokenID string
}

// DeleteTokenOutput defines the output for deleting a token
type DeleteTokenOutput struct {
	Token *entities.Token
}

// ListZonesInput defines the input for listing locked zones
type ListZonesInput struct {
	MapID string
}

// ListZonesOutput defines the output for listing locked zones
type ListZonesOutput struct {
	Zones []*entities.LockedZone
}

// SaveZoneInput defines the input for saving a locked zone
type SaveZoneInput struct {
	Zone *entities.LockedZone
}

// SaveZoneOutput defines the output for saving a locked zone
type SaveZoneOutput struct {
	Zone    *entities.LockedZone
	Created bool
}

// DeleteZoneInput defines the input for deleting a locked zone
type DeleteZoneInput struct {
	MapID  string
	ZoneID string
}

// DeleteZoneOutput defines the output for deleting a locked zone
type DeleteZoneOutput struct{}

// ListRegionsInput defines the input for listing circular regions
type ListRegionsInput struct {
	MapID string
	Kind  entities.RegionKind
}

// ListRegionsOutput defines the output for listing circular regions
type ListRegionsOutput struct {
	Regions []*entities.CircleRegion
}

// SaveRegionInput defines the input for saving a circular region
type SaveRegionInput struct {
	Region *entities.CircleRegion
}

// SaveRegionOutput defines the output for saving a circular region
type SaveRegionOutput struct {
	Region  *entities.CircleRegion
	Created bool
}

// DeleteRegionInput defines the input for deleting a circular region
type DeleteRegionInput struct {
	MapID    string
	Kind     entities.RegionKind
	RegionID string
}

// DeleteRegionOutput defines the output for deleting a circular region
type DeleteRegionOutput struct{}
