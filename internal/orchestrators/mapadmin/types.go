package mapadmin

import (
	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

// ListMapsInput defines the request for listing maps
type ListMapsInput struct {
	Capability entities.Capability
}

// ListMapsOutput defines the response for listing maps
type ListMapsOutput struct {
	Maps []*entities.Map
}

// SaveMapInput defines the request for creating or updating a map
type SaveMapInput struct {
	Capability entities.Capability
	Map        *entities.Map // Empty ID creates a new map
}

// SaveMapOutput defines the response for saving a map
type SaveMapOutput struct {
	Map     *entities.Map
	Created bool
}

// DeleteMapInput defines the request for deleting a map
type DeleteMapInput struct {
	Capability entities.Capability
	MapID      string
}

// DeleteMapOutput defines the response for deleting a map
type DeleteMapOutput struct{}

// SaveLockedZoneInput defines the request for creating or updating a locked zone
type SaveLockedZoneInput struct {
	Capability entities.Capability
	Zone       *entities.LockedZone // Empty ID creates a new zone
}

// SaveLockedZoneOutput defines the response for saving a locked zone
type SaveLockedZoneOutput struct {
	Zone    *entities.LockedZone
	Created bool
}

// DeleteLockedZoneInput defines the request for deleting a locked zone
type DeleteLockedZoneInput struct {
	Capability entities.Capability
	MapID      string
	ZoneID     string
}

// DeleteLockedZoneOutput defines the response for deleting a locked zone
type DeleteLockedZoneOutput struct{}

// SaveRegionInput defines the request for creating or updating a rest point or church
type SaveRegionInput struct {
	Capability entities.Capability
	Region     *entities.CircleRegion // Empty ID creates a new region
}

// SaveRegionOutput defines the response for saving a region
type SaveRegionOutput struct {
	Region  *entities.CircleRegion
	Created bool
}

// DeleteRegionInput defines the request for deleting a region
type DeleteRegionInput struct {
	Capability entities.Capability
	MapID      string
	Kind       entities.RegionKind
	RegionID   string
}

// DeleteRegionOutput defines the response for deleting a region
type DeleteRegionOutput struct{}

// SetEmbedInput defines the request for toggling anonymous viewing
type SetEmbedInput struct {
	Capability entities.Capability
	MapID      string
	Enabled    bool
}

// SetEmbedOutput defines the response for toggling anonymous viewing
type SetEmbedOutput struct {
	Map *entities.Map
}
