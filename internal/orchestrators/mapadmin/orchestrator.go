// Package mapadmin is the dm and admin surface for editing maps and the
// regions drawn on them.
package mapadmin

//go:generate mockgen -destination=mock/mock_service.go -package=mapadminmock github.com/KirkDiggler/rpg-atlas/internal/orchestrators/mapadmin Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
)

const errManageOnly = "only a dm or admin may edit maps"

// Service defines the interface for map administration
type Service interface {
	// ListMaps is open to any signed-in player
	ListMaps(ctx context.Context, input *ListMapsInput) (*ListMapsOutput, error)

	SaveMap(ctx context.Context, input *SaveMapInput) (*SaveMapOutput, error)
	DeleteMap(ctx context.Context, input *DeleteMapInput) (*DeleteMapOutput, error)

	// SaveLockedZone creates or updates a zone. A blank message gets the
	// default one.
	SaveLockedZone(ctx context.Context, input *SaveLockedZoneInput) (*SaveLockedZoneOutput, error)
	DeleteLockedZone(ctx context.Context, input *DeleteLockedZoneInput) (*DeleteLockedZoneOutput, error)

	// SaveRegion creates or updates a rest point or church. The radius is
	// clamped to 1-50; churches must name a religion.
	SaveRegion(ctx context.Context, input *SaveRegionInput) (*SaveRegionOutput, error)
	DeleteRegion(ctx context.Context, input *DeleteRegionInput) (*DeleteRegionOutput, error)

	SetEmbed(ctx context.Context, input *SetEmbedInput) (*SetEmbedOutput, error)
}

// Config holds the dependencies for the map admin orchestrator
type Config struct {
	Maps        maps.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Maps == nil {
		vb.RequiredField("Maps")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	maps  maps.Repository
	idGen idgen.Generator
}

// NewOrchestrator creates a new map admin orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		maps:  cfg.Maps,
		idGen: cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) newID(prefix string) string {
	return prefix + "_" + o.idGen.Generate()
}

func requireManager(c entities.Capability) error {
	if !c.CanManage {
		return errors.PermissionDenied(errManageOnly)
	}
	return nil
}

func (o *orchestrator) ListMaps(ctx context.Context, input *ListMapsInput) (*ListMapsOutput, error) {
	if input == nil || input.Capability.IsAnonymous() {
		return nil, errors.PermissionDenied("sign in to list maps")
	}

	out, err := o.maps.ListMaps(ctx, maps.ListMapsInput{})
	if err != nil {
		return nil, err
	}

	return &ListMapsOutput{Maps: out.Maps}, nil
}

func (o *orchestrator) SaveMap(ctx context.Context, input *SaveMapInput) (*SaveMapOutput, error) {
	if input == nil || input.Map == nil {
		return nil, errors.InvalidArgument("map is required")
	}
	if err := requireManager(input.Capability); err != nil {
		return nil, err
	}

	m := *input.Map
	m.Name = strings.TrimSpace(m.Name)
	m.ImageURL = strings.TrimSpace(m.ImageURL)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", m.Name, vb)
	errors.ValidateRequired("image_url", m.ImageURL, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if m.ID == "" {
		m.ID = o.newID(idgen.PrefixMap)
		m.CreatedBy = input.Capability.PlayerID
	}

	out, err := o.maps.SaveMap(ctx, maps.SaveMapInput{Map: &m})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "map saved", "map_id", out.Map.ID, "created", out.Created, "by", input.Capability.PlayerID)

	return &SaveMapOutput{Map: out.Map, Created: out.Created}, nil
}

func (o *orchestrator) DeleteMap(ctx context.Context, input *DeleteMapInput) (*DeleteMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireManager(input.Capability); err != nil {
		return nil, err
	}

	if _, err := o.maps.DeleteMap(ctx, maps.DeleteMapInput{MapID: input.MapID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "map deleted", "map_id", input.MapID, "by", input.Capability.PlayerID)

	return &DeleteMapOutput{}, nil
}

func (o *orchestrator) SaveLockedZone(ctx context.Context, input *SaveLockedZoneInput) (*SaveLockedZoneOutput, error) {
	if input == nil || input.Zone == nil {
		return nil, errors.InvalidArgument("zone is required")
	}
	if err := requireManager(input.Capability); err != nil {
		return nil, err
	}

	z := input.Zone.Clone()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("map_id", z.MapID, vb)
	if z.Width <= 0 {
		vb.InvalidField("width", "must be positive")
	}
	if z.Height <= 0 {
		vb.InvalidField("height", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(z.Message) == "" {
		z.Message = entities.DefaultLockedZoneMessage
	}
	if z.ID == "" {
		z.ID = o.newID(idgen.PrefixZone)
		z.CreatedBy = input.Capability.PlayerID
	}

	out, err := o.maps.SaveZone(ctx, maps.SaveZoneInput{Zone: z})
	if err != nil {
		return nil, err
	}

	return &SaveLockedZoneOutput{Zone: out.Zone, Created: out.Created}, nil
}

func (o *orchestrator) DeleteLockedZone(ctx context.Context, input *DeleteLockedZoneInput) (*DeleteLockedZoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireManager(input.Capability); err != nil {
		return nil, err
	}

	if _, err := o.maps.DeleteZone(ctx, maps.DeleteZoneInput{MapID: input.MapID, ZoneID: input.ZoneID}); err != nil {
		return nil, err
	}

	return &DeleteLockedZoneOutput{}, nil
}

func (o *orchestrator) SaveRegion(ctx context.Context, input *SaveRegionInput) (*SaveRegionOutput, error) {
	if input == nil || input.Region == nil {
		return nil, errors.InvalidArgument("region is required")
	}
	if err := requireManager(input.Capability); err != nil {
		return nil, err
	}

	r := *input.Region
	r.Name = strings.TrimSpace(r.Name)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("map_id", r.MapID, vb)
	errors.ValidateRequired("name", r.Name, vb)
	errors.ValidateEnum("kind", string(r.Kind), []string{
		string(entities.RegionKindRestPoint),
		string(entities.RegionKindChurch),
	}, vb)
	if r.Kind == entities.RegionKindChurch {
		errors.ValidateRequired("religion_id", r.ReligionID, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	r.Radius = entities.ClampRadius(r.Radius)
	if r.Kind != entities.RegionKindChurch {
		r.ReligionID = ""
	}
	if r.ID == "" {
		prefix := idgen.PrefixRest
		if r.Kind == entities.RegionKindChurch {
			prefix = idgen.PrefixChurch
		}
		r.ID = o.newID(prefix)
		r.CreatedBy = input.Capability.PlayerID
	}

	out, err := o.maps.SaveRegion(ctx, maps.SaveRegionInput{Region: &r})
	if err != nil {
		return nil, err
	}

	return &SaveRegionOutput{Region: out.Region, Created: out.Created}, nil
}

func (o *orchestrator) DeleteRegion(ctx context.Context, input *DeleteRegionInput) (*DeleteRegionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireManager(input.Capability); err != nil {
		return nil, err
	}

	_, err := o.maps.DeleteRegion(ctx, maps.DeleteRegionInput{
		MapID:    input.MapID,
		Kind:     input.Kind,
		RegionID: input.RegionID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteRegionOutput{}, nil
}

func (o *orchestrator) SetEmbed(ctx context.Context, input *SetEmbedInput) (*SetEmbedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireManager(input.Capability); err != nil {
		return nil, err
	}

	got, err := o.maps.GetMap(ctx, maps.GetMapInput{MapID: input.MapID})
	if err != nil {
		return nil, err
	}
	if got.Map.EmbedEnabled == input.Enabled {
		return &SetEmbedOutput{Map: got.Map}, nil
	}

	m := *got.Map
	m.EmbedEnabled = input.Enabled

	out, err := o.maps.SaveMap(ctx, maps.SaveMapInput{Map: &m})
	if err != nil {
		return nil, err
	}

	return &SetEmbedOutput{Map: out.Map}, nil
}
