// Package presence answers where a player's token stands relative to the
// map's points of interest: rest points and churches.
package presence

//go:generate mockgen -destination=mock/mock_service.go -package=presencemock github.com/KirkDiggler/rpg-atlas/internal/orchestrators/presence Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles"
)

// Service defines the interface for presence checks
type Service interface {
	// InRestZone reports whether the player's token sits in a rest point.
	// A player with no token is never in one.
	InRestZone(ctx context.Context, input *InRestZoneInput) (*InRestZoneOutput, error)

	// SubmitPrayer restores one sanity per evidence link, capped at the
	// maximum, when the player stands in a church of their religion.
	// Returns errors.FailedPrecondition when any of those conditions fail
	SubmitPrayer(ctx context.Context, input *SubmitPrayerInput) (*SubmitPrayerOutput, error)
}

// Config holds the dependencies for the presence orchestrator
type Config struct {
	Maps        maps.Repository
	Profiles    profiles.Repository
	Journal     journal.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
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
	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	maps     maps.Repository
	profiles profiles.Repository
	journal  journal.Repository
	idGen    idgen.Generator
	clock    clock.Clock
}

// NewOrchestrator creates a new presence orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		maps:     cfg.Maps,
		profiles: cfg.Profiles,
		journal:  cfg.Journal,
		idGen:    cfg.IDGenerator,
		clock:    c,
	}, nil
}

func (o *orchestrator) InRestZone(ctx context.Context, input *InRestZoneInput) (*InRestZoneOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	tok, err := o.playerToken(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return &InRestZoneOutput{}, nil
	}

	regions, err := o.maps.ListRegions(ctx, maps.ListRegionsInput{MapID: tok.MapID, Kind: entities.RegionKindRestPoint})
	if err != nil {
		return nil, err
	}

	circles := make([]geofence.Circle, 0, len(regions.Regions))
	for _, r := range regions.Regions {
		circles = append(circles, r.Circle())
	}
	pos := tok.Position()

	return &InRestZoneOutput{
		InRestZone: geofence.IsPlayerInAnyRestPoint(&pos, circles),
		MapID:      tok.MapID,
	}, nil
}

func (o *orchestrator) SubmitPrayer(ctx context.Context, input *SubmitPrayerInput) (*SubmitPrayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	playerID := input.Capability.PlayerID
	if playerID == "" {
		return nil, errors.PermissionDenied("sign in to pray")
	}

	var urls []string
	for _, u := range input.EvidenceURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) < MinPrayerEvidence {
		return nil, errors.InvalidArgumentf("a prayer needs at least %d evidence links", MinPrayerEvidence)
	}

	got, err := o.profiles.Get(ctx, profiles.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	p := got.Profile
	if p.ReligionID == "" {
		return nil, errors.FailedPrecondition("player follows no religion")
	}
	if p.Sanity >= p.MaxSanity {
		return nil, errors.FailedPrecondition("sanity is already full")
	}

	tok, err := o.playerToken(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, errors.FailedPrecondition("player is not on any map")
	}

	church, err := o.churchAt(ctx, tok, p.ReligionID)
	if err != nil {
		return nil, err
	}
	if church == nil {
		return nil, errors.FailedPrecondition("no church of the player's religion in range").
			WithMeta("religion_id", p.ReligionID).
			WithMeta("map_id", tok.MapID)
	}

	restored, err := o.profiles.RestoreSanity(ctx, profiles.RestoreSanityInput{PlayerID: playerID, Amount: len(urls)})
	if err != nil {
		return nil, err
	}

	log := &entities.PrayerLog{
		ID:           o.idGen.Generate(),
		PlayerID:     playerID,
		ChurchID:     church.ID,
		EvidenceURLs: urls,
		SanityGained: restored.Gained,
		CreatedAt:    o.clock.Now(),
	}
	if _, err := o.journal.RecordPrayer(ctx, journal.RecordPrayerInput{Log: log}); err != nil {
		slog.ErrorContext(ctx, "failed to journal prayer",
			"player_id", playerID,
			"church_id", church.ID,
			"error", err)
	}

	slog.InfoContext(ctx, "prayer accepted",
		"player_id", playerID,
		"church_id", church.ID,
		"gained", restored.Gained,
		"sanity", restored.Profile.Sanity)

	return &SubmitPrayerOutput{
		Gained:    restored.Gained,
		Sanity:    restored.Profile.Sanity,
		MaxSanity: restored.Profile.MaxSanity,
		ChurchID:  church.ID,
		Log:       log,
	}, nil
}

// playerToken returns nil without error when the player has no token.
func (o *orchestrator) playerToken(ctx context.Context, playerID string) (*entities.Token, error) {
	found, err := o.maps.FindPlayerToken(ctx, maps.FindPlayerTokenInput{PlayerID: playerID})
	if errors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return found.Token, nil
}

func (o *orchestrator) churchAt(ctx context.Context, tok *entities.Token, religionID string) (*entities.CircleRegion, error) {
	churches, err := o.maps.ListRegions(ctx, maps.ListRegionsInput{MapID: tok.MapID, Kind: entities.RegionKindChurch})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.CircleRegion, len(churches.Regions))
	candidates := make([]geofence.Region, 0, len(churches.Regions))
	for _, c := range churches.Regions {
		if c.ReligionID != religionID {
			continue
		}
		byID[c.ID] = c
		candidates = append(candidates, c)
	}

	pos := tok.Position()
	hit := geofence.Classify(&pos, candidates)
	if !hit.Inside {
		return nil, nil
	}
	return byID[hit.Matches[0]], nil
}
