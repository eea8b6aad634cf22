// Package snapshot assembles full map snapshots from durable storage for
// the sync engine.
package snapshot

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/mapsync"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles"
)

// Config holds the repositories a fetch reads from.
type Config struct {
	Maps     maps.Repository
	Profiles profiles.Repository
	Clock    clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Maps == nil {
		vb.RequiredField("Maps")
	}
	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	return vb.Build()
}

// Fetcher reads every row of a map and joins player display metadata.
type Fetcher struct {
	maps     maps.Repository
	profiles profiles.Repository
	clock    clock.Clock
}

var _ mapsync.Fetcher = (*Fetcher)(nil)

// NewFetcher creates a snapshot fetcher
func NewFetcher(cfg *Config) (*Fetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &Fetcher{maps: cfg.Maps, profiles: cfg.Profiles, clock: c}, nil
}

// FetchSnapshot returns a snapshot with a nil Map when the map no longer
// exists, so viewers clear what they show.
func (f *Fetcher) FetchSnapshot(
	ctx context.Context,
	mapID string,
	opts mapsync.FetchOptions,
) (*entities.MapSnapshot, error) {
	if mapID == "" {
		return nil, errors.InvalidArgument("map ID cannot be empty")
	}

	snap := &entities.MapSnapshot{}

	mapOut, err := f.maps.GetMap(ctx, maps.GetMapInput{MapID: mapID})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.InfoContext(ctx, "snapshot of missing map", "map_id", mapID)
			snap.FetchedAt = f.clock.Now()
			return snap, nil
		}
		return nil, errors.Wrap(err, "failed to fetch map")
	}
	snap.Map = mapOut.Map

	tokens, err := f.maps.ListTokens(ctx, maps.ListTokensInput{MapID: mapID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tokens")
	}
	snap.Tokens = tokens.Tokens

	zones, err := f.maps.ListZones(ctx, maps.ListZonesInput{MapID: mapID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch zones")
	}
	snap.Zones = zones.Zones

	rests, err := f.maps.ListRegions(ctx, maps.ListRegionsInput{MapID: mapID, Kind: entities.RegionKindRestPoint})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch rest points")
	}
	snap.RestPoints = rests.Regions

	churches, err := f.maps.ListRegions(ctx, maps.ListRegionsInput{MapID: mapID, Kind: entities.RegionKindChurch})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch churches")
	}
	snap.Churches = churches.Regions

	if err := f.resolvePlayers(ctx, snap.Tokens); err != nil {
		return nil, err
	}

	if opts.IncludeRoster {
		all, err := f.profiles.ListAll(ctx, profiles.ListAllInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch roster")
		}
		snap.Roster = make([]*entities.PlayerSummary, 0, len(all.Profiles))
		for _, p := range all.Profiles {
			snap.Roster = append(snap.Roster, p.Summary())
		}
	}

	snap.FetchedAt = f.clock.Now()
	return snap, nil
}

func (f *Fetcher) resolvePlayers(ctx context.Context, tokens []*entities.Token) error {
	var ids []string
	for _, t := range tokens {
		if t.Type == entities.TokenTypePlayer {
			ids = append(ids, t.PlayerID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	out, err := f.profiles.Summaries(ctx, profiles.SummariesInput{PlayerIDs: ids})
	if err != nil {
		return errors.Wrap(err, "failed to resolve players")
	}

	for _, t := range tokens {
		s, ok := out.Summaries[t.PlayerID]
		if !ok || t.Type != entities.TokenTypePlayer {
			continue
		}
		t.DisplayName = s.DisplayName
		t.AvatarURL = s.AvatarURL
		t.Role = s.Role
	}
	return nil
}
