// Package mapsync keeps a viewer's picture of one map consistent with
// durable storage. Each open view merges two inputs into a single-owner
// world.Model: low-latency ephemeral events patch tokens in place, and
// durable change notifications trigger a full refetch whose snapshot
// replaces everything. The durable path always wins because it replaces
// the whole model after the fact.
package mapsync

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/world"
)

const (
	tracerName         = "github.com/KirkDiggler/rpg-atlas/internal/mapsync"
	defaultEventBuffer = 64
)

// Config holds the collaborators shared by every view a session opens.
type Config struct {
	Fetcher Fetcher
	Changes ChangeSource
	Live    LiveSource

	// Capability is resolved once per session and never re-queried.
	Capability entities.Capability

	// EventBuffer bounds each view's outbound queue; events beyond it are dropped.
	EventBuffer int
	Tracer      trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Fetcher == nil {
		vb.RequiredField("Fetcher")
	}
	if c.Changes == nil {
		vb.RequiredField("Changes")
	}
	if c.Live == nil {
		vb.RequiredField("Live")
	}
	if c.EventBuffer < 0 {
		vb.InvalidField("EventBuffer", "must not be negative")
	}

	return vb.Build()
}

// Engine opens map views for one session.
type Engine struct {
	fetcher     Fetcher
	changes     ChangeSource
	live        LiveSource
	capability  entities.Capability
	eventBuffer int
	tracer      trace.Tracer
}

// NewEngine creates an engine with the provided dependencies
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	buffer := cfg.EventBuffer
	if buffer == 0 {
		buffer = defaultEventBuffer
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Engine{
		fetcher:     cfg.Fetcher,
		changes:     cfg.Changes,
		live:        cfg.Live,
		capability:  cfg.Capability,
		eventBuffer: buffer,
		tracer:      tracer,
	}, nil
}

// Capability returns the session capability the engine was built with.
func (e *Engine) Capability() entities.Capability {
	return e.capability
}

// OpenMapView subscribes to both channels for mapID and starts the initial
// fetch. If either subscription fails the other is released before
// returning. The view stays open until Close or until ctx is canceled.
func (e *Engine) OpenMapView(ctx context.Context, mapID string) (*View, error) {
	if mapID == "" {
		return nil, errors.InvalidArgument("map id is required")
	}

	changes, err := e.changes.SubscribeChanges(ctx, mapID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "subscribe to map changes")
	}

	live, err := e.live.SubscribeLive(ctx, mapID)
	if err != nil {
		if closeErr := changes.Close(); closeErr != nil {
			slog.Warn("release change subscription", "map_id", mapID, "error", closeErr)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "subscribe to live map events")
	}

	viewCtx, cancel := context.WithCancel(ctx)
	v := &View{
		mapID:      mapID,
		capability: e.capability,
		fetcher:    e.fetcher,
		tracer:     e.tracer,
		changes:    changes,
		live:       live,
		model:      world.New(mapID),
		cancel:     cancel,
		results:    make(chan fetchResult),
		requests:   make(chan request),
		events:     make(chan Event, e.eventBuffer),
		loopDone:   make(chan struct{}),
	}

	go v.run(viewCtx)
	go func() {
		<-viewCtx.Done()
		_ = v.Close() // nolint:errcheck // logged inside Close
	}()

	slog.Info("map view opened", "map_id", mapID, "player_id", e.capability.PlayerID, "can_manage", e.capability.CanManage)
	return v, nil
}
