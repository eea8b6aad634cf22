package mapsync

import (
	"context"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

//go:generate mockgen -destination=mock/mock.go -package=mapsyncmock github.com/KirkDiggler/rpg-atlas/internal/mapsync Fetcher,ChangeSource,LiveSource

// FetchOptions tunes a snapshot fetch to the viewer.
type FetchOptions struct {
	// IncludeRoster adds every player profile for managers placing tokens.
	IncludeRoster bool
}

// Fetcher reads a consistent snapshot of a map from durable storage.
type Fetcher interface {
	FetchSnapshot(ctx context.Context, mapID string, opts FetchOptions) (*entities.MapSnapshot, error)
}

// ChangeSubscription delivers durable change notifications until closed.
type ChangeSubscription interface {
	Changes() <-chan entities.Change
	Close() error
}

// ChangeSource opens change feed subscriptions.
type ChangeSource interface {
	SubscribeChanges(ctx context.Context, mapID string) (ChangeSubscription, error)
}

// LiveSubscription delivers ephemeral events until closed.
type LiveSubscription interface {
	Events() <-chan entities.LiveEvent
	Close() error
}

// LiveSource opens ephemeral channel subscriptions.
type LiveSource interface {
	SubscribeLive(ctx context.Context, mapID string) (LiveSubscription, error)
}
