// Package realtime carries map updates between processes over Redis: an
// at-most-once pub/sub channel for ephemeral token events and a durable
// stream of committed changes.
package realtime

//go:generate mockgen -destination=mock/mock.go -package=realtimemock github.com/KirkDiggler/rpg-atlas/internal/realtime Publisher

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-atlas/internal/redis"
)

// Publisher announces ephemeral events to a map's viewers. Delivery is
// best effort; failures are logged and never reach the caller.
type Publisher interface {
	Publish(ctx context.Context, event entities.LiveEvent)
}

// BroadcasterConfig contains configuration for the Broadcaster.
type BroadcasterConfig struct {
	Client redisclient.Client
}

// Validate validates the BroadcasterConfig.
func (cfg *BroadcasterConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// Broadcaster publishes live events on map_live:<mapID>.
type Broadcaster struct {
	client redisclient.Client
}

var _ Publisher = (*Broadcaster)(nil)

// NewBroadcaster creates a Redis pub/sub publisher
func NewBroadcaster(cfg *BroadcasterConfig) (*Broadcaster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Broadcaster{client: cfg.Client}, nil
}

// Publish sends event to every current subscriber of its map.
func (b *Broadcaster) Publish(ctx context.Context, event entities.LiveEvent) {
	if event.MapID == "" {
		slog.WarnContext(ctx, "dropping live event without map", "kind", event.Kind)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal live event",
			"kind", event.Kind,
			"error", err.Error())
		return
	}

	receivers, err := b.client.Publish(ctx, redisclient.MapLiveChannel(event.MapID), data).Result()
	if err != nil {
		slog.WarnContext(ctx, "failed to publish live event",
			"map_id", event.MapID,
			"kind", event.Kind,
			"error", err.Error())
		return
	}

	slog.DebugContext(ctx, "live event published",
		"map_id", event.MapID,
		"kind", event.Kind,
		"token_id", event.TokenID,
		"receivers", receivers)
}
