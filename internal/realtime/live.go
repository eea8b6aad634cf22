package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/mapsync"
	redisclient "github.com/KirkDiggler/rpg-atlas/internal/redis"
)

const defaultSubscriptionBuffer = 64

// LiveSourceConfig contains configuration for the LiveSource.
type LiveSourceConfig struct {
	Client redisclient.Client
	Buffer int // Zero means a default of 64
}

// Validate validates the LiveSourceConfig.
func (cfg *LiveSourceConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Buffer < 0 {
		vb.InvalidField("Buffer", "must not be negative")
	}
	return vb.Build()
}

// LiveSource subscribes views to a map's ephemeral channel.
type LiveSource struct {
	client redisclient.Client
	buffer int
}

var _ mapsync.LiveSource = (*LiveSource)(nil)

// NewLiveSource creates a pub/sub backed live source
func NewLiveSource(cfg *LiveSourceConfig) (*LiveSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	buffer := cfg.Buffer
	if buffer == 0 {
		buffer = defaultSubscriptionBuffer
	}
	return &LiveSource{client: cfg.Client, buffer: buffer}, nil
}

// SubscribeLive returns once the channel subscription is confirmed.
func (s *LiveSource) SubscribeLive(ctx context.Context, mapID string) (mapsync.LiveSubscription, error) {
	if mapID == "" {
		return nil, errors.InvalidArgument("map ID cannot be empty")
	}

	ps := s.client.Subscribe(ctx, redisclient.MapLiveChannel(mapID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to subscribe to live channel")
	}

	sub := &liveSubscription{
		mapID:  mapID,
		ps:     ps,
		events: make(chan entities.LiveEvent, s.buffer),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go sub.run()

	return sub, nil
}

type liveSubscription struct {
	mapID  string
	ps     *redis.PubSub
	events chan entities.LiveEvent
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
	err    error
}

func (s *liveSubscription) Events() <-chan entities.LiveEvent {
	return s.events
}

func (s *liveSubscription) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.err = s.ps.Close()
		<-s.exited
	})
	return s.err
}

func (s *liveSubscription) run() {
	defer close(s.exited)
	defer close(s.events)

	messages := s.ps.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var ev entities.LiveEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				slog.Warn("skipping malformed live event",
					"map_id", s.mapID,
					"error", err.Error())
				continue
			}
			if ev.MapID == "" {
				ev.MapID = s.mapID
			}

			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
		}
	}
}
