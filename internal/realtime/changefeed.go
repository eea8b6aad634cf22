package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/mapsync"
	redisclient "github.com/KirkDiggler/rpg-atlas/internal/redis"
)

const (
	defaultBlock     = 2 * time.Second
	readBatch        = 100
	readRetryBackoff = 500 * time.Millisecond
	streamStart      = "0-0"
)

// ChangeFeedConfig contains configuration for the ChangeFeed.
type ChangeFeedConfig struct {
	Client redisclient.Client
	// Block is how long one XREAD waits; it also bounds how long Close waits.
	Block  time.Duration
	Buffer int
}

// Validate validates the ChangeFeedConfig.
func (cfg *ChangeFeedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Block < 0 {
		vb.InvalidField("Block", "must not be negative")
	}
	if cfg.Buffer < 0 {
		vb.InvalidField("Buffer", "must not be negative")
	}
	return vb.Build()
}

// ChangeFeed tails the durable change stream of a map. Subscribers see
// every change committed after they subscribed.
type ChangeFeed struct {
	client redisclient.Client
	block  time.Duration
	buffer int
}

var _ mapsync.ChangeSource = (*ChangeFeed)(nil)

// NewChangeFeed creates a stream backed change source
func NewChangeFeed(cfg *ChangeFeedConfig) (*ChangeFeed, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	block := cfg.Block
	if block == 0 {
		block = defaultBlock
	}
	buffer := cfg.Buffer
	if buffer == 0 {
		buffer = defaultSubscriptionBuffer
	}

	return &ChangeFeed{client: cfg.Client, block: block, buffer: buffer}, nil
}

// SubscribeChanges starts tailing after the newest entry present now.
func (f *ChangeFeed) SubscribeChanges(ctx context.Context, mapID string) (mapsync.ChangeSubscription, error) {
	if mapID == "" {
		return nil, errors.InvalidArgument("map ID cannot be empty")
	}

	key := redisclient.MapChangesKey(mapID)
	last, err := f.client.XRevRangeN(ctx, key, "+", "-", 1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read change stream position")
	}
	cursor := streamStart
	if len(last) > 0 {
		cursor = last[0].ID
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &changeSubscription{
		feed:    f,
		mapID:   mapID,
		key:     key,
		cursor:  cursor,
		changes: make(chan entities.Change, f.buffer),
		cancel:  cancel,
		exited:  make(chan struct{}),
	}
	go sub.run(runCtx)

	return sub, nil
}

type changeSubscription struct {
	feed    *ChangeFeed
	mapID   string
	key     string
	cursor  string
	changes chan entities.Change
	cancel  context.CancelFunc
	exited  chan struct{}
	once    sync.Once
}

func (s *changeSubscription) Changes() <-chan entities.Change {
	return s.changes
}

func (s *changeSubscription) Close() error {
	s.once.Do(func() {
		s.cancel()
		<-s.exited
	})
	return nil
}

func (s *changeSubscription) run(ctx context.Context) {
	defer close(s.exited)
	defer close(s.changes)

	for ctx.Err() == nil {
		streams, err := s.feed.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{s.key, s.cursor},
			Count:   readBatch,
			Block:   s.feed.block,
		}).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			slog.Warn("change stream read failed",
				"map_id", s.mapID,
				"error", err.Error())
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryBackoff):
			}
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				s.cursor = msg.ID
				change, err := redisclient.ParseChange(s.mapID, msg)
				if err != nil {
					slog.Warn("skipping malformed change",
						"map_id", s.mapID,
						"error", err.Error())
					continue
				}
				select {
				case s.changes <- change:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
