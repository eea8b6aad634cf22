package profiles

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-atlas/internal/redis"
	"github.com/KirkDiggler/rpg-atlas/internal/travel"
)

const (
	// DefaultSummaryTTL is how long a display summary is served from memory.
	DefaultSummaryTTL = 30 * time.Second

	maxWatchRetries = 5

	// Error messages
	errProfileNil    = "profile cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errAmount        = "amount must be positive"
)

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	summaries  *ristretto.Cache[string, *entities.PlayerSummary]
	summaryTTL time.Duration
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis profile repository.
type RedisConfig struct {
	Client     redisclient.Client
	Clock      clock.Clock
	SummaryTTL time.Duration // Zero means DefaultSummaryTTL
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.SummaryTTL < 0 {
		vb.InvalidField("SummaryTTL", "cannot be negative")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, *entities.PlayerSummary]{
		NumCounters: 10000,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create summary cache")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.SummaryTTL
	if ttl == 0 {
		ttl = DefaultSummaryTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      c,
		summaries:  cache,
		summaryTTL: ttl,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := r.client.Get(ctx, redisclient.ProfileKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s not found", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get profile")
	}

	p, err := decodeProfile(raw)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Profile: p}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	p := *input.Profile
	p.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.ProfileKey(p.ID), data, 0)
	pipe.SAdd(ctx, redisclient.ProfileIndexKey, p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	r.summaries.Del(p.ID)

	return &SaveOutput{Profile: &p}, nil
}

func (r *redisRepository) ListAll(ctx context.Context, _ ListAllInput) (*ListAllOutput, error) {
	ids, err := r.client.SMembers(ctx, redisclient.ProfileIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profile ids")
	}

	found, err := r.loadMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Profile, 0, len(found))
	for _, p := range found {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayName != out[j].DisplayName {
			return out[i].DisplayName < out[j].DisplayName
		}
		return out[i].ID < out[j].ID
	})

	return &ListAllOutput{Profiles: out}, nil
}

func (r *redisRepository) Spend(ctx context.Context, input SpendInput) (*SpendOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument(errAmount)
	}

	var remaining int
	p, err := r.mutate(ctx, input.PlayerID, func(p *entities.Profile) error {
		balance := balanceOf(p, input.Resource)
		if balance == nil {
			return errors.InvalidArgumentf("unknown resource %q", input.Resource)
		}
		if *balance < input.Amount {
			return errors.FailedPreconditionf("not enough %s points", input.Resource).
				WithMeta("resource", string(input.Resource)).
				WithMeta("required", input.Amount).
				WithMeta("available", *balance)
		}
		*balance -= input.Amount
		remaining = *balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "balance spent",
		"player_id", input.PlayerID,
		"resource", input.Resource,
		"amount", input.Amount,
		"remaining", remaining)

	return &SpendOutput{Profile: p, Remaining: remaining}, nil
}

func (r *redisRepository) Refund(ctx context.Context, input RefundInput) (*RefundOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument(errAmount)
	}

	p, err := r.mutate(ctx, input.PlayerID, func(p *entities.Profile) error {
		balance, ceiling := balanceOf(p, input.Resource), maxOf(p, input.Resource)
		if balance == nil {
			return errors.InvalidArgumentf("unknown resource %q", input.Resource)
		}
		*balance = min(*balance+input.Amount, ceiling)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RefundOutput{Profile: p}, nil
}

func (r *redisRepository) RestoreSanity(
	ctx context.Context,
	input RestoreSanityInput,
) (*RestoreSanityOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument(errAmount)
	}

	var gained int
	p, err := r.mutate(ctx, input.PlayerID, func(p *entities.Profile) error {
		if p.Sanity >= p.MaxSanity {
			return errors.FailedPrecondition("sanity is already full")
		}
		next := min(p.Sanity+input.Amount, p.MaxSanity)
		gained = next - p.Sanity
		p.Sanity = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RestoreSanityOutput{Profile: p, Gained: gained}, nil
}

func (r *redisRepository) Summaries(ctx context.Context, input SummariesInput) (*SummariesOutput, error) {
	out := make(map[string]*entities.PlayerSummary, len(input.PlayerIDs))

	var missing []string
	for _, id := range input.PlayerIDs {
		if id == "" {
			continue
		}
		if s, ok := r.summaries.Get(id); ok {
			c := *s
			out[id] = &c
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return &SummariesOutput{Summaries: out}, nil
	}

	found, err := r.loadMany(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, p := range found {
		s := p.Summary()
		r.summaries.SetWithTTL(id, s, 1, r.summaryTTL)
		c := *s
		out[id] = &c
	}
	r.summaries.Wait()

	return &SummariesOutput{Summaries: out}, nil
}

// mutate applies fn to the stored profile under WATCH, retrying when another
// writer commits first.
func (r *redisRepository) mutate(
	ctx context.Context,
	playerID string,
	fn func(*entities.Profile) error,
) (*entities.Profile, error) {
	key := redisclient.ProfileKey(playerID)
	var result *entities.Profile

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("profile %s not found", playerID)
			}
			return errors.Wrap(err, "failed to get profile")
		}

		p, err := decodeProfile(raw)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		p.UpdatedAt = r.clock.Now()

		data, err := json.Marshal(p)
		if err != nil {
			return errors.Wrap(err, "failed to marshal profile")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = p
		return nil
	}

	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if err == redis.TxFailedErr {
			slog.DebugContext(ctx, "profile write conflicted, retrying",
				"player_id", playerID,
				"attempt", attempt+1)
			continue
		}
		return nil, err
	}

	return nil, errors.Abortedf("profile %s kept changing, gave up after %d attempts", playerID, maxWatchRetries)
}

func (r *redisRepository) loadMany(ctx context.Context, ids []string) (map[string]*entities.Profile, error) {
	out := make(map[string]*entities.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisclient.ProfileKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		p, err := decodeProfile(raw)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable profile",
				"player_id", ids[i],
				"error", err.Error())
			continue
		}
		out[ids[i]] = p
	}

	return out, nil
}

func balanceOf(p *entities.Profile, resource travel.Resource) *int {
	switch resource {
	case travel.ResourceTravel:
		return &p.TravelPoints
	case travel.ResourceSpirit:
		return &p.Spirituality
	default:
		return nil
	}
}

func maxOf(p *entities.Profile, resource travel.Resource) int {
	if resource == travel.ResourceSpirit {
		return p.MaxSpirituality
	}
	return p.MaxTravelPoints
}

func validateProfile(p *entities.Profile) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", p.ID, vb)
	errors.ValidateEnum("role", string(p.Role),
		[]string{string(entities.RolePlayer), string(entities.RoleAdmin), string(entities.RoleDM)}, vb)
	if p.TravelPoints < 0 || p.Spirituality < 0 || p.Sanity < 0 {
		vb.InvalidField("balances", "cannot be negative")
	}
	if p.Sanity > p.MaxSanity {
		vb.InvalidField("sanity", "cannot exceed max_sanity")
	}
	return vb.Build()
}

func decodeProfile(raw string) (*entities.Profile, error) {
	var p entities.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal profile")
	}
	return &p, nil
}
