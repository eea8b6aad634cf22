package maps

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-atlas/internal/redis"
)

const (
	// Error messages
	errMapNil       = "map cannot be nil"
	errMapIDEmpty   = "map ID cannot be empty"
	errTokenNil     = "token cannot be nil"
	errTokenIDEmpty = "token ID cannot be empty"
	errPlayerEmpty  = "player ID cannot be empty"
	errZoneNil      = "zone cannot be nil"
	errZoneIDEmpty  = "zone ID cannot be empty"
	errRegionNil    = "region cannot be nil"
	errRegionEmpty  = "region ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis map repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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
	return vb.Build()
}

// NewRedis creates a new Redis-backed map repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) GetMap(ctx context.Context, input GetMapInput) (*GetMapOutput, error) {
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}

	var m entities.Map
	if err := r.getJSON(ctx, redisclient.MapKey(input.MapID), &m); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("map %s not found", input.MapID)
		}
		return nil, err
	}

	return &GetMapOutput{Map: &m}, nil
}

func (r *redisRepository) SaveMap(ctx context.Context, input SaveMapInput) (*SaveMapOutput, error) {
	if input.Map == nil {
		return nil, errors.InvalidArgument(errMapNil)
	}
	if input.Map.ID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}

	exists, err := r.client.Exists(ctx, redisclient.MapKey(input.Map.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check map existence")
	}

	now := r.clock.Now()
	m := *input.Map
	if exists == 0 && m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	data, err := json.Marshal(&m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal map")
	}

	op := entities.ChangeOpUpdate
	if exists == 0 {
		op = entities.ChangeOpInsert
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.MapKey(m.ID), data, 0)
	pipe.SAdd(ctx, redisclient.MapIndexKey, m.ID)
	pipe.XAdd(ctx, redisclient.ChangeArgs(m.ID, entities.ChangeTableMaps, op, m.ID, now))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save map")
	}

	return &SaveMapOutput{Map: &m, Created: exists == 0}, nil
}

func (r *redisRepository) DeleteMap(ctx context.Context, input DeleteMapInput) (*DeleteMapOutput, error) {
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}
	if _, err := r.GetMap(ctx, GetMapInput(input)); err != nil {
		return nil, err
	}

	tokens, err := r.ListTokens(ctx, ListTokensInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	for _, t := range tokens.Tokens {
		pipe.Del(ctx, redisclient.TokenMapKey(t.ID))
		if t.PlayerID != "" {
			pipe.Del(ctx, redisclient.PlayerTokenKey(t.PlayerID))
		}
	}
	pipe.Del(ctx,
		redisclient.MapKey(input.MapID),
		redisclient.MapTokensKey(input.MapID),
		redisclient.MapZonesKey(input.MapID),
		redisclient.MapRestPointsKey(input.MapID),
		redisclient.MapChurchesKey(input.MapID),
	)
	pipe.SRem(ctx, redisclient.MapIndexKey, input.MapID)
	pipe.XAdd(ctx, redisclient.ChangeArgs(input.MapID, entities.ChangeTableMaps, entities.ChangeOpDelete, input.MapID, r.clock.Now()))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete map")
	}

	slog.InfoContext(ctx, "map deleted", "map_id", input.MapID, "tokens", len(tokens.Tokens))

	return &DeleteMapOutput{}, nil
}

func (r *redisRepository) ListMaps(ctx context.Context, _ ListMapsInput) (*ListMapsOutput, error) {
	ids, err := r.client.SMembers(ctx, redisclient.MapIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list map ids")
	}

	maps := make([]*entities.Map, 0, len(ids))
	for _, id := range ids {
		out, err := r.GetMap(ctx, GetMapInput{MapID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "map not found, cleaning up index", "map_id", id)
				r.client.SRem(ctx, redisclient.MapIndexKey, id)
				continue
			}
			return nil, err
		}
		maps = append(maps, out.Map)
	}

	sort.Slice(maps, func(i, j int) bool {
		if maps[i].Name != maps[j].Name {
			return maps[i].Name < maps[j].Name
		}
		return maps[i].ID < maps[j].ID
	})

	return &ListMapsOutput{Maps: maps}, nil
}

func (r *redisRepository) ListTokens(ctx context.Context, input ListTokensInput) (*ListTokensOutput, error) {
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}

	tokens, err := listHash[entities.Token](ctx, r.client, redisclient.MapTokensKey(input.MapID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list tokens of map %s", input.MapID)
	}

	sort.Slice(tokens, func(i, j int) bool {
		if !tokens[i].CreatedAt.Equal(tokens[j].CreatedAt) {
			return tokens[i].CreatedAt.Before(tokens[j].CreatedAt)
		}
		return tokens[i].ID < tokens[j].ID
	})

	return &ListTokensOutput{Tokens: tokens}, nil
}

func (r *redisRepository) GetToken(ctx context.Context, input GetTokenInput) (*GetTokenOutput, error) {
	if input.TokenID == "" {
		return nil, errors.InvalidArgument(errTokenIDEmpty)
	}

	mapID, err := r.client.Get(ctx, redisclient.TokenMapKey(input.TokenID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("token %s not found", input.TokenID)
		}
		return nil, errors.Wrap(err, "failed to resolve token map")
	}

	raw, err := r.client.HGet(ctx, redisclient.MapTokensKey(mapID), input.TokenID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("token %s not found", input.TokenID)
		}
		return nil, errors.Wrap(err, "failed to get token")
	}

	var t entities.Token
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal token")
	}

	return &GetTokenOutput{Token: &t}, nil
}

func (r *redisRepository) FindPlayerToken(
	ctx context.Context,
	input FindPlayerTokenInput,
) (*FindPlayerTokenOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerEmpty)
	}

	tokenID, err := r.client.Get(ctx, redisclient.PlayerTokenKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %s has no token", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to resolve player token")
	}

	out, err := r.GetToken(ctx, GetTokenInput{TokenID: tokenID})
	if err != nil {
		return nil, err
	}

	return &FindPlayerTokenOutput{Token: out.Token}, nil
}

func (r *redisRepository) CreateToken(ctx context.Context, input CreateTokenInput) (*CreateTokenOutput, error) {
	if input.Token == nil {
		return nil, errors.InvalidArgument(errTokenNil)
	}
	if err := input.Token.Validate(); err != nil {
		return nil, err
	}
	if err := r.requireMap(ctx, input.Token.MapID); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	t := input.Token.Clone()
	t.X = entities.ClampPosition(t.X)
	t.Y = entities.ClampPosition(t.Y)
	t.CreatedAt = now
	t.UpdatedAt = now
	stripResolved(t)

	// The player pointer doubles as the one-token-per-player guard.
	if t.PlayerID != "" {
		ok, err := r.client.SetNX(ctx, redisclient.PlayerTokenKey(t.PlayerID), t.ID, 0).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to claim player token")
		}
		if !ok {
			return nil, errors.AlreadyExistsf("player %s already has a token", t.PlayerID)
		}
	}

	data, err := json.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal token")
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, redisclient.MapTokensKey(t.MapID), t.ID, data)
	pipe.Set(ctx, redisclient.TokenMapKey(t.ID), t.MapID, 0)
	pipe.XAdd(ctx, redisclient.ChangeArgs(t.MapID, entities.ChangeTableTokens, entities.ChangeOpInsert, t.ID, now))
	if _, err := pipe.Exec(ctx); err != nil {
		if t.PlayerID != "" {
			r.client.Del(ctx, redisclient.PlayerTokenKey(t.PlayerID))
		}
		return nil, errors.Wrap(err, "failed to create token")
	}

	return &CreateTokenOutput{Token: t}, nil
}

func (r *redisRepository) UpdateToken(ctx context.Context, input UpdateTokenInput) (*UpdateTokenOutput, error) {
	if input.Token == nil {
		return nil, errors.InvalidArgument(errTokenNil)
	}
	if err := input.Token.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.GetToken(ctx, GetTokenInput{TokenID: input.Token.ID})
	if err != nil {
		return nil, err
	}
	prev := existing.Token
	if prev.Type != input.Token.Type || prev.PlayerID != input.Token.PlayerID {
		return nil, errors.InvalidArgumentf("token %s cannot change owner", prev.ID)
	}

	crossMap := prev.MapID != input.Token.MapID
	if crossMap {
		if err := r.requireMap(ctx, input.Token.MapID); err != nil {
			return nil, err
		}
	}

	now := r.clock.Now()
	t := input.Token.Clone()
	t.X = entities.ClampPosition(t.X)
	t.Y = entities.ClampPosition(t.Y)
	t.CreatedAt = prev.CreatedAt
	t.UpdatedAt = now
	stripResolved(t)

	data, err := json.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal token")
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, redisclient.MapTokensKey(t.MapID), t.ID, data)
	if crossMap {
		pipe.HDel(ctx, redisclient.MapTokensKey(prev.MapID), t.ID)
		pipe.Set(ctx, redisclient.TokenMapKey(t.ID), t.MapID, 0)
		pipe.XAdd(ctx, redisclient.ChangeArgs(prev.MapID, entities.ChangeTableTokens, entities.ChangeOpDelete, t.ID, now))
		pipe.XAdd(ctx, redisclient.ChangeArgs(t.MapID, entities.ChangeTableTokens, entities.ChangeOpInsert, t.ID, now))
	} else {
		pipe.XAdd(ctx, redisclient.ChangeArgs(t.MapID, entities.ChangeTableTokens, entities.ChangeOpUpdate, t.ID, now))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to update token")
	}

	return &UpdateTokenOutput{Token: t, PreviousMapID: prev.MapID}, nil
}

func (r *redisRepository) DeleteToken(ctx context.Context, input DeleteTokenInput) (*DeleteTokenOutput, error) {
	existing, err := r.GetToken(ctx, GetTokenInput(input))
	if err != nil {
		return nil, err
	}
	t := existing.Token

	pipe := r.client.TxPipeline()
	pipe.HDel(ctx, redisclient.MapTokensKey(t.MapID), t.ID)
	pipe.Del(ctx, redisclient.TokenMapKey(t.ID))
	if t.PlayerID != "" {
		pipe.Del(ctx, redisclient.PlayerTokenKey(t.PlayerID))
	}
	pipe.XAdd(ctx, redisclient.ChangeArgs(t.MapID, entities.ChangeTableTokens, entities.ChangeOpDelete, t.ID, r.clock.Now()))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete token")
	}

	return &DeleteTokenOutput{Token: t}, nil
}

func (r *redisRepository) ListZones(ctx context.Context, input ListZonesInput) (*ListZonesOutput, error) {
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}

	zones, err := listHash[entities.LockedZone](ctx, r.client, redisclient.MapZonesKey(input.MapID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list zones of map %s", input.MapID)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })

	return &ListZonesOutput{Zones: zones}, nil
}

func (r *redisRepository) SaveZone(ctx context.Context, input SaveZoneInput) (*SaveZoneOutput, error) {
	if input.Zone == nil {
		return nil, errors.InvalidArgument(errZoneNil)
	}
	if input.Zone.ID == "" {
		return nil, errors.InvalidArgument(errZoneIDEmpty)
	}
	if err := r.requireMap(ctx, input.Zone.MapID); err != nil {
		return nil, err
	}

	z := input.Zone.Clone()
	now := r.clock.Now()
	if z.CreatedAt.IsZero() {
		z.CreatedAt = now
	}

	created, err := r.saveHashRow(ctx, redisclient.MapZonesKey(z.MapID), z.MapID, entities.ChangeTableZones, z.ID, z, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save zone")
	}

	return &SaveZoneOutput{Zone: z, Created: created}, nil
}

func (r *redisRepository) DeleteZone(ctx context.Context, input DeleteZoneInput) (*DeleteZoneOutput, error) {
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}
	if input.ZoneID == "" {
		return nil, errors.InvalidArgument(errZoneIDEmpty)
	}

	err := r.deleteHashRow(ctx, redisclient.MapZonesKey(input.MapID), input.MapID, entities.ChangeTableZones, input.ZoneID)
	if err != nil {
		return nil, err
	}

	return &DeleteZoneOutput{}, nil
}

func (r *redisRepository) ListRegions(ctx context.Context, input ListRegionsInput) (*ListRegionsOutput, error) {
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}
	key, _, err := regionKey(input.MapID, input.Kind)
	if err != nil {
		return nil, err
	}

	regions, err := listHash[entities.CircleRegion](ctx, r.client, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s regions of map %s", input.Kind, input.MapID)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].ID < regions[j].ID })

	return &ListRegionsOutput{Regions: regions}, nil
}

func (r *redisRepository) SaveRegion(ctx context.Context, input SaveRegionInput) (*SaveRegionOutput, error) {
	if input.Region == nil {
		return nil, errors.InvalidArgument(errRegionNil)
	}
	if input.Region.ID == "" {
		return nil, errors.InvalidArgument(errRegionEmpty)
	}
	key, table, err := regionKey(input.Region.MapID, input.Region.Kind)
	if err != nil {
		return nil, err
	}
	if err := r.requireMap(ctx, input.Region.MapID); err != nil {
		return nil, err
	}

	reg := *input.Region
	now := r.clock.Now()
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = now
	}

	created, err := r.saveHashRow(ctx, key, reg.MapID, table, reg.ID, &reg, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save region")
	}

	return &SaveRegionOutput{Region: &reg, Created: created}, nil
}

func (r *redisRepository) DeleteRegion(ctx context.Context, input DeleteRegionInput) (*DeleteRegionOutput, error) {
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}
	if input.RegionID == "" {
		return nil, errors.InvalidArgument(errRegionEmpty)
	}
	key, table, err := regionKey(input.MapID, input.Kind)
	if err != nil {
		return nil, err
	}

	if err := r.deleteHashRow(ctx, key, input.MapID, table, input.RegionID); err != nil {
		return nil, err
	}

	return &DeleteRegionOutput{}, nil
}

func (r *redisRepository) requireMap(ctx context.Context, mapID string) error {
	if mapID == "" {
		return errors.InvalidArgument(errMapIDEmpty)
	}
	n, err := r.client.Exists(ctx, redisclient.MapKey(mapID)).Result()
	if err != nil {
		return errors.Wrap(err, "failed to check map existence")
	}
	if n == 0 {
		return errors.NotFoundf("map %s not found", mapID)
	}
	return nil
}

func (r *redisRepository) getJSON(ctx context.Context, key string, v any) error {
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.NotFoundf("%s not found", key)
		}
		return errors.Wrapf(err, "failed to get %s", key)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", key)
	}
	return nil
}

func (r *redisRepository) saveHashRow(
	ctx context.Context,
	key, mapID string,
	table entities.ChangeTable,
	rowID string,
	row any,
	now time.Time,
) (bool, error) {
	exists, err := r.client.HExists(ctx, key, rowID).Result()
	if err != nil {
		return false, err
	}

	data, err := json.Marshal(row)
	if err != nil {
		return false, err
	}

	op := entities.ChangeOpUpdate
	if !exists {
		op = entities.ChangeOpInsert
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, rowID, data)
	pipe.XAdd(ctx, redisclient.ChangeArgs(mapID, table, op, rowID, now))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return !exists, nil
}

func (r *redisRepository) deleteHashRow(
	ctx context.Context,
	key, mapID string,
	table entities.ChangeTable,
	rowID string,
) error {
	pipe := r.client.TxPipeline()
	removed := pipe.HDel(ctx, key, rowID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s %s", table, rowID)
	}
	if removed.Val() == 0 {
		return errors.NotFoundf("%s %s not found", table, rowID)
	}

	if err := r.client.XAdd(ctx, redisclient.ChangeArgs(mapID, table, entities.ChangeOpDelete, rowID, r.clock.Now())).Err(); err != nil {
		return errors.Wrap(err, "failed to record change")
	}

	return nil
}

func regionKey(mapID string, kind entities.RegionKind) (string, entities.ChangeTable, error) {
	switch kind {
	case entities.RegionKindRestPoint:
		return redisclient.MapRestPointsKey(mapID), entities.ChangeTableRestPoints, nil
	case entities.RegionKindChurch:
		return redisclient.MapChurchesKey(mapID), entities.ChangeTableChurches, nil
	default:
		return "", "", errors.InvalidArgumentf("unknown region kind %q", kind)
	}
}

// stripResolved clears fields filled in at fetch time.
func stripResolved(t *entities.Token) {
	t.DisplayName = ""
	t.AvatarURL = ""
	t.Role = ""
	t.Stub = false
}

func listHash[T any](ctx context.Context, client redisclient.Client, key string) ([]*T, error) {
	rows, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(rows))
	for field, raw := range rows {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s[%s]", key, field)
		}
		out = append(out, &v)
	}
	return out, nil
}
