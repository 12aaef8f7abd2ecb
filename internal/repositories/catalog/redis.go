package catalog

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	cardset "github.com/KirkDiggler/chaos-room/internal/catalog"
	"github.com/KirkDiggler/chaos-room/internal/errors"
	"github.com/KirkDiggler/chaos-room/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/chaos-room/internal/redis"
)

const (
	racesKey         = "catalog:races"
	classesKey       = "catalog:classes"
	monstersKey      = "catalog:monsters"
	treasuresKey     = "catalog:treasures"
	monsterIDsKey    = "catalog:monster_ids"
	monsterKeyPrefix = "catalog:monster:"
	storedAtKey      = "catalog:stored_at"

	// Error messages
	errDefinitionsNil = "definitions cannot be nil"
	errMonsterIDEmpty = "monster ID cannot be empty"
	errNothingStored  = "no card set has been stored"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository. Each deck is kept
// as a list of JSON definitions so deck order survives the round trip.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
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

func (r *redisRepository) Store(ctx context.Context, input StoreInput) (*StoreOutput, error) {
	defs := input.Definitions
	if defs == nil {
		return nil, errors.InvalidArgument(errDefinitionsNil)
	}
	if _, err := cardset.Build(defs); err != nil {
		return nil, err
	}

	oldIDs, err := r.client.SMembers(ctx, monsterIDsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list stored monsters")
	}

	storedAt := r.clock.Now()
	pipe := r.client.TxPipeline()

	pipe.Del(ctx, racesKey, classesKey, monstersKey, treasuresKey, monsterIDsKey)
	for _, id := range oldIDs {
		pipe.Del(ctx, monsterKeyPrefix+id)
	}

	if err := pushAll(ctx, pipe, racesKey, defs.Races); err != nil {
		return nil, err
	}
	if err := pushAll(ctx, pipe, classesKey, defs.Classes); err != nil {
		return nil, err
	}
	if err := pushAll(ctx, pipe, treasuresKey, defs.Treasures); err != nil {
		return nil, err
	}
	for _, m := range defs.Monsters {
		data, err := json.Marshal(m)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal monster %s", m.ID)
		}
		pipe.RPush(ctx, monstersKey, data)
		pipe.Set(ctx, monsterKeyPrefix+m.ID, data, 0)
		pipe.SAdd(ctx, monsterIDsKey, m.ID)
	}

	pipe.Set(ctx, storedAtKey, storedAt.Unix(), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store card set")
	}

	return &StoreOutput{StoredAt: storedAt}, nil
}

func (r *redisRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	storedAt, err := r.client.Get(ctx, storedAtKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNothingStored)
		}
		return nil, errors.Wrapf(err, "failed to read card set timestamp")
	}

	defs := &cardset.Definitions{}
	if err := r.rangeInto(ctx, racesKey, &defs.Races); err != nil {
		return nil, err
	}
	if err := r.rangeInto(ctx, classesKey, &defs.Classes); err != nil {
		return nil, err
	}
	if err := r.rangeInto(ctx, monstersKey, &defs.Monsters); err != nil {
		return nil, err
	}
	if err := r.rangeInto(ctx, treasuresKey, &defs.Treasures); err != nil {
		return nil, err
	}

	built, err := cardset.Build(defs)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored card set is invalid")
	}

	return &LoadOutput{Catalog: built, StoredAt: time.Unix(storedAt, 0)}, nil
}

func (r *redisRepository) GetMonster(ctx context.Context, input GetMonsterInput) (*GetMonsterOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	result, err := r.client.Get(ctx, monsterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	var def cardset.MonsterDefinition
	if err := json.Unmarshal([]byte(result), &def); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster data")
	}

	built, err := cardset.Build(&cardset.Definitions{Monsters: []cardset.MonsterDefinition{def}})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored monster is invalid")
	}

	return &GetMonsterOutput{Monster: built.Monsters[0]}, nil
}

func (r *redisRepository) rangeInto(ctx context.Context, key string, out any) error {
	items, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", key)
	}

	// stitch the JSON entries into one array so a single Unmarshal fills out
	buf := make([]byte, 0, 2+len(items)*64)
	buf = append(buf, '[')
	for i, item := range items {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, item...)
	}
	buf = append(buf, ']')

	if err := json.Unmarshal(buf, out); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", key)
	}
	return nil
}

func pushAll[T any](ctx context.Context, pipe redis.Pipeliner, key string, items []T) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s entry", key)
		}
		pipe.RPush(ctx, key, data)
	}
	return nil
}
