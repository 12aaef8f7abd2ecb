package fightlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/chaos-room/internal/errors"
	"github.com/KirkDiggler/chaos-room/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/chaos-room/internal/redis"
)

const (
	// Key pattern: fight_log:{player_id}
	logKeyPrefix = "fight_log:"
	defaultTTL   = 24 * time.Hour

	// MaxEntries is how many fights are kept per player
	MaxEntries = 50

	// Error messages
	errEntryNil       = "entry cannot be nil"
	errPlayerIDEmpty  = "player ID cannot be empty"
	errEncounterEmpty = "encounter ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for fight logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}
	if input.Entry.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Entry.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	entry := *input.Entry
	now := r.clock.Now()
	entry.EndedAt = now
	entry.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(&entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal fight log entry")
	}

	key := buildKey(entry.PlayerID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, MaxEntries-1)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store fight log entry in Redis")
	}

	return &RecordOutput{Entry: &entry}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	raw, err := r.client.LRange(ctx, buildKey(input.PlayerID), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fight log from Redis")
	}

	now := r.clock.Now()
	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			slog.Warn("Skipping unreadable fight log entry",
				"player_id", input.PlayerID,
				"error", err)
			continue
		}
		// entries outlive their own TTL when a newer fight refreshed the key
		if now.After(entry.ExpiresAt) {
			continue
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := buildKey(input.PlayerID)
	pipe := r.client.TxPipeline()
	count := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete fight log from Redis")
	}

	return &DeleteOutput{EntriesDeleted: int(count.Val())}, nil
}

func buildKey(playerID string) string {
	return logKeyPrefix + playerID
}
