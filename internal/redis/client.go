// Package redis wraps the go-redis client behind a small interface so the
// catalog store can be tested against miniredis.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/chaos-room/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	DB          int
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
}

// NewClient creates a Redis client for a single instance. Redis connects
// lazily; use Ping to check the server is reachable.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:        endpoint,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	}), nil
}

// Ping checks the connection
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Unavailable("redis: ping failed").WithMeta("error", err.Error())
	}
	return nil
}
