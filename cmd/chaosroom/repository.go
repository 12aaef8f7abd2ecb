package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cardset "github.com/KirkDiggler/chaos-room/internal/catalog"
	"github.com/KirkDiggler/chaos-room/internal/pkg/clock"
	"github.com/KirkDiggler/chaos-room/internal/redis"
	catalogrepo "github.com/KirkDiggler/chaos-room/internal/repositories/catalog"
	"github.com/KirkDiggler/chaos-room/internal/repositories/fightlog"
)

// readDefinitions reads a card set file, or the built-in set when path is empty
func readDefinitions(path string) (*cardset.Definitions, error) {
	if path == "" {
		return cardset.DefaultDefinitions()
	}
	return cardset.ReadFile(path)
}

// connectRedis opens the client and checks the server answers
func connectRedis(ctx context.Context) (redis.Client, error) {
	client, err := redis.NewClient(redisAddr, &redis.Options{
		MaxRetries:  2,
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis at %s: %w", redisAddr, err)
	}
	return client, nil
}

// openFightLog returns the Redis fight log when --redis-addr is set, or nil
func openFightLog(ctx context.Context) (fightlog.Repository, func(), error) {
	if redisAddr == "" {
		return nil, func() {}, nil
	}

	client, err := connectRedis(ctx)
	if err != nil {
		return nil, nil, err
	}
	repo, err := fightlog.NewRedisRepository(&fightlog.Config{Client: client, Clock: clock.New()})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return repo, func() { _ = client.Close() }, nil
}

// openCatalog returns the Redis repository when --redis-addr is set. Otherwise
// the card set from path (or the built-in one) is stored in memory.
func openCatalog(ctx context.Context, path string) (catalogrepo.Repository, func(), error) {
	if redisAddr != "" {
		if path != "" {
			slog.Warn("Ignoring --catalog, the card set is read from Redis", "redis_addr", redisAddr)
		}

		client, err := connectRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	}

	defs, err := readDefinitions(path)
	if err != nil {
		return nil, nil, err
	}

	repo := catalogrepo.NewInMemory(nil)
	if _, err := repo.Store(ctx, catalogrepo.StoreInput{Definitions: defs}); err != nil {
		return nil, nil, fmt.Errorf("invalid card set: %w", err)
	}
	return repo, func() {}, nil
}
