package di

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"finmetrics_backend/internal/platform/cache"
	"finmetrics_backend/internal/shared/memo"
)

// NewCache creates the result cache selected by cfg.Backend, wrapped with hit/miss recording.
// When Redis is requested but rdb is nil, it falls back to the in-process cache.
// The returned *cache.MemoryCache is nil for the Redis backend.
func NewCache(cfg cache.Config, rdb *redis.Client, recorder cache.LookupRecorder) (cache.Store, *cache.MemoryCache) {
	if cfg.Backend == cache.BackendRedis {
		if rdb != nil {
			return cache.NewInstrumentedCache(cache.NewRedisCache(rdb, ""), recorder), nil
		}
		slog.Warn("Redis unavailable, using in-process cache")
	}
	mem := cache.NewMemoryCache()
	return cache.NewInstrumentedCache(mem, recorder), mem
}

// NewDeduplicator returns the miss handler chosen by cfg.SingleFlight.
func NewDeduplicator(cfg cache.Config) memo.Deduplicator {
	if cfg.SingleFlight {
		return cache.NewSingleFlight()
	}
	return cache.Direct{}
}

// RedisPing adapts a Redis client to a health check.
func RedisPing(rdb *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
}
