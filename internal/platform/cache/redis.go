package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Store backed by Redis. Keys are prefixed with a namespace
// and expiry is delegated to Redis.
// Redis failures are logged and reported as misses; writes are best effort.
type RedisCache struct {
	rdb       *redis.Client
	namespace string
}

// NewRedisCache creates a RedisCache. If namespace is empty, it uses "finmetrics".
func NewRedisCache(rdb *redis.Client, namespace string) *RedisCache {
	if namespace == "" {
		namespace = "finmetrics"
	}
	return &RedisCache{rdb: rdb, namespace: namespace}
}

// Get fetches key from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("redis cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return b, true
}

// Set stores value under key. A ttl <= 0 stores without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		slog.Warn("redis cache set failed", "key", key, "error", err)
	}
}

// Delete removes key.
func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, c.key(key)).Err(); err != nil {
		slog.Warn("redis cache delete failed", "key", key, "error", err)
	}
}

// key namespaces a composite key. The ':' separators of the composite key are kept
// so that keys of one endpoint share a prefix.
func (c *RedisCache) key(k string) string {
	return c.namespace + ":" + safe(k)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
