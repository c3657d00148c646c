// Package cache provides the TTL key/value stores used to memoise endpoint results.
package cache

import (
	"context"
	"strings"
	"time"
)

// Store is a TTL key/value store. A ttl <= 0 stores the value without expiry.
// Get reports false for missing and expired keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

var (
	_ Store = (*MemoryCache)(nil)
	_ Store = (*RedisCache)(nil)
	_ Store = (*InstrumentedCache)(nil)
)

// Endpoint returns the endpoint part of a composite key ("coremetrics:AAPL:1:1d:14" -> "coremetrics").
func Endpoint(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
