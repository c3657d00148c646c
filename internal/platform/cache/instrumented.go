package cache

import (
	"context"
	"log/slog"
	"time"
)

// LookupRecorder receives one observation per cache lookup.
type LookupRecorder interface {
	ObserveCache(endpoint string, hit bool)
}

// InstrumentedCache decorates a Store, recording hits and misses per endpoint.
type InstrumentedCache struct {
	inner    Store
	recorder LookupRecorder
}

// NewInstrumentedCache wraps inner. A nil recorder only logs.
func NewInstrumentedCache(inner Store, recorder LookupRecorder) *InstrumentedCache {
	return &InstrumentedCache{inner: inner, recorder: recorder}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, ok := c.inner.Get(ctx, key)
	endpoint := Endpoint(key)
	if c.recorder != nil {
		c.recorder.ObserveCache(endpoint, ok)
	}
	if ok {
		slog.DebugContext(ctx, "cache hit", "key", key)
	} else {
		slog.DebugContext(ctx, "cache miss", "key", key)
	}
	return b, ok
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.inner.Set(ctx, key, value, ttl)
}

func (c *InstrumentedCache) Delete(ctx context.Context, key string) {
	c.inner.Delete(ctx, key)
}
