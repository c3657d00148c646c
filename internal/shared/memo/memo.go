// Package memo memoises JSON-encodable results in a TTL cache.
package memo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"finmetrics_backend/internal/shared/apperr"
)

// Cache is the subset of a TTL store used by Load.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// Deduplicator runs the computation behind a cache miss. The ctx handed to fn
// may differ from the caller's when the computation is shared.
type Deduplicator interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) ([]byte, error)) ([]byte, error)
}

// Load returns the cached value under key, or computes, stores and returns it.
// Errors are never cached. A panic inside compute becomes apperr.ErrComputation.
// A nil dedup runs compute directly.
func Load[T any](ctx context.Context, c Cache, dedup Deduplicator, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var out T

	if b, ok := c.Get(ctx, key); ok {
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupted entry
		slog.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
		c.Delete(ctx, key)
		out = *new(T)
	}

	fill := func(ctx context.Context) ([]byte, error) {
		v, err := run(ctx, key, compute)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: encode %s: %w", apperr.ErrComputation, key, err)
		}
		c.Set(ctx, key, b, ttl)
		return b, nil
	}

	var (
		b   []byte
		err error
	)
	if dedup == nil {
		b, err = fill(ctx)
	} else {
		b, err = dedup.Do(ctx, key, fill)
	}
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("%w: decode %s: %w", apperr.ErrComputation, key, err)
	}
	return out, nil
}

// run calls compute and converts a panic into an error.
func run[T any](ctx context.Context, key string, compute func(context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic while computing result", "key", key, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %s: %v", apperr.ErrComputation, key, r)
		}
	}()
	return compute(ctx)
}
