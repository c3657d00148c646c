package cache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Deduplicator runs the computation behind a cache miss.
type Deduplicator interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) ([]byte, error)) ([]byte, error)
}

var (
	_ Deduplicator = Direct{}
	_ Deduplicator = (*SingleFlight)(nil)
)

// Direct runs every computation under the caller's context.
// Concurrent misses on one key each call the provider.
type Direct struct{}

func (Direct) Do(ctx context.Context, _ string, fn func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return fn(ctx)
}

// SingleFlight collapses concurrent misses on one key into a single computation.
// The shared computation is detached from the cancellation of whichever caller
// started it; each caller stops waiting when its own ctx is done.
type SingleFlight struct {
	group singleflight.Group
}

// NewSingleFlight creates a SingleFlight.
func NewSingleFlight() *SingleFlight {
	return &SingleFlight{}
}

// Do runs fn once per key among concurrent callers; every caller receives its own copy.
func (s *SingleFlight) Do(ctx context.Context, key string, fn func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return fn(shared)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		b, _ := res.Val.([]byte)
		return clone(b), nil
	}
}
