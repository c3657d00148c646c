package cache

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically removes expired entries from a MemoryCache.
type Sweeper struct {
	cron  *cron.Cron
	cache *MemoryCache
}

// NewSweeper schedules a sweep of c. schedule accepts the standard cron syntax
// and descriptors such as "@every 10m".
func NewSweeper(c *MemoryCache, schedule string) (*Sweeper, error) {
	s := &Sweeper{cron: cron.New(), cache: c}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("register cache sweep %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the scheduler in its own goroutine.
func (s *Sweeper) Start() {
	s.cron.Start()
	slog.Info("cache sweeper started")
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("cache sweeper stopped")
}

func (s *Sweeper) sweep() {
	removed := s.cache.Sweep()
	slog.Debug("cache sweep", "removed", removed, "remaining", s.cache.Len())
}
