package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Backends accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds cache settings.
type Config struct {
	Backend       string
	DefaultTTL    time.Duration
	SingleFlight  bool
	SweepSchedule string // empty disables the sweeper
}

// LoadConfig reads cache settings from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		Backend:       BackendMemory,
		DefaultTTL:    600 * time.Second,
		SweepSchedule: os.Getenv("CACHE_SWEEP_SCHEDULE"),
	}

	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		if v != BackendMemory && v != BackendRedis {
			return Config{}, fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, v)
		}
		cfg.Backend = v
	}
	if v := os.Getenv("CACHE_DEFAULT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid CACHE_DEFAULT_TTL %q", v)
		}
		cfg.DefaultTTL = d
	}
	if v := os.Getenv("CACHE_SINGLEFLIGHT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CACHE_SINGLEFLIGHT %q: %w", v, err)
		}
		cfg.SingleFlight = b
	}
	return cfg, nil
}
