package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", cfg.Addr())
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 2, cfg.DB)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Addr())
	assert.Zero(t, cfg.DB)
}

func TestLoadConfig_InvalidDB(t *testing.T) {
	t.Setenv("REDIS_DB", "primary")

	_, err := LoadConfig()
	assert.Error(t, err)
}

// TestNewRedisClient_Unreachable は接続できない場合にエラーを返すことを検証します。
func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := NewRedisClient(context.Background(), Config{Host: "127.0.0.1", Port: "1"})
	assert.Error(t, err)
}
