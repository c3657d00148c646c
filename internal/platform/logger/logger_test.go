package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

// TestInitWithWriter_AddsServiceAndRequestID はJSON出力にserviceとrequest_idが含まれることを検証します。
// slog のデフォルトを書き換えるため並列実行しない。
func TestInitWithWriter_AddsServiceAndRequestID(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := InitWithWriter(&buf, "finmetrics", slog.LevelInfo)

	ctx := WithRequestID(context.Background(), "req-123")
	l.InfoContext(ctx, "cache hit", "endpoint", "prices")
	slog.DebugContext(ctx, "dropped below level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "finmetrics", rec["service"])
	assert.Equal(t, "req-123", rec["request_id"])
	assert.Equal(t, "prices", rec["endpoint"])
	assert.Equal(t, "cache hit", rec["msg"])
}

func TestRequestID_Missing(t *testing.T) {
	t.Parallel()
	assert.Empty(t, RequestID(context.Background()))
}
