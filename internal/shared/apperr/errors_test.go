package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassification はerrors.Isによる分類とクライアント向けメッセージの取り出しを検証します。
func TestClassification(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name        string
		err         error
		kind        error
		wantMessage string
	}{
		{
			name:        "validation keeps its message",
			err:         Validationf("interval must be one of %v", []string{"1d", "1h"}),
			kind:        ErrValidation,
			wantMessage: "interval must be one of [1d 1h]",
		},
		{
			name:        "not found keeps its message",
			err:         NotFoundf("No price data found for symbol."),
			kind:        ErrNotFound,
			wantMessage: "No price data found for symbol.",
		},
		{
			name:        "upstream hides the cause",
			err:         Upstream("chart AAPL", cause),
			kind:        ErrUpstream,
			wantMessage: "fallback",
		},
		{
			name:        "wrapped validation is still classified",
			err:         fmt.Errorf("core metrics: %w", Validationf("bad")),
			kind:        ErrValidation,
			wantMessage: "bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.wantMessage, ClientMessage(tt.err, "fallback"))
		})
	}
}

// TestUpstream_KeepsCause はUpstreamが元のエラーをチェーンに保持することを検証します。
func TestUpstream_KeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("yahoo http 503")
	err := Upstream("chart MSFT", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "chart MSFT")
}
