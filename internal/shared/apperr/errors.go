// Package apperr defines the error taxonomy shared by every feature.
package apperr

import (
	"errors"
	"fmt"
)

// Errors raised by the usecases.
// Callers wrap them with context and upper layers classify them with errors.Is.
var (
	// ErrValidation indicates a bad or disallowed request parameter.
	// It is raised before any cache or provider work.
	ErrValidation = errors.New("invalid parameter")

	// ErrNotFound indicates that the primary data is empty or too short.
	ErrNotFound = errors.New("no data found")

	// ErrUpstream indicates that the market-data provider failed or returned malformed data.
	// Its details are logged but never returned to the client.
	ErrUpstream = errors.New("market data provider failed")

	// ErrComputation indicates an unexpected failure while computing a result.
	ErrComputation = errors.New("computation failed")
)

// Error is a classified error whose Message is safe to return to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Validationf returns an ErrValidation with a client-facing message.
func Validationf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf returns an ErrNotFound with a client-facing message.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps a provider failure. The cause is kept for logging only.
func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}

// ClientMessage returns the text that may be shown to the client for err,
// or fallback when err carries no client-facing message.
func ClientMessage(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}
