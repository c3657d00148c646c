// Package response writes JSON error bodies and maps the shared error taxonomy to HTTP status codes.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finmetrics_backend/internal/shared/apperr"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Status maps err to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error logs err and writes it as a JSON error body.
// Validation and not-found errors carry their own client message; anything else
// is answered with fallback so that upstream details never reach the client.
func Error(c *gin.Context, err error, fallback string) {
	status := Status(err)
	ctx := c.Request.Context()

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "path", c.FullPath(), "status", status, "error", err)
		c.AbortWithStatusJSON(status, ErrorResponse{Detail: fallback})
		return
	}

	slog.InfoContext(ctx, "request rejected", "path", c.FullPath(), "status", status, "error", err)
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: apperr.ClientMessage(err, fallback)})
}

// BindError answers a query that could not be decoded.
func BindError(c *gin.Context, err error) {
	Error(c, apperr.Validationf("Invalid query parameters: %v", err), "")
}
