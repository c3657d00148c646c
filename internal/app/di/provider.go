// Package di provides dependency injection factories for creating application components.
package di

import (
	"finmetrics_backend/internal/platform/externalapi/yahoo"
	infrahttp "finmetrics_backend/internal/platform/http"
	"finmetrics_backend/internal/shared/ratelimiter"
)

// NewMarket creates a fully configured Yahoo Finance client with HTTP client and rate limiter.
func NewMarket(cfg yahoo.Config, observer yahoo.Observer) *yahoo.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, cfg.UserAgent)
	limiter := ratelimiter.NewRateLimiter("yahoo", cfg.RatePerSec, cfg.Burst)
	return yahoo.NewClient(cfg, httpClient, limiter, observer)
}
