// Package yahoo provides a client for the Yahoo Finance public endpoints.
package yahoo

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL     string        // chart and quoteSummary host (e.g., "https://query1.finance.yahoo.com")
	NewsBaseURL string        // news stream host (e.g., "https://finance.yahoo.com")
	Timeout     time.Duration // HTTP request timeout
	RatePerSec  float64       // outbound requests per second, 0 disables throttling
	Burst       int
	UserAgent   string
	NewsCount   int // articles requested per news call
}

const (
	defaultBaseURL     = "https://query1.finance.yahoo.com"
	defaultNewsBaseURL = "https://finance.yahoo.com"
	defaultUserAgent   = "Mozilla/5.0 (compatible; finmetrics/1.0)"
)

// DirectQuoteSummary reports whether quoteSummary calls go straight to a Yahoo host.
// Yahoo usually rejects those without a cookie/crumb pair, which this client does not
// obtain, so profile, recommendation and P/E lookups need a proxy in front of BaseURL.
func (c Config) DirectQuoteSummary() bool {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "yahoo.com" || strings.HasSuffix(host, ".yahoo.com")
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() (Config, error) {
	cfg := Config{
		BaseURL:     envOr("YAHOO_BASE_URL", defaultBaseURL),
		NewsBaseURL: envOr("YAHOO_NEWS_BASE_URL", defaultNewsBaseURL),
		Timeout:     10 * time.Second,
		RatePerSec:  5,
		Burst:       5,
		UserAgent:   envOr("YAHOO_USER_AGENT", defaultUserAgent),
		NewsCount:   20,
	}

	if v := os.Getenv("YAHOO_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid YAHOO_TIMEOUT %q", v)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("YAHOO_RATE_PER_SEC"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return Config{}, fmt.Errorf("invalid YAHOO_RATE_PER_SEC %q", v)
		}
		cfg.RatePerSec = f
	}
	if v := os.Getenv("YAHOO_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid YAHOO_BURST %q", v)
		}
		cfg.Burst = n
	}
	if v := os.Getenv("YAHOO_NEWS_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid YAHOO_NEWS_COUNT %q", v)
		}
		cfg.NewsCount = n
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
