// Package metrics holds the Prometheus collectors of the API process.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors used by the service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: route, method, status
	HTTPDuration *prometheus.HistogramVec // labels: route, method

	CacheLookups *prometheus.CounterVec // labels: endpoint, result=hit|miss

	ProviderCalls    *prometheus.CounterVec   // labels: operation, outcome=ok|error
	ProviderDuration *prometheus.HistogramVec // labels: operation

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg.
// A fresh prometheus.NewRegistry() keeps tests isolated from the global registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finmetrics_http_requests_total",
			Help: "HTTP requests served, by route and status",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "finmetrics_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finmetrics_cache_lookups_total",
			Help: "Result cache lookups, by endpoint and hit/miss",
		}, []string{"endpoint", "result"}),
		ProviderCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finmetrics_provider_calls_total",
			Help: "Market data provider calls, by operation and outcome",
		}, []string{"operation", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "finmetrics_provider_call_duration_seconds",
			Help:    "Market data provider call latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"operation"}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.CacheLookups,
		m.ProviderCalls,
		m.ProviderDuration,
	)

	return m
}

// ObserveProvider records one provider call.
func (m *Metrics) ObserveProvider(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.ProviderCalls.WithLabelValues(operation, outcome).Inc()
	m.ProviderDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObserveCache records a cache lookup for endpoint.
func (m *Metrics) ObserveCache(endpoint string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(endpoint, result).Inc()
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registered collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
