// Package router assembles the HTTP routes of the API.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	companyhandler "finmetrics_backend/internal/feature/company/transport/handler"
	metricshandler "finmetrics_backend/internal/feature/metrics/transport/handler"
	sentimenthandler "finmetrics_backend/internal/feature/sentiment/transport/handler"
	tickerhandler "finmetrics_backend/internal/feature/tickers/transport/handler"
	platformhandler "finmetrics_backend/internal/platform/http/handler"
	"finmetrics_backend/internal/platform/http/middleware"
	"finmetrics_backend/internal/platform/metrics"
)

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Metrics   *metricshandler.MetricsHandler
	Tickers   *tickerhandler.TickerHandler
	Sentiment *sentimenthandler.SentimentHandler
	Company   *companyhandler.CompanyHandler
	Health    *platformhandler.HealthHandler
}

// NewRouter builds the gin engine. m may be nil, in which case /metrics is not served.
func NewRouter(h Handlers, m *metrics.Metrics) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID(), gin.Recovery(), middleware.AccessLog())
	if m != nil {
		r.Use(m.Middleware())
	}
	// 単一のフロントエンドから参照されるため全オリジンを許可
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// 価格・指標
	r.GET("/prices", h.Metrics.Prices)
	r.GET("/core-metrics", h.Metrics.CoreMetrics)
	r.GET("/moving-average", h.Metrics.MovingAverage)
	r.GET("/trend-metrics", h.Metrics.TrendMetrics)
	r.GET("/correlation-metrics", h.Metrics.CorrelationMetrics)
	r.GET("/drawdown-metrics", h.Metrics.DrawdownMetrics)
	r.GET("/valid-parameter-options", h.Metrics.ParameterOptions)

	// 銘柄・ニュース・企業情報
	r.GET("/available-tickers", h.Tickers.List)
	r.GET("/sentiment", h.Sentiment.Sentiment)
	r.GET("/recommendations", h.Company.Recommendations)
	r.GET("/company-about", h.Company.About)

	return r
}
