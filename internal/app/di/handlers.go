package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"finmetrics_backend/internal/app/router"
	companyhandler "finmetrics_backend/internal/feature/company/transport/handler"
	companyusecase "finmetrics_backend/internal/feature/company/usecase"
	metricshandler "finmetrics_backend/internal/feature/metrics/transport/handler"
	metricsusecase "finmetrics_backend/internal/feature/metrics/usecase"
	sentimenthandler "finmetrics_backend/internal/feature/sentiment/transport/handler"
	sentimentusecase "finmetrics_backend/internal/feature/sentiment/usecase"
	tickeradapters "finmetrics_backend/internal/feature/tickers/adapters"
	tickerhandler "finmetrics_backend/internal/feature/tickers/transport/handler"
	tickerusecase "finmetrics_backend/internal/feature/tickers/usecase"
	"finmetrics_backend/internal/platform/cache"
	"finmetrics_backend/internal/platform/externalapi/yahoo"
	platformhandler "finmetrics_backend/internal/platform/http/handler"
	"finmetrics_backend/internal/platform/sentiment"
	"finmetrics_backend/internal/shared/memo"
)

// Deps are the opened resources shared by every feature.
type Deps struct {
	DB     *gorm.DB
	Cache  cache.Store
	Dedup  memo.Deduplicator
	TTL    time.Duration
	Market *yahoo.Client
	Scorer *sentiment.VaderScorer
	Checks []platformhandler.Check
}

// NewHandlers wires repositories, usecases and handlers of all features.
func NewHandlers(d Deps) router.Handlers {
	tickerRepo := tickeradapters.NewTickerRepository(d.DB)
	tickerUC := tickerusecase.NewTickerUsecase(tickerRepo)

	metricsUC := metricsusecase.NewMetricsUsecase(d.Market, tickerUC, d.Cache, d.Dedup, d.TTL)
	sentimentUC := sentimentusecase.NewSentimentUsecase(d.Market, d.Scorer, tickerUC, d.Cache, d.Dedup, d.TTL)
	companyUC := companyusecase.NewCompanyUsecase(d.Market, tickerUC, d.Cache, d.Dedup, d.TTL)

	checks := append([]platformhandler.Check{{Name: "db", Ping: DBPing(d.DB)}}, d.Checks...)

	return router.Handlers{
		Metrics:   metricshandler.NewMetricsHandler(metricsUC),
		Tickers:   tickerhandler.NewTickerHandler(tickerUC),
		Sentiment: sentimenthandler.NewSentimentHandler(sentimentUC),
		Company:   companyhandler.NewCompanyHandler(companyUC),
		Health:    platformhandler.NewHealthHandler(checks...),
	}
}

// DBPing adapts a gorm connection to a health check.
func DBPing(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
