package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redisv9 "github.com/redis/go-redis/v9"

	"finmetrics_backend/internal/app/di"
	"finmetrics_backend/internal/app/router"
	tickeradapters "finmetrics_backend/internal/feature/tickers/adapters"
	tickerusecase "finmetrics_backend/internal/feature/tickers/usecase"
	"finmetrics_backend/internal/platform/cache"
	"finmetrics_backend/internal/platform/db"
	"finmetrics_backend/internal/platform/externalapi/yahoo"
	platformhandler "finmetrics_backend/internal/platform/http/handler"
	"finmetrics_backend/internal/platform/logger"
	"finmetrics_backend/internal/platform/metrics"
	infraredis "finmetrics_backend/internal/platform/redis"
	"finmetrics_backend/internal/platform/sentiment"
)

func main() {
	// .env は任意（本番では環境変数を直接設定）
	envErr := godotenv.Load()
	logger.Init("finmetrics", logger.ParseLevel(os.Getenv("LOG_LEVEL")))
	if envErr != nil {
		slog.Debug(".env not loaded", "error", envErr)
	}

	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cacheCfg, err := cache.LoadConfig()
	if err != nil {
		return err
	}
	yahooCfg, err := yahoo.LoadConfig()
	if err != nil {
		return err
	}
	if yahooCfg.DirectQuoteSummary() {
		slog.Warn("YAHOO_BASE_URL points at Yahoo directly; quoteSummary usually needs a crumb, so /company-about, /recommendations and pe_ratio may fail. Set YAHOO_BASE_URL to a crumb-handling proxy.",
			"base_url", yahooCfg.BaseURL)
	}

	// db
	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		return err
	}
	if err := seedTickers(ctx, tickeradapters.NewTickerRepository(gdb)); err != nil {
		return err
	}

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Redis（CACHE_BACKEND=redis の場合のみ）
	var rdb *redisv9.Client
	var checks []platformhandler.Check
	if cacheCfg.Backend == cache.BackendRedis {
		redisCfg, err := infraredis.LoadConfig()
		if err != nil {
			return err
		}
		if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("Redis unavailable. Running with in-process cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
			checks = append(checks, platformhandler.Check{Name: "redis", Ping: di.RedisPing(rdb)})
		}
	}

	store, mem := di.NewCache(cacheCfg, rdb, m)
	if mem != nil && cacheCfg.SweepSchedule != "" {
		sweeper, err := cache.NewSweeper(mem, cacheCfg.SweepSchedule)
		if err != nil {
			return err
		}
		sweeper.Start()
		defer sweeper.Stop()
	}

	handlers := di.NewHandlers(di.Deps{
		DB:     gdb,
		Cache:  store,
		Dedup:  di.NewDeduplicator(cacheCfg),
		TTL:    cacheCfg.DefaultTTL,
		Market: di.NewMarket(yahooCfg, m),
		Scorer: sentiment.NewVaderScorer(),
		Checks: checks,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router.NewRouter(handlers, m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "cache_backend", cacheCfg.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// seedTickers はテーブルを作成し、空の場合は TICKERS_CSV から銘柄を登録します。
func seedTickers(ctx context.Context, repo interface {
	Migrate(ctx context.Context) error
	tickerusecase.SeedRepository
}) error {
	if err := repo.Migrate(ctx); err != nil {
		return err
	}
	path := os.Getenv("TICKERS_CSV")
	if path == "" {
		path = "data/stocks.csv"
	}
	_, err := tickerusecase.NewSeedUsecase(tickeradapters.NewCSVSource(path), repo).SeedIfEmpty(ctx)
	return err
}
