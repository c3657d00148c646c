// Command seed loads the ticker allow-list from a constituents CSV into the database.
// Existing symbols are left untouched.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	tickeradapters "finmetrics_backend/internal/feature/tickers/adapters"
	"finmetrics_backend/internal/platform/db"
	"finmetrics_backend/internal/platform/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init("finmetrics-seed", logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	csvPath := flag.String("csv", envOr("TICKERS_CSV", "data/stocks.csv"), "constituents CSV (Symbol, Security, GICS Sector, GICS Sub-Industry)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	repo := tickeradapters.NewTickerRepository(gdb)
	if err := repo.Migrate(ctx); err != nil {
		slog.Error("failed to migrate", "error", err)
		os.Exit(1)
	}

	tickers, err := tickeradapters.NewCSVSource(*csvPath).Load(ctx)
	if err != nil {
		slog.Error("failed to load tickers", "error", err)
		os.Exit(1)
	}
	if err := repo.UpsertBatch(ctx, tickers); err != nil {
		slog.Error("failed to insert tickers", "error", err)
		os.Exit(1)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		slog.Error("failed to count tickers", "error", err)
		os.Exit(1)
	}
	slog.Info("seed ok", "read", len(tickers), "total", n)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
