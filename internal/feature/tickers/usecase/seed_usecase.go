package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"finmetrics_backend/internal/feature/tickers/domain/entity"
)

// TickerSource loads the initial allow-list, e.g. from a constituents CSV.
type TickerSource interface {
	Load(ctx context.Context) ([]entity.Ticker, error)
}

// SeedRepository is the write side of the allow-list store.
type SeedRepository interface {
	Count(ctx context.Context) (int64, error)
	UpsertBatch(ctx context.Context, tickers []entity.Ticker) error
}

// SeedUsecase fills an empty allow-list on startup.
type SeedUsecase struct {
	source TickerSource
	repo   SeedRepository
}

// NewSeedUsecase creates a new SeedUsecase.
func NewSeedUsecase(source TickerSource, repo SeedRepository) *SeedUsecase {
	return &SeedUsecase{source: source, repo: repo}
}

// SeedIfEmpty loads the source into the store when the store holds no tickers.
// It returns the number of tickers read from the source, or 0 when nothing was done.
func (u *SeedUsecase) SeedIfEmpty(ctx context.Context) (int, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count tickers: %w", err)
	}
	if n > 0 {
		slog.Info("ticker table already populated, skipping seed", "count", n)
		return 0, nil
	}

	tickers, err := u.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load tickers: %w", err)
	}
	if err := u.repo.UpsertBatch(ctx, tickers); err != nil {
		return 0, fmt.Errorf("insert tickers: %w", err)
	}
	slog.Info("ticker table seeded", "count", len(tickers))
	return len(tickers), nil
}
