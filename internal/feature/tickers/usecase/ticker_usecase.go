// Package usecase implements the ticker allow-list operations.
package usecase

import (
	"context"
	"regexp"

	"finmetrics_backend/internal/feature/tickers/domain/entity"
	"finmetrics_backend/internal/shared/apperr"
)

// MaxTickers is the number of tickers returned per request.
const MaxTickers = 20

var startsWithPattern = regexp.MustCompile(`^[A-Za-z0-9.-]{1,5}$`)

// TickerRepository abstracts the persistence layer of the allow-list.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TickerRepository interface {
	Exists(ctx context.Context, symbol string) (bool, error)
	ListByPrefix(ctx context.Context, prefix string, limit int) ([]entity.Ticker, error)
}

// TickerUsecase provides the allow-list lookups.
type TickerUsecase struct {
	repo TickerRepository
}

// NewTickerUsecase creates a new TickerUsecase with the given repository.
func NewTickerUsecase(r TickerRepository) *TickerUsecase {
	return &TickerUsecase{repo: r}
}

// ListAvailable returns up to MaxTickers tickers ordered by symbol.
// startsWith is optional; when set it must be 1-5 characters of letters, digits, '.' or '-'
// and is matched case-insensitively against the symbol prefix.
func (u *TickerUsecase) ListAvailable(ctx context.Context, startsWith string) ([]entity.Ticker, error) {
	if startsWith != "" && !startsWithPattern.MatchString(startsWith) {
		return nil, apperr.Validationf("starts_with must be 1 to 5 letters, digits, '.' or '-'.")
	}
	tickers, err := u.repo.ListByPrefix(ctx, startsWith, MaxTickers)
	if err != nil {
		return nil, err
	}
	if tickers == nil {
		tickers = []entity.Ticker{}
	}
	return tickers, nil
}

// Exists reports whether symbol is allow-listed.
func (u *TickerUsecase) Exists(ctx context.Context, symbol string) (bool, error) {
	return u.repo.Exists(ctx, symbol)
}
