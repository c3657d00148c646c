// Package usecase は企業概要とアナリスト推奨のユースケースを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"finmetrics_backend/internal/feature/company/domain/entity"
	"finmetrics_backend/internal/shared/apperr"
	"finmetrics_backend/internal/shared/memo"
	"finmetrics_backend/internal/shared/validate"
)

// DefaultTTL は企業情報のキャッシュ有効期間です。
const DefaultTTL = 600 * time.Second

// ProfileProvider は企業情報とアナリスト推奨を提供します。
type ProfileProvider interface {
	CompanyProfile(ctx context.Context, symbol string) (entity.Profile, error)
	Recommendations(ctx context.Context, symbol string) ([]entity.Recommendation, error)
}

// SymbolValidator は銘柄の許可リストを参照します。
type SymbolValidator interface {
	validate.SymbolLookup
}

// Cache は結果を保存するTTL付きキャッシュです。
type Cache interface {
	memo.Cache
}

// CompanyUsecase は企業情報系エンドポイントのオーケストレーションを行います。
type CompanyUsecase struct {
	provider ProfileProvider
	symbols  SymbolValidator
	cache    Cache
	dedup    memo.Deduplicator
	ttl      time.Duration
}

// NewCompanyUsecase は新しい CompanyUsecase を生成します。ttl が0以下の場合は DefaultTTL を使います。
func NewCompanyUsecase(provider ProfileProvider, symbols SymbolValidator, cache Cache, dedup memo.Deduplicator, ttl time.Duration) *CompanyUsecase {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CompanyUsecase{provider: provider, symbols: symbols, cache: cache, dedup: dedup, ttl: ttl}
}

// About は企業概要を返します。表示名は shortName → longName → symbol の順に決定します。
// 提供元が何も返さない場合は NotFound を返します。
func (u *CompanyUsecase) About(ctx context.Context, symbol string) (entity.Profile, error) {
	if err := validate.Symbol(ctx, u.symbols, symbol); err != nil {
		return entity.Profile{}, err
	}

	return memo.Load(ctx, u.cache, u.dedup, "company:"+symbol, u.ttl, func(ctx context.Context) (entity.Profile, error) {
		p, err := u.provider.CompanyProfile(ctx, symbol)
		if err != nil {
			return entity.Profile{}, err
		}
		if p.IsEmpty() {
			return entity.Profile{}, apperr.NotFoundf("Company info not found for symbol '%s'.", symbol)
		}
		p.Name = p.DisplayName(symbol)
		if p.Symbol == "" {
			p.Symbol = symbol
		}
		return p, nil
	})
}

// Recommendations はアナリスト推奨の期間別分布を返します。期間の先頭の "-" は取り除きます（"-1m" → "1m"）。
func (u *CompanyUsecase) Recommendations(ctx context.Context, symbol string) ([]entity.Recommendation, error) {
	if err := validate.Symbol(ctx, u.symbols, symbol); err != nil {
		return nil, err
	}

	return memo.Load(ctx, u.cache, u.dedup, "recommendations:"+symbol, u.ttl, func(ctx context.Context) ([]entity.Recommendation, error) {
		recs, err := u.provider.Recommendations(ctx, symbol)
		if err != nil {
			return nil, err
		}
		out := make([]entity.Recommendation, len(recs))
		for i, r := range recs {
			r.Period = strings.TrimPrefix(r.Period, "-")
			out[i] = r
		}
		return out, nil
	})
}
