// Package usecase はニュース記事の感情分析ユースケースを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"finmetrics_backend/internal/feature/sentiment/domain/entity"
	"finmetrics_backend/internal/shared/memo"
	"finmetrics_backend/internal/shared/validate"
)

const (
	// DefaultTTL は分析結果のキャッシュ有効期間です。
	DefaultTTL = 600 * time.Second
	// Window は分析対象とする記事の公開期間です。
	Window = 24 * time.Hour
)

// NewsProvider は銘柄の最新ニュースを提供します。
type NewsProvider interface {
	News(ctx context.Context, symbol string) ([]entity.Article, error)
}

// Scorer はテキストの極性スコア（compound, -1〜1）を算出します。
type Scorer interface {
	Compound(text string) float64
}

// SymbolValidator は銘柄の許可リストを参照します。
type SymbolValidator interface {
	validate.SymbolLookup
}

// Cache は分析結果を保存するTTL付きキャッシュです。
type Cache interface {
	memo.Cache
}

// SentimentUsecase は直近24時間のニュースの感情を集計します。
type SentimentUsecase struct {
	news    NewsProvider
	scorer  Scorer
	symbols SymbolValidator
	cache   Cache
	dedup   memo.Deduplicator
	ttl     time.Duration
	now     func() time.Time
}

// NewSentimentUsecase は新しい SentimentUsecase を生成します。ttl が0以下の場合は DefaultTTL を使います。
func NewSentimentUsecase(news NewsProvider, scorer Scorer, symbols SymbolValidator, cache Cache, dedup memo.Deduplicator, ttl time.Duration) *SentimentUsecase {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SentimentUsecase{
		news:    news,
		scorer:  scorer,
		symbols: symbols,
		cache:   cache,
		dedup:   dedup,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Analyze は直近24時間に公開された記事の要約をスコアリングし、平均値と記事一覧を返します。
// 要約が空の記事は中立（0）として扱い、公開日時のない記事は除外します。
func (u *SentimentUsecase) Analyze(ctx context.Context, symbol string) (entity.Sentiment, error) {
	if err := validate.Symbol(ctx, u.symbols, symbol); err != nil {
		return entity.Sentiment{}, err
	}

	return memo.Load(ctx, u.cache, u.dedup, "sentiment:"+symbol, u.ttl, func(ctx context.Context) (entity.Sentiment, error) {
		articles, err := u.news.News(ctx, symbol)
		if err != nil {
			return entity.Sentiment{}, err
		}
		return u.score(ctx, symbol, articles), nil
	})
}

func (u *SentimentUsecase) score(ctx context.Context, symbol string, articles []entity.Article) entity.Sentiment {
	cutoff := u.now().UTC().Add(-Window)

	scored := make([]entity.ScoredArticle, 0, len(articles))
	var sum float64
	for _, a := range articles {
		if a.PublishedAt.IsZero() || a.PublishedAt.Before(cutoff) {
			continue
		}
		var compound float64
		if a.Summary != "" {
			compound = u.scorer.Compound(a.Summary)
		}
		sum += compound
		scored = append(scored, entity.ScoredArticle{
			Title:      a.Title,
			Summary:    a.Summary,
			PreviewURL: a.URL,
			Compound:   compound,
		})
	}

	var mean float64
	if len(scored) > 0 {
		mean = sum / float64(len(scored))
	}
	slog.DebugContext(ctx, "news scored", "symbol", symbol, "fetched", len(articles), "last_24h", len(scored))
	return entity.Sentiment{MeanCompound: mean, Articles: scored}
}
