// Package usecase は金融指標エンドポイントのビジネスロジック（検証・キャッシュ・取得・計算）を実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finmetrics_backend/internal/feature/metrics/domain/entity"
	"finmetrics_backend/internal/feature/metrics/domain/timeseries"
	"finmetrics_backend/internal/shared/apperr"
	"finmetrics_backend/internal/shared/memo"
	"finmetrics_backend/internal/shared/validate"
)

const (
	// DefaultTTL は指標結果のキャッシュ有効期間です。
	DefaultTTL = 600 * time.Second
	// ParameterOptionsTTL はパラメータ一覧のキャッシュ有効期間です。
	ParameterOptionsTTL = 3600 * time.Second
)

// PriceProvider は外部のマーケットデータ提供元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PriceProvider interface {
	// ClosePrices は現在から lookback 前までの終値を日付昇順で返します。
	ClosePrices(ctx context.Context, symbol string, lookback entity.Lookback, interval string) ([]entity.PricePoint, error)
	// TrailingPE は直近12か月のPERを返します。値がない場合は nil を返します。
	TrailingPE(ctx context.Context, symbol string) (*float64, error)
}

// SymbolValidator は銘柄の許可リストを参照します。
type SymbolValidator interface {
	validate.SymbolLookup
}

// Cache は指標結果を保存するTTL付きキャッシュです。
type Cache interface {
	memo.Cache
}

// MetricsUsecase は各指標エンドポイントのオーケストレーションを行います。
type MetricsUsecase struct {
	provider PriceProvider
	symbols  SymbolValidator
	cache    Cache
	dedup    memo.Deduplicator
	ttl      time.Duration
}

// NewMetricsUsecase はMetricsUsecaseを生成します。
// ttl が0以下の場合は DefaultTTL を使用します。dedup が nil の場合は重複排除を行いません。
func NewMetricsUsecase(provider PriceProvider, symbols SymbolValidator, cache Cache, dedup memo.Deduplicator, ttl time.Duration) *MetricsUsecase {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MetricsUsecase{
		provider: provider,
		symbols:  symbols,
		cache:    cache,
		dedup:    dedup,
		ttl:      ttl,
	}
}

// GetPrices は指定期間の終値系列を返します。空の系列もそのまま返します。
func (u *MetricsUsecase) GetPrices(ctx context.Context, q PriceQuery) ([]entity.PricePoint, error) {
	if err := validatePriceQuery(ctx, u.symbols, q); err != nil {
		return nil, err
	}

	return memo.Load(ctx, u.cache, u.dedup, pricesKey(q), u.ttl, func(ctx context.Context) ([]entity.PricePoint, error) {
		points, err := u.provider.ClosePrices(ctx, q.Symbol, q.lookback(), q.Interval)
		if err != nil {
			return nil, err
		}
		if points == nil {
			points = []entity.PricePoint{}
		}
		return points, nil
	})
}

// GetCoreMetrics はリターン・ボラティリティ・RSI・1か月/3か月リターン・PERを返します。
// 主系列が空の場合は NotFound、補助系列の取得失敗は該当項目を null にします。
func (u *MetricsUsecase) GetCoreMetrics(ctx context.Context, q CoreMetricsQuery) (entity.CoreMetrics, error) {
	if err := validatePriceQuery(ctx, u.symbols, q.PriceQuery); err != nil {
		return entity.CoreMetrics{}, err
	}
	if err := validateRSIPeriod(q.RSIPeriod); err != nil {
		return entity.CoreMetrics{}, err
	}

	return memo.Load(ctx, u.cache, u.dedup, coreMetricsKey(q), u.ttl, func(ctx context.Context) (entity.CoreMetrics, error) {
		points, err := u.provider.ClosePrices(ctx, q.Symbol, q.lookback(), q.Interval)
		if err != nil {
			return entity.CoreMetrics{}, err
		}
		if len(points) == 0 {
			return entity.CoreMetrics{}, apperr.NotFoundf("No price data found for symbol.")
		}
		prices := entity.Closes(points)

		var m entity.CoreMetrics
		m.Return = some(timeseries.Return(prices))
		m.Volatility = some(timeseries.Volatility(prices))

		if p1m := u.secondaryCloses(ctx, q.Symbol, entity.Lookback{Months: 1}, q.Interval, "return_1m"); p1m != nil {
			m.Return1M = some(timeseries.Return(p1m))
		}
		if p3m := u.secondaryCloses(ctx, q.Symbol, entity.Lookback{Months: 3}, q.Interval, "return_3m"); p3m != nil {
			m.Return3M = some(timeseries.Return(p3m))
		}

		rsiPrices := u.secondaryCloses(ctx, q.Symbol, entity.Lookback{Sessions: q.RSIPeriod + 1}, "1d", "rsi")
		if rsiPrices == nil {
			rsiPrices = prices
		}
		m.RSI = some(timeseries.RSI(timeseries.TrailingWindow(rsiPrices, q.RSIPeriod+1), q.RSIPeriod))

		pe, err := u.provider.TrailingPE(ctx, q.Symbol)
		if err != nil {
			slog.WarnContext(ctx, "trailing P/E unavailable", "symbol", q.Symbol, "error", err)
		} else {
			m.PERatio = pe
		}

		return m, nil
	})
}

// GetMovingAverage は単純移動平均を各ウィンドウの最終日に対応付けて返します。
// データがウィンドウより短い場合は Points が nil になります。
func (u *MetricsUsecase) GetMovingAverage(ctx context.Context, q MovingAverageQuery) (entity.MovingAverage, error) {
	if err := validatePriceQuery(ctx, u.symbols, q.PriceQuery); err != nil {
		return entity.MovingAverage{}, err
	}
	if err := validateMAWindow(q.Window); err != nil {
		return entity.MovingAverage{}, err
	}

	return memo.Load(ctx, u.cache, u.dedup, movingAverageKey(q), u.ttl, func(ctx context.Context) (entity.MovingAverage, error) {
		points, err := u.provider.ClosePrices(ctx, q.Symbol, q.lookback(), q.Interval)
		if err != nil {
			return entity.MovingAverage{}, err
		}

		ma, ok := timeseries.MovingAverage(entity.Closes(points), q.Window)
		if !ok {
			return entity.MovingAverage{}, nil
		}

		// ma[i] はウィンドウ points[i : i+window] の平均で、その最終日に対応します。
		out := make([]entity.PricePoint, len(ma))
		for i, v := range ma {
			out[i] = entity.PricePoint{Date: points[i+q.Window-1].Date, Price: v}
		}
		return entity.MovingAverage{Points: out}, nil
	})
}

// GetTrendMetrics は直近21本の日足から20日モメンタムと20日SMAとの乖離を返します。
func (u *MetricsUsecase) GetTrendMetrics(ctx context.Context, symbol string) (entity.TrendMetrics, error) {
	if err := validate.Symbol(ctx, u.symbols, symbol); err != nil {
		return entity.TrendMetrics{}, err
	}

	return memo.Load(ctx, u.cache, u.dedup, trendKey(symbol), u.ttl, func(ctx context.Context) (entity.TrendMetrics, error) {
		points, err := u.provider.ClosePrices(ctx, symbol, entity.Lookback{Sessions: TrendBars}, "1d")
		if err != nil {
			return entity.TrendMetrics{}, err
		}
		if len(points) < TrendBars {
			return entity.TrendMetrics{}, apperr.NotFoundf("Not enough price data found for trend metrics.")
		}
		prices := timeseries.TrailingWindow(entity.Closes(points), TrendBars)

		var m entity.TrendMetrics
		m.Momentum20D = some(timeseries.Momentum(prices, TrendWindow))
		if sma, ok := timeseries.MovingAverage(prices, TrendWindow); ok {
			gap := prices[len(prices)-1] - sma[len(sma)-1]
			m.SMAGap = &gap
		}
		return m, nil
	})
}

// GetCorrelationMetrics は銘柄とベンチマーク（S&P 500）のリターンの相関係数とベータを返します。
// ベンチマークの検証はキャッシュ参照やデータ取得より前に行います。
func (u *MetricsUsecase) GetCorrelationMetrics(ctx context.Context, q CorrelationQuery) (entity.CorrelationMetrics, error) {
	if err := validateBenchmark(q.Benchmark); err != nil {
		return entity.CorrelationMetrics{}, err
	}
	if err := validatePriceQuery(ctx, u.symbols, q.PriceQuery); err != nil {
		return entity.CorrelationMetrics{}, err
	}

	return memo.Load(ctx, u.cache, u.dedup, correlationKey(q), u.ttl, func(ctx context.Context) (entity.CorrelationMetrics, error) {
		asset, err := u.provider.ClosePrices(ctx, q.Symbol, q.lookback(), q.Interval)
		if err != nil {
			return entity.CorrelationMetrics{}, err
		}
		bench, err := u.provider.ClosePrices(ctx, q.Benchmark, q.lookback(), q.Interval)
		if err != nil {
			return entity.CorrelationMetrics{}, err
		}

		res, err := timeseries.CorrelationBeta(entity.Closes(asset), entity.Closes(bench))
		if errors.Is(err, timeseries.ErrInsufficientData) || errors.Is(err, timeseries.ErrLengthMismatch) {
			slog.InfoContext(ctx, "correlation input rejected", "symbol", q.Symbol, "asset_points", len(asset), "benchmark_points", len(bench))
			return entity.CorrelationMetrics{}, apperr.NotFoundf("Not enough or mismatched price data for correlation/beta calculation.")
		}
		if err != nil {
			return entity.CorrelationMetrics{}, fmt.Errorf("%w: correlation: %w", apperr.ErrComputation, err)
		}
		return entity.CorrelationMetrics{Correlation: res.Correlation, Beta: res.Beta}, nil
	})
}

// GetDrawdownMetrics は最大ドローダウン（%）と回復までの本数を返します。
func (u *MetricsUsecase) GetDrawdownMetrics(ctx context.Context, q PriceQuery) (entity.DrawdownMetrics, error) {
	if err := validatePriceQuery(ctx, u.symbols, q); err != nil {
		return entity.DrawdownMetrics{}, err
	}

	return memo.Load(ctx, u.cache, u.dedup, drawdownKey(q), u.ttl, func(ctx context.Context) (entity.DrawdownMetrics, error) {
		points, err := u.provider.ClosePrices(ctx, q.Symbol, q.lookback(), q.Interval)
		if err != nil {
			return entity.DrawdownMetrics{}, err
		}

		res, err := timeseries.Drawdown(entity.Closes(points))
		if errors.Is(err, timeseries.ErrInsufficientData) {
			return entity.DrawdownMetrics{}, apperr.NotFoundf("Not enough price data for drawdown analysis.")
		}
		if err != nil {
			return entity.DrawdownMetrics{}, fmt.Errorf("%w: drawdown: %w", apperr.ErrComputation, err)
		}

		pct := res.MaxDrawdownPct
		return entity.DrawdownMetrics{MaxDrawdownPct: &pct, RecoveryDays: res.RecoveryDays}, nil
	})
}

// ParameterOptions は各パラメータの許容値を返します。
func (u *MetricsUsecase) ParameterOptions(ctx context.Context) (entity.ParameterOptions, error) {
	return memo.Load(ctx, u.cache, u.dedup, parameterOptionsKey, ParameterOptionsTTL, func(context.Context) (entity.ParameterOptions, error) {
		return entity.ParameterOptions{
			Intervals:    Intervals,
			PeriodMonths: entity.PeriodBounds{Min: MinPeriodMonths, Max: MaxPeriodMonths},
			MAWindows:    MAWindows,
		}, nil
	})
}

// secondaryCloses は補助系列を取得します。失敗または空の場合は nil を返し、警告ログを出力します。
func (u *MetricsUsecase) secondaryCloses(ctx context.Context, symbol string, lb entity.Lookback, interval, field string) []float64 {
	points, err := u.provider.ClosePrices(ctx, symbol, lb, interval)
	if err != nil {
		slog.WarnContext(ctx, "secondary price window unavailable", "symbol", symbol, "field", field, "error", err)
		return nil
	}
	if len(points) == 0 {
		slog.WarnContext(ctx, "secondary price window empty", "symbol", symbol, "field", field)
		return nil
	}
	return entity.Closes(points)
}

// some はcomma-ok形式の値をポインタに変換します（ok=false なら nil）。
func some[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
