package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finmetrics_backend/internal/feature/metrics/domain/entity"
	"finmetrics_backend/internal/feature/metrics/usecase"
	"finmetrics_backend/internal/platform/cache"
	"finmetrics_backend/internal/shared/apperr"
)

// ErrProvider はモックと期待値の間で共有されるセンチネルエラーです。
var ErrProvider = errors.New("provider error")

type closeCall struct {
	Symbol   string
	Lookback entity.Lookback
	Interval string
}

// mockPriceProvider はPriceProviderインターフェースのモック実装です。
type mockPriceProvider struct {
	ClosePricesFunc func(ctx context.Context, symbol string, lb entity.Lookback, interval string) ([]entity.PricePoint, error)
	TrailingPEFunc  func(ctx context.Context, symbol string) (*float64, error)

	mu    sync.Mutex
	calls []closeCall
}

// ClosePrices は呼び出しを記録し、ClosePricesFuncが設定されていればそれを呼び出します。
func (m *mockPriceProvider) ClosePrices(ctx context.Context, symbol string, lb entity.Lookback, interval string) ([]entity.PricePoint, error) {
	m.mu.Lock()
	m.calls = append(m.calls, closeCall{Symbol: symbol, Lookback: lb, Interval: interval})
	m.mu.Unlock()
	if m.ClosePricesFunc != nil {
		return m.ClosePricesFunc(ctx, symbol, lb, interval)
	}
	return nil, errors.New("ClosePricesFunc is not implemented")
}

// TrailingPE はTrailingPEFuncが設定されていればそれを呼び出します。
func (m *mockPriceProvider) TrailingPE(ctx context.Context, symbol string) (*float64, error) {
	if m.TrailingPEFunc != nil {
		return m.TrailingPEFunc(ctx, symbol)
	}
	return nil, nil
}

func (m *mockPriceProvider) Calls() []closeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]closeCall(nil), m.calls...)
}

// mockSymbolValidator はSymbolValidatorのモック実装です。許可リストに含まれる銘柄のみ true を返します。
type mockSymbolValidator struct {
	allowed map[string]bool
	err     error
}

func (m *mockSymbolValidator) Exists(_ context.Context, symbol string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.allowed[symbol], nil
}

// spyCache はSetに渡されたTTLを記録するキャッシュです。
type spyCache struct {
	*cache.MemoryCache
	mu   sync.Mutex
	ttls map[string]time.Duration
}

func newSpyCache() *spyCache {
	return &spyCache{MemoryCache: cache.NewMemoryCache(), ttls: map[string]time.Duration{}}
}

func (s *spyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	s.ttls[key] = ttl
	s.mu.Unlock()
	s.MemoryCache.Set(ctx, key, value, ttl)
}

// series は2024-01-01から1日ずつ日付を振った価格系列を生成します。
func series(prices ...float64) []entity.PricePoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]entity.PricePoint, len(prices))
	for i, p := range prices {
		out[i] = entity.PricePoint{Date: start.AddDate(0, 0, i).Format("2006-01-02"), Price: p}
	}
	return out
}

func rising(from float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)
	}
	return out
}

func newUsecase(p *mockPriceProvider) (*usecase.MetricsUsecase, *spyCache) {
	c := newSpyCache()
	v := &mockSymbolValidator{allowed: map[string]bool{"AAPL": true, "MSFT": true}}
	return usecase.NewMetricsUsecase(p, v, c, cache.Direct{}, 0), c
}

func priceQuery(symbol string, months int, interval string) usecase.PriceQuery {
	return usecase.PriceQuery{Symbol: symbol, PeriodMonths: months, Interval: interval}
}

// TestMetricsUsecase_Validation はパラメータ不正時にキャッシュやプロバイダを使わずにValidationエラーを返すことを検証します。
func TestMetricsUsecase_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name        string
		call        func(u *usecase.MetricsUsecase) error
		wantMessage string
	}{
		{
			name: "prices: unknown interval",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetPrices(ctx, priceQuery("AAPL", 1, "5m"))
				return err
			},
			wantMessage: "interval must be one of [1d 1h 1wk].",
		},
		{
			name: "prices: period below range",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetPrices(ctx, priceQuery("AAPL", 0, "1d"))
				return err
			},
			wantMessage: "period_months must be between 1 and 60.",
		},
		{
			name: "drawdown: period above range",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetDrawdownMetrics(ctx, priceQuery("AAPL", 61, "1d"))
				return err
			},
			wantMessage: "period_months must be between 1 and 60.",
		},
		{
			name: "core: symbol not in allow-list",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetCoreMetrics(ctx, usecase.CoreMetricsQuery{PriceQuery: priceQuery("ZZZZ", 1, "1d"), RSIPeriod: 14})
				return err
			},
			wantMessage: "Symbol 'ZZZZ' is not a valid/allowed ticker.",
		},
		{
			name: "core: rsi period too small",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetCoreMetrics(ctx, usecase.CoreMetricsQuery{PriceQuery: priceQuery("AAPL", 1, "1d"), RSIPeriod: 1})
				return err
			},
			wantMessage: "rsi_period must be between 2 and 100.",
		},
		{
			name: "moving average: window not allowed",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetMovingAverage(ctx, usecase.MovingAverageQuery{PriceQuery: priceQuery("AAPL", 1, "1d"), Window: 30})
				return err
			},
			wantMessage: "window must be one of [10 20 50 200].",
		},
		{
			name: "trend: empty symbol",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetTrendMetrics(ctx, "")
				return err
			},
			wantMessage: "symbol is required.",
		},
		{
			name: "correlation: benchmark other than S&P 500",
			call: func(u *usecase.MetricsUsecase) error {
				_, err := u.GetCorrelationMetrics(ctx, usecase.CorrelationQuery{PriceQuery: priceQuery("AAPL", 6, "1d"), Benchmark: "^IXIC"})
				return err
			},
			wantMessage: "Only S&P 500 (^GSPC) is allowed as benchmark.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &mockPriceProvider{}
			u, c := newUsecase(p)

			err := tt.call(u)
			require.ErrorIs(t, err, apperr.ErrValidation)
			assert.Equal(t, tt.wantMessage, apperr.ClientMessage(err, ""))
			assert.Empty(t, p.Calls(), "provider must not be called")
			assert.Equal(t, 0, c.Len(), "cache must not be written")
		})
	}
}

// TestMetricsUsecase_SymbolLookupFailure は許可リスト参照の失敗がValidationとして扱われないことを検証します。
func TestMetricsUsecase_SymbolLookupFailure(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("database is locked")
	u := usecase.NewMetricsUsecase(&mockPriceProvider{}, &mockSymbolValidator{err: dbErr}, cache.NewMemoryCache(), nil, 0)

	_, err := u.GetTrendMetrics(context.Background(), "AAPL")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperr.ErrValidation)
}

// TestMetricsUsecase_GetPrices は取得結果の返却とキャッシュ利用を検証します。
func TestMetricsUsecase_GetPrices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fetches once and serves the second call from cache", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(_ context.Context, symbol string, lb entity.Lookback, interval string) ([]entity.PricePoint, error) {
				return series(100, 101), nil
			},
		}
		u, c := newUsecase(p)
		q := priceQuery("AAPL", 3, "1wk")

		first, err := u.GetPrices(ctx, q)
		require.NoError(t, err)
		second, err := u.GetPrices(ctx, q)
		require.NoError(t, err)

		assert.Equal(t, series(100, 101), first)
		assert.Equal(t, first, second)
		require.Len(t, p.Calls(), 1)
		assert.Equal(t, closeCall{Symbol: "AAPL", Lookback: entity.Lookback{Months: 3}, Interval: "1wk"}, p.Calls()[0])

		_, ok := c.Get(ctx, "prices:AAPL:3:1wk")
		assert.True(t, ok)
		assert.Equal(t, usecase.DefaultTTL, c.ttls["prices:AAPL:3:1wk"])
	})

	t.Run("empty series is a valid result", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return nil, nil
			},
		}
		u, _ := newUsecase(p)

		got, err := u.GetPrices(ctx, priceQuery("AAPL", 1, "1d"))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("provider error propagates and is not cached", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return nil, apperr.Upstream("chart AAPL", ErrProvider)
			},
		}
		u, c := newUsecase(p)

		_, err := u.GetPrices(ctx, priceQuery("AAPL", 1, "1d"))
		assert.ErrorIs(t, err, apperr.ErrUpstream)
		assert.Equal(t, 0, c.Len())
	})
}

// TestMetricsUsecase_GetCoreMetrics はコア指標の計算と補助系列の縮退を検証します。
func TestMetricsUsecase_GetCoreMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q := usecase.CoreMetricsQuery{PriceQuery: priceQuery("AAPL", 6, "1d"), RSIPeriod: 14}

	t.Run("all windows available", func(t *testing.T) {
		t.Parallel()

		pe := 28.5
		p := &mockPriceProvider{
			ClosePricesFunc: func(_ context.Context, _ string, lb entity.Lookback, interval string) ([]entity.PricePoint, error) {
				switch lb {
				case entity.Lookback{Months: 6}:
					return series(100, 110, 99), nil
				case entity.Lookback{Months: 1}:
					return series(100, 105), nil
				case entity.Lookback{Months: 3}:
					return series(50, 60), nil
				case entity.Lookback{Sessions: 15}:
					return series(rising(10, 20)...), nil
				}
				return nil, ErrProvider
			},
			TrailingPEFunc: func(context.Context, string) (*float64, error) { return &pe, nil },
		}
		u, _ := newUsecase(p)

		m, err := u.GetCoreMetrics(ctx, q)
		require.NoError(t, err)

		require.NotNil(t, m.Return)
		assert.InDelta(t, -0.01, *m.Return, 1e-9)
		require.NotNil(t, m.Volatility)
		assert.InDelta(t, 0.1, *m.Volatility, 1e-9)
		require.NotNil(t, m.Return1M)
		assert.InDelta(t, 0.05, *m.Return1M, 1e-9)
		require.NotNil(t, m.Return3M)
		assert.InDelta(t, 0.2, *m.Return3M, 1e-9)
		require.NotNil(t, m.RSI)
		assert.Equal(t, 100.0, *m.RSI)
		require.NotNil(t, m.PERatio)
		assert.Equal(t, 28.5, *m.PERatio)

		assert.Contains(t, p.Calls(), closeCall{Symbol: "AAPL", Lookback: entity.Lookback{Sessions: 15}, Interval: "1d"})
	})

	t.Run("secondary failures degrade to null", func(t *testing.T) {
		t.Parallel()

		// The first deltas fall; the trailing 15 points rise.
		primary := append([]float64{100, 90, 80}, rising(81, 15)...)
		p := &mockPriceProvider{
			ClosePricesFunc: func(_ context.Context, _ string, lb entity.Lookback, _ string) ([]entity.PricePoint, error) {
				switch lb {
				case entity.Lookback{Months: 6}:
					return series(primary...), nil
				case entity.Lookback{Months: 3}:
					return nil, nil
				}
				return nil, ErrProvider
			},
			TrailingPEFunc: func(context.Context, string) (*float64, error) { return nil, ErrProvider },
		}
		u, _ := newUsecase(p)

		m, err := u.GetCoreMetrics(ctx, q)
		require.NoError(t, err)

		assert.NotNil(t, m.Return)
		assert.NotNil(t, m.Volatility)
		assert.Nil(t, m.Return1M)
		assert.Nil(t, m.Return3M)
		assert.Nil(t, m.PERatio)
		require.NotNil(t, m.RSI, "RSI falls back to the main series")
		assert.Equal(t, 100.0, *m.RSI)
	})

	t.Run("empty primary series is not found", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return []entity.PricePoint{}, nil
			},
		}
		u, c := newUsecase(p)

		_, err := u.GetCoreMetrics(ctx, q)
		require.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, "No price data found for symbol.", apperr.ClientMessage(err, ""))
		assert.Len(t, p.Calls(), 1, "secondary windows are not fetched")
		assert.Equal(t, 0, c.Len())
	})

	t.Run("single point leaves statistics null", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return series(100), nil
			},
		}
		u, _ := newUsecase(p)

		m, err := u.GetCoreMetrics(ctx, q)
		require.NoError(t, err)
		assert.Nil(t, m.Return)
		assert.Nil(t, m.Volatility)
		assert.Nil(t, m.RSI)
	})
}

// TestMetricsUsecase_GetMovingAverage は移動平均値と日付の対応付けを検証します。
func TestMetricsUsecase_GetMovingAverage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("values are aligned with the last date of each window", func(t *testing.T) {
		t.Parallel()

		prices := rising(1, 12)
		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return series(prices...), nil
			},
		}
		u, _ := newUsecase(p)

		ma, err := u.GetMovingAverage(ctx, usecase.MovingAverageQuery{PriceQuery: priceQuery("AAPL", 1, "1d"), Window: 10})
		require.NoError(t, err)
		require.Len(t, ma.Points, 3)

		dates := series(prices...)
		assert.Equal(t, dates[9].Date, ma.Points[0].Date)
		assert.InDelta(t, 5.5, ma.Points[0].Price, 1e-9)
		assert.Equal(t, dates[11].Date, ma.Points[2].Date)
		assert.InDelta(t, 7.5, ma.Points[2].Price, 1e-9)
	})

	t.Run("series shorter than the window yields null", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return series(rising(1, 5)...), nil
			},
		}
		u, _ := newUsecase(p)

		ma, err := u.GetMovingAverage(ctx, usecase.MovingAverageQuery{PriceQuery: priceQuery("AAPL", 1, "1d"), Window: 20})
		require.NoError(t, err)
		assert.Nil(t, ma.Points)
	})
}

// TestMetricsUsecase_GetTrendMetrics は20日モメンタムとSMA乖離を検証します。
func TestMetricsUsecase_GetTrendMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("uses the trailing 21 daily bars", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(_ context.Context, _ string, lb entity.Lookback, interval string) ([]entity.PricePoint, error) {
				// Two extra leading bars must be ignored.
				return series(rising(98, 23)...), nil
			},
		}
		u, _ := newUsecase(p)

		m, err := u.GetTrendMetrics(ctx, "MSFT")
		require.NoError(t, err)

		// trailing bars are 100..120: momentum 120-100, SMA20 of 101..120 is 110.5
		require.NotNil(t, m.Momentum20D)
		assert.InDelta(t, 20.0, *m.Momentum20D, 1e-9)
		require.NotNil(t, m.SMAGap)
		assert.InDelta(t, 9.5, *m.SMAGap, 1e-9)
		assert.Equal(t, []closeCall{{Symbol: "MSFT", Lookback: entity.Lookback{Sessions: 21}, Interval: "1d"}}, p.Calls())
	})

	t.Run("fewer than 21 bars is not found", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return series(rising(1, 20)...), nil
			},
		}
		u, _ := newUsecase(p)

		_, err := u.GetTrendMetrics(ctx, "MSFT")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

// TestMetricsUsecase_GetCorrelationMetrics は相関・ベータの計算と不一致データの扱いを検証します。
func TestMetricsUsecase_GetCorrelationMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q := usecase.CorrelationQuery{PriceQuery: priceQuery("AAPL", 6, "1d"), Benchmark: "^GSPC"}

	t.Run("perfectly correlated series", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(_ context.Context, symbol string, _ entity.Lookback, _ string) ([]entity.PricePoint, error) {
				if symbol == "^GSPC" {
					return series(100, 110, 99, 108.9), nil
				}
				return series(50, 55, 49.5, 54.45), nil
			},
		}
		u, c := newUsecase(p)

		m, err := u.GetCorrelationMetrics(ctx, q)
		require.NoError(t, err)
		require.NotNil(t, m.Correlation)
		assert.InDelta(t, 1.0, *m.Correlation, 1e-9)
		require.NotNil(t, m.Beta)
		assert.InDelta(t, 1.5, *m.Beta, 1e-9)

		_, ok := c.Get(ctx, "corr:AAPL:^GSPC:6:1d")
		assert.True(t, ok)
	})

	t.Run("mismatched lengths are not found", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(_ context.Context, symbol string, _ entity.Lookback, _ string) ([]entity.PricePoint, error) {
				if symbol == "^GSPC" {
					return series(100, 110, 99), nil
				}
				return series(50, 55, 49.5, 54.45), nil
			},
		}
		u, _ := newUsecase(p)

		_, err := u.GetCorrelationMetrics(ctx, q)
		require.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, "Not enough or mismatched price data for correlation/beta calculation.", apperr.ClientMessage(err, ""))
	})

	t.Run("benchmark fetch failure is an upstream error", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(_ context.Context, symbol string, _ entity.Lookback, _ string) ([]entity.PricePoint, error) {
				if symbol == "^GSPC" {
					return nil, apperr.Upstream("chart ^GSPC", ErrProvider)
				}
				return series(1, 2, 3), nil
			},
		}
		u, _ := newUsecase(p)

		_, err := u.GetCorrelationMetrics(ctx, q)
		assert.ErrorIs(t, err, apperr.ErrUpstream)
	})
}

// TestMetricsUsecase_GetDrawdownMetrics は最大ドローダウンと回復日数を検証します。
func TestMetricsUsecase_GetDrawdownMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("recovering series", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return series(100, 90, 80, 95, 120), nil
			},
		}
		u, _ := newUsecase(p)

		m, err := u.GetDrawdownMetrics(ctx, priceQuery("AAPL", 12, "1d"))
		require.NoError(t, err)
		require.NotNil(t, m.MaxDrawdownPct)
		assert.InDelta(t, 20.0, *m.MaxDrawdownPct, 1e-9)
		require.NotNil(t, m.RecoveryDays)
		assert.Equal(t, 2, *m.RecoveryDays)
	})

	t.Run("single point is not found", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return series(100), nil
			},
		}
		u, _ := newUsecase(p)

		_, err := u.GetDrawdownMetrics(ctx, priceQuery("AAPL", 12, "1d"))
		require.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, "Not enough price data for drawdown analysis.", apperr.ClientMessage(err, ""))
	})

	t.Run("zero leading price is computed and cached", func(t *testing.T) {
		t.Parallel()

		p := &mockPriceProvider{
			ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
				return series(0, 100, 75, 100), nil
			},
		}
		u, c := newUsecase(p)

		m, err := u.GetDrawdownMetrics(ctx, priceQuery("AAPL", 12, "1d"))
		require.NoError(t, err)
		require.NotNil(t, m.MaxDrawdownPct)
		assert.InDelta(t, 25.0, *m.MaxDrawdownPct, 1e-9)
		assert.Equal(t, 1, c.Len())
	})
}

// TestMetricsUsecase_CacheKeys は同一パラメータが同じキャッシュエントリを共有し、
// 結果に影響するパラメータを1つ変えるだけで別エントリとして再取得されることを検証します。
func TestMetricsUsecase_CacheKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	core := func(symbol string, months int, interval string, rsi int) func(u *usecase.MetricsUsecase) error {
		return func(u *usecase.MetricsUsecase) error {
			_, err := u.GetCoreMetrics(ctx, usecase.CoreMetricsQuery{PriceQuery: priceQuery(symbol, months, interval), RSIPeriod: rsi})
			return err
		}
	}
	movingAvg := func(symbol string, months int, interval string, window int) func(u *usecase.MetricsUsecase) error {
		return func(u *usecase.MetricsUsecase) error {
			_, err := u.GetMovingAverage(ctx, usecase.MovingAverageQuery{PriceQuery: priceQuery(symbol, months, interval), Window: window})
			return err
		}
	}
	prices := func(symbol string, months int, interval string) func(u *usecase.MetricsUsecase) error {
		return func(u *usecase.MetricsUsecase) error {
			_, err := u.GetPrices(ctx, priceQuery(symbol, months, interval))
			return err
		}
	}
	drawdown := func(symbol string, months int, interval string) func(u *usecase.MetricsUsecase) error {
		return func(u *usecase.MetricsUsecase) error {
			_, err := u.GetDrawdownMetrics(ctx, priceQuery(symbol, months, interval))
			return err
		}
	}
	correlation := func(symbol string, months int, interval string) func(u *usecase.MetricsUsecase) error {
		return func(u *usecase.MetricsUsecase) error {
			_, err := u.GetCorrelationMetrics(ctx, usecase.CorrelationQuery{PriceQuery: priceQuery(symbol, months, interval), Benchmark: usecase.BenchmarkSymbol})
			return err
		}
	}
	trend := func(symbol string) func(u *usecase.MetricsUsecase) error {
		return func(u *usecase.MetricsUsecase) error {
			_, err := u.GetTrendMetrics(ctx, symbol)
			return err
		}
	}

	tests := []struct {
		name    string
		base    func(u *usecase.MetricsUsecase) error
		changed func(u *usecase.MetricsUsecase) error
	}{
		{"prices symbol", prices("AAPL", 1, "1d"), prices("MSFT", 1, "1d")},
		{"prices period_months", prices("AAPL", 1, "1d"), prices("AAPL", 3, "1d")},
		{"prices interval", prices("AAPL", 1, "1d"), prices("AAPL", 1, "1wk")},
		{"core symbol", core("AAPL", 1, "1d", 14), core("MSFT", 1, "1d", 14)},
		{"core period_months", core("AAPL", 1, "1d", 14), core("AAPL", 2, "1d", 14)},
		{"core interval", core("AAPL", 1, "1d", 14), core("AAPL", 1, "1h", 14)},
		{"core rsi_period", core("AAPL", 1, "1d", 14), core("AAPL", 1, "1d", 7)},
		{"moving average symbol", movingAvg("AAPL", 1, "1d", 10), movingAvg("MSFT", 1, "1d", 10)},
		{"moving average period_months", movingAvg("AAPL", 1, "1d", 10), movingAvg("AAPL", 6, "1d", 10)},
		{"moving average interval", movingAvg("AAPL", 1, "1d", 10), movingAvg("AAPL", 1, "1wk", 10)},
		{"moving average window", movingAvg("AAPL", 1, "1d", 10), movingAvg("AAPL", 1, "1d", 20)},
		{"trend symbol", trend("AAPL"), trend("MSFT")},
		{"correlation symbol", correlation("AAPL", 6, "1d"), correlation("MSFT", 6, "1d")},
		{"correlation period_months", correlation("AAPL", 6, "1d"), correlation("AAPL", 12, "1d")},
		{"correlation interval", correlation("AAPL", 6, "1d"), correlation("AAPL", 6, "1wk")},
		{"drawdown symbol", drawdown("AAPL", 12, "1d"), drawdown("MSFT", 12, "1d")},
		{"drawdown period_months", drawdown("AAPL", 12, "1d"), drawdown("AAPL", 24, "1d")},
		{"drawdown interval", drawdown("AAPL", 12, "1d"), drawdown("AAPL", 12, "1h")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &mockPriceProvider{
				ClosePricesFunc: func(context.Context, string, entity.Lookback, string) ([]entity.PricePoint, error) {
					return series(100, 104, 99, 101, 107, 103, 110, 108, 112, 109, 115, 111, 118, 116, 120,
						117, 123, 121, 125, 122, 128, 126, 130, 127, 133), nil
				},
			}
			u, c := newUsecase(p)

			require.NoError(t, tt.base(u))
			fetched := len(p.Calls())
			require.Positive(t, fetched)
			require.Equal(t, 1, c.Len())

			// 同一パラメータはキャッシュヒット
			require.NoError(t, tt.base(u))
			assert.Len(t, p.Calls(), fetched)
			assert.Equal(t, 1, c.Len())

			// パラメータ変更は別エントリ
			require.NoError(t, tt.changed(u))
			assert.Greater(t, len(p.Calls()), fetched)
			assert.Equal(t, 2, c.Len())
		})
	}
}

// TestMetricsUsecase_ParameterOptions はパラメータ一覧と1時間のTTLを検証します。
func TestMetricsUsecase_ParameterOptions(t *testing.T) {
	t.Parallel()

	u, c := newUsecase(&mockPriceProvider{})

	opts, err := u.ParameterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1d", "1h", "1wk"}, opts.Intervals)
	assert.Equal(t, entity.PeriodBounds{Min: 1, Max: 60}, opts.PeriodMonths)
	assert.Equal(t, []int{10, 20, 50, 200}, opts.MAWindows)
	assert.Equal(t, usecase.ParameterOptionsTTL, c.ttls["valid_parameter_options"])
}
