package usecase

import (
	"context"
	"fmt"
	"slices"

	"finmetrics_backend/internal/feature/metrics/domain/entity"
	"finmetrics_backend/internal/shared/apperr"
	"finmetrics_backend/internal/shared/validate"
)

const (
	// MinPeriodMonths と MaxPeriodMonths は period_months の許容範囲です。
	MinPeriodMonths = 1
	MaxPeriodMonths = 60

	// MinRSIPeriod と MaxRSIPeriod は rsi_period の許容範囲です。
	MinRSIPeriod = 2
	MaxRSIPeriod = 100

	// BenchmarkSymbol は相関・ベータ計算で唯一許可されるベンチマーク（S&P 500）です。
	BenchmarkSymbol = "^GSPC"

	// TrendBars はトレンド指標に使う日足の本数です（20日前の終値 + 直近20本）。
	TrendBars = 21
	// TrendWindow はトレンド指標のモメンタムとSMAの期間です。
	TrendWindow = 20
)

var (
	// Intervals は許可されるサンプリング間隔です。
	Intervals = []string{"1d", "1h", "1wk"}
	// MAWindows は許可される移動平均の期間です。
	MAWindows = []int{10, 20, 50, 200}
)

// PriceQuery は価格系列を対象とする全エンドポイント共通のパラメータです。
type PriceQuery struct {
	Symbol       string
	PeriodMonths int
	Interval     string
}

// CoreMetricsQuery は /core-metrics のパラメータです。
type CoreMetricsQuery struct {
	PriceQuery
	RSIPeriod int
}

// MovingAverageQuery は /moving-average のパラメータです。
type MovingAverageQuery struct {
	PriceQuery
	Window int
}

// CorrelationQuery は /correlation-metrics のパラメータです。
type CorrelationQuery struct {
	PriceQuery
	Benchmark string
}

// lookback は期間（月数）をプロバイダへのルックバックに変換します。
func (q PriceQuery) lookback() entity.Lookback {
	return entity.Lookback{Months: q.PeriodMonths}
}

func validateInterval(interval string) error {
	if !slices.Contains(Intervals, interval) {
		return apperr.Validationf("interval must be one of %v.", Intervals)
	}
	return nil
}

func validatePeriodMonths(months int) error {
	if months < MinPeriodMonths || months > MaxPeriodMonths {
		return apperr.Validationf("period_months must be between %d and %d.", MinPeriodMonths, MaxPeriodMonths)
	}
	return nil
}

func validateMAWindow(window int) error {
	if !slices.Contains(MAWindows, window) {
		return apperr.Validationf("window must be one of %v.", MAWindows)
	}
	return nil
}

func validateRSIPeriod(period int) error {
	if period < MinRSIPeriod || period > MaxRSIPeriod {
		return apperr.Validationf("rsi_period must be between %d and %d.", MinRSIPeriod, MaxRSIPeriod)
	}
	return nil
}

func validateBenchmark(benchmark string) error {
	if benchmark != BenchmarkSymbol {
		return apperr.Validationf("Only S&P 500 (%s) is allowed as benchmark.", BenchmarkSymbol)
	}
	return nil
}

// validatePriceQuery は共通パラメータを検証します。
func validatePriceQuery(ctx context.Context, validator SymbolValidator, q PriceQuery) error {
	if err := validateInterval(q.Interval); err != nil {
		return err
	}
	if err := validatePeriodMonths(q.PeriodMonths); err != nil {
		return err
	}
	return validate.Symbol(ctx, validator, q.Symbol)
}

// キャッシュキーはエンドポイント名と全パラメータから構成します。
func pricesKey(q PriceQuery) string {
	return fmt.Sprintf("prices:%s:%d:%s", q.Symbol, q.PeriodMonths, q.Interval)
}

func coreMetricsKey(q CoreMetricsQuery) string {
	return fmt.Sprintf("coremetrics:%s:%d:%s:%d", q.Symbol, q.PeriodMonths, q.Interval, q.RSIPeriod)
}

func movingAverageKey(q MovingAverageQuery) string {
	return fmt.Sprintf("movingavg:%s:%d:%s:%d", q.Symbol, q.PeriodMonths, q.Interval, q.Window)
}

func trendKey(symbol string) string {
	return "trend:" + symbol
}

func correlationKey(q CorrelationQuery) string {
	return fmt.Sprintf("corr:%s:%s:%d:%s", q.Symbol, q.Benchmark, q.PeriodMonths, q.Interval)
}

func drawdownKey(q PriceQuery) string {
	return fmt.Sprintf("drawdown:%s:%d:%s", q.Symbol, q.PeriodMonths, q.Interval)
}

const parameterOptionsKey = "valid_parameter_options"
