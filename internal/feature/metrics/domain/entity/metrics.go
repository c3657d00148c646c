package entity

// Metric results are cached as JSON, so every optional value is a pointer
// and serialises to null when absent.

// CoreMetrics holds the headline statistics of a symbol over a period.
type CoreMetrics struct {
	Return     *float64 `json:"return"`
	Volatility *float64 `json:"volatility"`
	RSI        *float64 `json:"rsi"`
	Return1M   *float64 `json:"return_1m"`
	Return3M   *float64 `json:"return_3m"`
	PERatio    *float64 `json:"pe_ratio"`
}

// MovingAverage is a simple moving average series. Points is nil when the
// period holds fewer prices than the window.
type MovingAverage struct {
	Points []PricePoint `json:"moving_average"`
}

// TrendMetrics describes the short-term trend over the last 20 sessions.
type TrendMetrics struct {
	Momentum20D *float64 `json:"momentum_20d"`
	SMAGap      *float64 `json:"sma_gap"`
}

// CorrelationMetrics relates a symbol to the reference index.
type CorrelationMetrics struct {
	Correlation *float64 `json:"correlation"`
	Beta        *float64 `json:"beta"`
}

// DrawdownMetrics describes the deepest decline in the period and how long
// it took to win it back.
type DrawdownMetrics struct {
	MaxDrawdownPct *float64 `json:"max_drawdown_pct"`
	RecoveryDays   *int     `json:"recovery_days"`
}

// PeriodBounds is the accepted range of period_months.
type PeriodBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ParameterOptions lists the accepted values of the metric query parameters.
type ParameterOptions struct {
	Intervals    []string     `json:"intervals"`
	PeriodMonths PeriodBounds `json:"period_months"`
	MAWindows    []int        `json:"ma_windows"`
}
