package dto

import "finmetrics_backend/internal/feature/metrics/domain/entity"

// PricePoint is a dated value in a response series.
type PricePoint struct {
	Price float64 `json:"price"`
	Date  string  `json:"date"`
}

// PricesResponse is the body of GET /prices.
type PricesResponse struct {
	Prices []PricePoint `json:"prices"`
}

// MovingAverageResponse is the body of GET /moving-average.
// MovingAverage is null when the period is shorter than the window.
type MovingAverageResponse struct {
	MovingAverage []PricePoint `json:"moving_average"`
}

// CoreMetricsResponse is the body of GET /core-metrics.
type CoreMetricsResponse struct {
	Return     *float64 `json:"return"`
	Volatility *float64 `json:"volatility"`
	RSI        *float64 `json:"rsi"`
	Return1M   *float64 `json:"return_1m"`
	Return3M   *float64 `json:"return_3m"`
	PERatio    *float64 `json:"pe_ratio"`
}

// TrendMetricsResponse is the body of GET /trend-metrics.
type TrendMetricsResponse struct {
	Momentum20D *float64 `json:"momentum_20d"`
	SMAGap      *float64 `json:"sma_gap"`
}

// CorrelationMetricsResponse is the body of GET /correlation-metrics.
type CorrelationMetricsResponse struct {
	Correlation *float64 `json:"correlation"`
	Beta        *float64 `json:"beta"`
}

// DrawdownMetricsResponse is the body of GET /drawdown-metrics.
type DrawdownMetricsResponse struct {
	MaxDrawdownPct *float64 `json:"max_drawdown_pct"`
	RecoveryDays   *int     `json:"recovery_days"`
}

// ParameterOptionsResponse is the body of GET /valid-parameter-options.
type ParameterOptionsResponse struct {
	Intervals    []string `json:"intervals"`
	PeriodMonths struct {
		Min int `json:"min"`
		Max int `json:"max"`
	} `json:"period_months"`
	MAWindows []int `json:"ma_windows"`
}

// NewPricePoints converts a price series. A nil series stays nil.
func NewPricePoints(points []entity.PricePoint) []PricePoint {
	if points == nil {
		return nil
	}
	out := make([]PricePoint, 0, len(points))
	for _, p := range points {
		out = append(out, PricePoint{Price: p.Price, Date: p.Date})
	}
	return out
}

func NewCoreMetricsResponse(m entity.CoreMetrics) CoreMetricsResponse {
	return CoreMetricsResponse{
		Return:     m.Return,
		Volatility: m.Volatility,
		RSI:        m.RSI,
		Return1M:   m.Return1M,
		Return3M:   m.Return3M,
		PERatio:    m.PERatio,
	}
}

func NewParameterOptionsResponse(o entity.ParameterOptions) ParameterOptionsResponse {
	var out ParameterOptionsResponse
	out.Intervals = o.Intervals
	out.PeriodMonths.Min = o.PeriodMonths.Min
	out.PeriodMonths.Max = o.PeriodMonths.Max
	out.MAWindows = o.MAWindows
	return out
}
