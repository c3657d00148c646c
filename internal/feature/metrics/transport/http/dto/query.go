// Package dto defines data transfer objects for the metrics HTTP API.
package dto

// Query parameters. Defaults are applied by gin's form binding.

// PricesQuery is the query of GET /prices.
type PricesQuery struct {
	Symbol       string `form:"symbol"`
	PeriodMonths int    `form:"period_months,default=1"`
	Interval     string `form:"interval,default=1d"`
}

// CoreMetricsQuery is the query of GET /core-metrics.
type CoreMetricsQuery struct {
	Symbol       string `form:"symbol"`
	PeriodMonths int    `form:"period_months,default=1"`
	Interval     string `form:"interval,default=1d"`
	RSIPeriod    int    `form:"rsi_period,default=14"`
}

// MovingAverageQuery is the query of GET /moving-average.
type MovingAverageQuery struct {
	Symbol       string `form:"symbol"`
	PeriodMonths int    `form:"period_months,default=1"`
	Interval     string `form:"interval,default=1d"`
	Window       int    `form:"window,default=20"`
}

// TrendMetricsQuery is the query of GET /trend-metrics.
type TrendMetricsQuery struct {
	Symbol string `form:"symbol"`
}

// CorrelationMetricsQuery is the query of GET /correlation-metrics.
type CorrelationMetricsQuery struct {
	Symbol       string `form:"symbol"`
	Benchmark    string `form:"benchmark,default=^GSPC"`
	PeriodMonths int    `form:"period_months,default=6"`
	Interval     string `form:"interval,default=1d"`
}

// DrawdownMetricsQuery is the query of GET /drawdown-metrics.
type DrawdownMetricsQuery struct {
	Symbol       string `form:"symbol"`
	PeriodMonths int    `form:"period_months,default=12"`
	Interval     string `form:"interval,default=1d"`
}
