// Package handler はmetricsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finmetrics_backend/internal/feature/metrics/domain/entity"
	"finmetrics_backend/internal/feature/metrics/transport/http/dto"
	"finmetrics_backend/internal/feature/metrics/usecase"
	"finmetrics_backend/internal/platform/http/response"
)

// MetricsUsecase は指標計算のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MetricsUsecase interface {
	GetPrices(ctx context.Context, q usecase.PriceQuery) ([]entity.PricePoint, error)
	GetCoreMetrics(ctx context.Context, q usecase.CoreMetricsQuery) (entity.CoreMetrics, error)
	GetMovingAverage(ctx context.Context, q usecase.MovingAverageQuery) (entity.MovingAverage, error)
	GetTrendMetrics(ctx context.Context, symbol string) (entity.TrendMetrics, error)
	GetCorrelationMetrics(ctx context.Context, q usecase.CorrelationQuery) (entity.CorrelationMetrics, error)
	GetDrawdownMetrics(ctx context.Context, q usecase.PriceQuery) (entity.DrawdownMetrics, error)
	ParameterOptions(ctx context.Context) (entity.ParameterOptions, error)
}

var _ MetricsUsecase = (*usecase.MetricsUsecase)(nil)

// MetricsHandler は指標エンドポイントのHTTPリクエストを処理します。
type MetricsHandler struct {
	uc MetricsUsecase
}

// NewMetricsHandler は新しい MetricsHandler を作成します。
func NewMetricsHandler(uc MetricsUsecase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// Prices は終値の系列を返します。
//
// エンドポイント例:
// GET /prices?symbol=AAPL&period_months=3&interval=1d
func (h *MetricsHandler) Prices(c *gin.Context) {
	var q dto.PricesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	points, err := h.uc.GetPrices(c.Request.Context(), usecase.PriceQuery{
		Symbol: q.Symbol, PeriodMonths: q.PeriodMonths, Interval: q.Interval,
	})
	if err != nil {
		response.Error(c, err, "Internal server error in prices endpoint.")
		return
	}

	out := dto.NewPricePoints(points)
	if out == nil {
		out = []dto.PricePoint{}
	}
	c.JSON(http.StatusOK, dto.PricesResponse{Prices: out})
}

// CoreMetrics はリターン・ボラティリティ・RSI等のコア指標を返します。
//
// エンドポイント例:
// GET /core-metrics?symbol=AAPL&period_months=1&interval=1d&rsi_period=14
func (h *MetricsHandler) CoreMetrics(c *gin.Context) {
	var q dto.CoreMetricsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	m, err := h.uc.GetCoreMetrics(c.Request.Context(), usecase.CoreMetricsQuery{
		PriceQuery: usecase.PriceQuery{Symbol: q.Symbol, PeriodMonths: q.PeriodMonths, Interval: q.Interval},
		RSIPeriod:  q.RSIPeriod,
	})
	if err != nil {
		response.Error(c, err, "Internal server error in core metrics calculation.")
		return
	}
	c.JSON(http.StatusOK, dto.NewCoreMetricsResponse(m))
}

// MovingAverage は単純移動平均の系列を返します。
//
// エンドポイント例:
// GET /moving-average?symbol=AAPL&window=50
func (h *MetricsHandler) MovingAverage(c *gin.Context) {
	var q dto.MovingAverageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	ma, err := h.uc.GetMovingAverage(c.Request.Context(), usecase.MovingAverageQuery{
		PriceQuery: usecase.PriceQuery{Symbol: q.Symbol, PeriodMonths: q.PeriodMonths, Interval: q.Interval},
		Window:     q.Window,
	})
	if err != nil {
		response.Error(c, err, "Internal server error in moving average calculation.")
		return
	}
	c.JSON(http.StatusOK, dto.MovingAverageResponse{MovingAverage: dto.NewPricePoints(ma.Points)})
}

// TrendMetrics は20日モメンタムとSMA乖離を返します。
func (h *MetricsHandler) TrendMetrics(c *gin.Context) {
	var q dto.TrendMetricsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	m, err := h.uc.GetTrendMetrics(c.Request.Context(), q.Symbol)
	if err != nil {
		response.Error(c, err, "Internal server error in trend metrics calculation.")
		return
	}
	c.JSON(http.StatusOK, dto.TrendMetricsResponse{Momentum20D: m.Momentum20D, SMAGap: m.SMAGap})
}

// CorrelationMetrics はベンチマークとの相関係数とベータを返します。
func (h *MetricsHandler) CorrelationMetrics(c *gin.Context) {
	var q dto.CorrelationMetricsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	m, err := h.uc.GetCorrelationMetrics(c.Request.Context(), usecase.CorrelationQuery{
		PriceQuery: usecase.PriceQuery{Symbol: q.Symbol, PeriodMonths: q.PeriodMonths, Interval: q.Interval},
		Benchmark:  q.Benchmark,
	})
	if err != nil {
		response.Error(c, err, "Internal server error in correlation/beta metrics calculation.")
		return
	}
	c.JSON(http.StatusOK, dto.CorrelationMetricsResponse{Correlation: m.Correlation, Beta: m.Beta})
}

// DrawdownMetrics は最大ドローダウンと回復日数を返します。
func (h *MetricsHandler) DrawdownMetrics(c *gin.Context) {
	var q dto.DrawdownMetricsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	m, err := h.uc.GetDrawdownMetrics(c.Request.Context(), usecase.PriceQuery{
		Symbol: q.Symbol, PeriodMonths: q.PeriodMonths, Interval: q.Interval,
	})
	if err != nil {
		response.Error(c, err, "Internal server error in drawdown metrics calculation.")
		return
	}
	c.JSON(http.StatusOK, dto.DrawdownMetricsResponse{MaxDrawdownPct: m.MaxDrawdownPct, RecoveryDays: m.RecoveryDays})
}

// ParameterOptions は各パラメータの許容値を返します。
func (h *MetricsHandler) ParameterOptions(c *gin.Context) {
	o, err := h.uc.ParameterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err, "Internal server error listing parameter options.")
		return
	}
	c.JSON(http.StatusOK, dto.NewParameterOptionsResponse(o))
}
