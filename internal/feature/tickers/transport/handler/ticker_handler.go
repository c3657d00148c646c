// Package handler はtickersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finmetrics_backend/internal/feature/tickers/domain/entity"
	"finmetrics_backend/internal/feature/tickers/transport/http/dto"
	"finmetrics_backend/internal/feature/tickers/usecase"
	"finmetrics_backend/internal/platform/http/response"
)

// TickerUsecase は銘柄一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TickerUsecase interface {
	ListAvailable(ctx context.Context, startsWith string) ([]entity.Ticker, error)
}

var _ TickerUsecase = (*usecase.TickerUsecase)(nil)

// TickerHandler は銘柄一覧に関するHTTPリクエストを処理します。
type TickerHandler struct {
	uc TickerUsecase
}

// NewTickerHandler は新しい TickerHandler を作成します。
func NewTickerHandler(uc TickerUsecase) *TickerHandler {
	return &TickerHandler{uc: uc}
}

// List は利用可能な銘柄の一覧を返します。
// starts_with が指定された場合は前方一致で絞り込みます。
//
// エンドポイント例:
// GET /available-tickers?starts_with=AA
func (h *TickerHandler) List(c *gin.Context) {
	var q dto.AvailableTickersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	tickers, err := h.uc.ListAvailable(c.Request.Context(), q.StartsWith)
	if err != nil {
		response.Error(c, err, "Internal server error fetching available tickers.")
		return
	}
	out := make([]dto.TickerItem, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, dto.TickerItem{Symbol: t.Symbol, Name: t.Name})
	}
	c.JSON(http.StatusOK, dto.AvailableTickersResponse{Tickers: out})
}
