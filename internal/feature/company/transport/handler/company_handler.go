// Package handler はcompanyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finmetrics_backend/internal/feature/company/domain/entity"
	"finmetrics_backend/internal/feature/company/transport/http/dto"
	"finmetrics_backend/internal/feature/company/usecase"
	"finmetrics_backend/internal/platform/http/response"
)

// CompanyUsecase は企業情報のユースケースインターフェースです。
type CompanyUsecase interface {
	About(ctx context.Context, symbol string) (entity.Profile, error)
	Recommendations(ctx context.Context, symbol string) ([]entity.Recommendation, error)
}

var _ CompanyUsecase = (*usecase.CompanyUsecase)(nil)

// CompanyHandler は企業情報のHTTPリクエストを処理します。
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler は新しい CompanyHandler を作成します。
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// About は企業概要を返します。
//
// エンドポイント例:
// GET /company-about?symbol=AAPL
func (h *CompanyHandler) About(c *gin.Context) {
	var q dto.SymbolQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	p, err := h.uc.About(c.Request.Context(), q.Symbol)
	if err != nil {
		response.Error(c, err, "Internal server error fetching company info.")
		return
	}
	c.JSON(http.StatusOK, dto.NewCompanyAboutResponse(p))
}

// Recommendations はアナリスト推奨の一覧を返します。
//
// エンドポイント例:
// GET /recommendations?symbol=AAPL
func (h *CompanyHandler) Recommendations(c *gin.Context) {
	var q dto.SymbolQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	recs, err := h.uc.Recommendations(c.Request.Context(), q.Symbol)
	if err != nil {
		response.Error(c, err, "Internal server error in recommendations.")
		return
	}
	if recs == nil {
		recs = []entity.Recommendation{}
	}
	c.JSON(http.StatusOK, recs)
}
