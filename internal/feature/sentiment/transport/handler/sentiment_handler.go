// Package handler はsentimentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finmetrics_backend/internal/feature/sentiment/domain/entity"
	"finmetrics_backend/internal/feature/sentiment/transport/http/dto"
	"finmetrics_backend/internal/feature/sentiment/usecase"
	"finmetrics_backend/internal/platform/http/response"
)

// SentimentUsecase は感情分析のユースケースインターフェースです。
type SentimentUsecase interface {
	Analyze(ctx context.Context, symbol string) (entity.Sentiment, error)
}

var _ SentimentUsecase = (*usecase.SentimentUsecase)(nil)

// SentimentHandler は感情分析のHTTPリクエストを処理します。
type SentimentHandler struct {
	uc SentimentUsecase
}

// NewSentimentHandler は新しい SentimentHandler を作成します。
func NewSentimentHandler(uc SentimentUsecase) *SentimentHandler {
	return &SentimentHandler{uc: uc}
}

// Sentiment は直近24時間のニュースの感情スコアを返します。
//
// エンドポイント例:
// GET /sentiment?symbol=AAPL
func (h *SentimentHandler) Sentiment(c *gin.Context) {
	var q dto.SymbolQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	s, err := h.uc.Analyze(c.Request.Context(), q.Symbol)
	if err != nil {
		response.Error(c, err, "Internal server error in sentiment analysis.")
		return
	}
	if s.Articles == nil {
		s.Articles = []entity.ScoredArticle{}
	}
	c.JSON(http.StatusOK, s)
}
