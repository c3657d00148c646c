// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check は依存先（DB・Redisなど）の疎通確認です。
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	checks  []Check
	timeout time.Duration
}

// NewHealthHandler は checks を順に確認するHealthHandlerを作成します。
func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// 依存先のいずれかが応答しない場合は503を返します。キャッシュは常に防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "ok"}
	deps := make(gin.H, len(h.checks))
	for _, chk := range h.checks {
		if err := chk.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "health check failed", "dependency", chk.Name, "error", err)
			deps[chk.Name] = "unavailable"
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			continue
		}
		deps[chk.Name] = "ok"
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}
