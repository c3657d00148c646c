// Package ratelimiter throttles outbound calls to external APIs.
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Limiter は外部API呼び出しの頻度を制限するインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter はトークンバケット方式で呼び出し頻度を制限します。
type RateLimiter struct {
	name    string
	limiter *rate.Limiter
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は1秒あたり rps 回、最大 burst 回の同時実行を許可するRateLimiterを生成します。
// rps が0以下の場合は制限しません。
func NewRateLimiter(name string, rps float64, burst int) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{name: name, limiter: rate.NewLimiter(limit, burst)}
}

// Wait はトークンが得られるまで待機します。ctx がキャンセルされた場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	r := rl.limiter.Reserve()
	if !r.OK() {
		return rl.limiter.Wait(ctx)
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	slog.DebugContext(ctx, "rate limit hit, waiting", "limiter", rl.name, "delay", delay)
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
