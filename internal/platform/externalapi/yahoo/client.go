package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"finmetrics_backend/internal/shared/apperr"
	"finmetrics_backend/internal/shared/ratelimiter"
)

// Observer は外部API呼び出しの結果と所要時間を記録します。
type Observer interface {
	ObserveProvider(operation string, started time.Time, err error)
}

// Client はYahoo Financeからマーケットデータを取得するプロバイダ実装です。
// 価格・P/E・企業情報・推奨・ニュースの各ユースケースから利用されます。
type Client struct {
	cfg      Config
	http     *http.Client
	limiter  ratelimiter.Limiter
	observer Observer
	now      func() time.Time
}

// NewClient は指定された設定とHTTPクライアントでClientを生成します。
// limiter と observer は nil でも構いません。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.Limiter, observer Observer) *Client {
	return &Client{
		cfg:      cfg,
		http:     client,
		limiter:  limiter,
		observer: observer,
		now:      time.Now,
	}
}

// getJSON はGETリクエストを送信し、レスポンスを out にデコードします。
func (c *Client) getJSON(ctx context.Context, op, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(ctx, op, req, out)
}

// postJSON は in をJSONとしてPOSTし、レスポンスを out にデコードします。
func (c *Client) postJSON(ctx context.Context, op, u string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, op, req, out)
}

func (c *Client) do(ctx context.Context, op string, req *http.Request, out any) (err error) {
	started := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveProvider(op, started, err)
		}
	}()

	// 外部APIのレート制限を超えないよう待機
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req.Header.Set("Accept", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		// 接続を再利用できるよう本文を読み捨てる
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4<<10))
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// upstream はプロバイダ呼び出しの失敗を操作名と銘柄付きで分類します。
func upstream(op, symbol string, err error) error {
	return apperr.Upstream(op+" "+symbol, err)
}
