// Package http provides the outbound HTTP client shared by external API adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト
//   - MaxIdleConns / MaxIdleConnsPerHost: 同一ホストへの並列リクエストで接続を再利用するため
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//   - userAgent: 空でなければ全リクエストの User-Agent に設定（未設定のリクエストを拒否するAPIがあるため）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	var rt http.RoundTripper = t
	if userAgent != "" {
		rt = &userAgentTransport{base: t, userAgent: userAgent}
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}

// userAgentTransport sets the User-Agent header on requests that do not carry one.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
