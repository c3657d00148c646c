package yahoo

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	sentimententity "finmetrics_backend/internal/feature/sentiment/domain/entity"
	sentimentusecase "finmetrics_backend/internal/feature/sentiment/usecase"
	"finmetrics_backend/internal/platform/externalapi/yahoo/dto"
)

var _ sentimentusecase.NewsProvider = (*Client)(nil)

// News は銘柄に関する最新ニュースを取得します。公開日時を解釈できない記事は PublishedAt がゼロ値になります。
func (c *Client) News(ctx context.Context, symbol string) ([]sentimententity.Article, error) {
	q := url.Values{}
	q.Set("queryRef", "latestNews")
	q.Set("serviceKey", "ncp_fin")
	u := c.cfg.NewsBaseURL + "/xhr/ncp?" + q.Encode()

	var in dto.NewsRequest
	in.ServiceConfig.SnippetCount = c.cfg.NewsCount
	in.ServiceConfig.Symbols = []string{symbol}

	var body dto.NewsResponse
	if err := c.postJSON(ctx, "news", u, in, &body); err != nil {
		return nil, upstream("news", symbol, err)
	}

	stream := body.Data.TickerStream.Stream
	articles := make([]sentimententity.Article, 0, len(stream))
	for _, item := range stream {
		ct := item.Content
		if ct == nil {
			continue
		}
		a := sentimententity.Article{
			Title:   ct.Title,
			Summary: ct.Summary,
			URL:     ct.CanonicalURL.URL,
		}
		if ct.PubDate != "" {
			ts, err := time.Parse(time.RFC3339, ct.PubDate)
			if err != nil {
				slog.DebugContext(ctx, "unparsable news publish date", "symbol", symbol, "pubDate", ct.PubDate, "error", err)
			} else {
				a.PublishedAt = ts
			}
		}
		articles = append(articles, a)
	}
	return articles, nil
}
