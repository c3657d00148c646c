package yahoo

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"time"

	"finmetrics_backend/internal/feature/metrics/domain/entity"
	"finmetrics_backend/internal/feature/metrics/usecase"
	"finmetrics_backend/internal/platform/externalapi/yahoo/dto"
)

// ClientがPriceProviderを実装していることをコンパイル時に検証します。
var _ usecase.PriceProvider = (*Client)(nil)

const (
	dateLayout     = "2006-01-02"
	intervalHourly = "1h"
	intervalWeekly = "1wk"
)

// ClosePrices はチャートAPIから終値の系列を取得し、日付昇順で返します。
// lookback.Sessions が指定された場合は十分な期間を取得したうえで直近N本に切り詰めます。
func (c *Client) ClosePrices(ctx context.Context, symbol string, lookback entity.Lookback, interval string) ([]entity.PricePoint, error) {
	now := c.now().UTC()
	start := windowStart(now, lookback, interval)

	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(now.Unix(), 10))
	q.Set("interval", interval)
	q.Set("includePrePost", "false")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	if err := c.getJSON(ctx, "chart", u, &body); err != nil {
		return nil, upstream("chart", symbol, err)
	}
	if body.Chart.Error != nil {
		return nil, upstream("chart", symbol, fmt.Errorf("yahoo: %s", body.Chart.Error.Description))
	}
	if len(body.Chart.Result) == 0 {
		return []entity.PricePoint{}, nil
	}

	points := toPricePoints(body.Chart.Result[0], interval)
	if n := lookback.Sessions; n > 0 && len(points) > n {
		points = points[len(points)-n:]
	}
	return points, nil
}

// windowStart は lookback を取得開始時刻に変換します。
func windowStart(now time.Time, lookback entity.Lookback, interval string) time.Time {
	if lookback.Months > 0 {
		return now.AddDate(0, -lookback.Months, 0)
	}
	n := lookback.Sessions
	switch interval {
	case intervalWeekly:
		return now.AddDate(0, 0, -(n*7 + 14))
	case intervalHourly:
		// 1取引日あたり約7本
		days := n/7 + 1
		return now.AddDate(0, 0, -(days*7/5 + 5))
	default:
		// 週末と祝日の分を上乗せ
		return now.AddDate(0, 0, -(n*7/5 + 10))
	}
}

// toPricePoints は欠損値を除いた終値を取引所の現地日付で返します。
// 同じ日付が複数ある場合は最後の足を採用します。
func toPricePoints(r dto.ChartResult, interval string) []entity.PricePoint {
	if len(r.Indicators.Quote) == 0 {
		return []entity.PricePoint{}
	}
	closes := r.Indicators.Quote[0].Close
	loc := time.FixedZone("exchange", r.Meta.GMTOffset)

	layout := dateLayout
	if interval == intervalHourly {
		layout = time.RFC3339
	}

	index := make(map[string]int, len(r.Timestamp))
	points := make([]entity.PricePoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(closes) {
			break
		}
		v := closes[i]
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		date := time.Unix(ts, 0).In(loc).Format(layout)
		if j, ok := index[date]; ok {
			points[j].Price = *v
			continue
		}
		index[date] = len(points)
		points = append(points, entity.PricePoint{Date: date, Price: *v})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
