package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	companyentity "finmetrics_backend/internal/feature/company/domain/entity"
	companyusecase "finmetrics_backend/internal/feature/company/usecase"
	"finmetrics_backend/internal/platform/externalapi/yahoo/dto"
)

var _ companyusecase.ProfileProvider = (*Client)(nil)

// quoteSummary は指定モジュールのサマリーを取得します。結果が空の場合はゼロ値を返します。
func (c *Client) quoteSummary(ctx context.Context, op, symbol string, modules ...string) (dto.QuoteSummaryResult, error) {
	q := url.Values{}
	q.Set("modules", strings.Join(modules, ","))
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.QuoteSummaryResponse
	if err := c.getJSON(ctx, op, u, &body); err != nil {
		return dto.QuoteSummaryResult{}, upstream(op, symbol, err)
	}
	if body.QuoteSummary.Error != nil {
		return dto.QuoteSummaryResult{}, upstream(op, symbol, fmt.Errorf("yahoo: %s", body.QuoteSummary.Error.Description))
	}
	if len(body.QuoteSummary.Result) == 0 {
		return dto.QuoteSummaryResult{}, nil
	}
	return body.QuoteSummary.Result[0], nil
}

// TrailingPE は直近12か月のPERを返します。値がない場合は nil を返します。
func (c *Client) TrailingPE(ctx context.Context, symbol string) (*float64, error) {
	r, err := c.quoteSummary(ctx, "trailing_pe", symbol, "summaryDetail")
	if err != nil {
		return nil, err
	}
	if r.SummaryDetail == nil {
		return nil, nil
	}
	return r.SummaryDetail.TrailingPE.Raw, nil
}

// CompanyProfile は企業の基本情報を返します。表示名の決定は呼び出し側で行います。
func (c *Client) CompanyProfile(ctx context.Context, symbol string) (companyentity.Profile, error) {
	r, err := c.quoteSummary(ctx, "company_profile", symbol, "price", "assetProfile")
	if err != nil {
		return companyentity.Profile{}, err
	}

	var p companyentity.Profile
	if r.Price != nil {
		p.Symbol = r.Price.Symbol
		p.ShortName = r.Price.ShortName
		p.LongName = r.Price.LongName
		p.MarketCap = r.Price.MarketCap.Raw
	}
	if a := r.AssetProfile; a != nil {
		p.Sector = nonEmpty(a.Sector)
		p.Industry = nonEmpty(a.Industry)
		p.Website = nonEmpty(a.Website)
		p.Description = nonEmpty(a.LongBusinessSummary)
	}
	return p, nil
}

// Recommendations はアナリスト推奨の期間別分布を返します。期間の表記は変換しません。
func (c *Client) Recommendations(ctx context.Context, symbol string) ([]companyentity.Recommendation, error) {
	r, err := c.quoteSummary(ctx, "recommendations", symbol, "recommendationTrend")
	if err != nil {
		return nil, err
	}
	if r.RecommendationTrend == nil {
		return []companyentity.Recommendation{}, nil
	}

	out := make([]companyentity.Recommendation, 0, len(r.RecommendationTrend.Trend))
	for _, t := range r.RecommendationTrend.Trend {
		out = append(out, companyentity.Recommendation{
			Period:     t.Period,
			StrongBuy:  t.StrongBuy,
			Buy:        t.Buy,
			Hold:       t.Hold,
			Sell:       t.Sell,
			StrongSell: t.StrongSell,
		})
	}
	return out, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
