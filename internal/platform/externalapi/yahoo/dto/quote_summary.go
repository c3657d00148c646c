package dto

// RawValue is Yahoo's formatted number wrapper; only the raw value is used.
type RawValue struct {
	Raw *float64 `json:"raw"`
}

// QuoteSummaryResponse represents the JSON response from the v10 quoteSummary endpoint.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummaryResult holds the modules requested with the modules query parameter.
// Modules that were not requested stay nil.
type QuoteSummaryResult struct {
	Price *struct {
		Symbol    string   `json:"symbol"`
		ShortName string   `json:"shortName"`
		LongName  string   `json:"longName"`
		MarketCap RawValue `json:"marketCap"`
	} `json:"price"`
	AssetProfile *struct {
		Sector              string `json:"sector"`
		Industry            string `json:"industry"`
		Website             string `json:"website"`
		LongBusinessSummary string `json:"longBusinessSummary"`
	} `json:"assetProfile"`
	SummaryDetail *struct {
		TrailingPE RawValue `json:"trailingPE"`
	} `json:"summaryDetail"`
	RecommendationTrend *struct {
		Trend []struct {
			Period     string `json:"period"`
			StrongBuy  int    `json:"strongBuy"`
			Buy        int    `json:"buy"`
			Hold       int    `json:"hold"`
			Sell       int    `json:"sell"`
			StrongSell int    `json:"strongSell"`
		} `json:"trend"`
	} `json:"recommendationTrend"`
}
