// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// APIError is the error object Yahoo embeds in chart and quoteSummary bodies.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResponse represents the JSON response from the v8 chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"chart"`
}

// ChartResult is the series of one symbol. Close holds null for bars without a trade.
type ChartResult struct {
	Meta struct {
		Symbol    string `json:"symbol"`
		GMTOffset int    `json:"gmtoffset"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}
