// Package dto defines data transfer objects for the tickers HTTP API.
package dto

// AvailableTickersQuery is the query string of /available-tickers.
type AvailableTickersQuery struct {
	StartsWith string `form:"starts_with"`
}

// TickerItem represents a ticker in the API response.
type TickerItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// AvailableTickersResponse is the body of /available-tickers.
type AvailableTickersResponse struct {
	Tickers []TickerItem `json:"tickers"`
}
