// Package dto defines data transfer objects for the sentiment HTTP API.
package dto

// SymbolQuery is the query string of the sentiment endpoint.
type SymbolQuery struct {
	Symbol string `form:"symbol"`
}
