// Package dto defines data transfer objects for the company HTTP API.
package dto

import "finmetrics_backend/internal/feature/company/domain/entity"

// SymbolQuery is the query string of the company endpoints.
type SymbolQuery struct {
	Symbol string `form:"symbol"`
}

// CompanyAboutResponse is the body of /company-about.
type CompanyAboutResponse struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name"`
	Sector      *string  `json:"sector"`
	Industry    *string  `json:"industry"`
	Website     *string  `json:"website"`
	Description *string  `json:"description"`
	MarketCap   *float64 `json:"market_cap"`
}

// NewCompanyAboutResponse converts a profile to its response shape.
func NewCompanyAboutResponse(p entity.Profile) CompanyAboutResponse {
	return CompanyAboutResponse{
		Symbol:      p.Symbol,
		Name:        p.Name,
		Sector:      p.Sector,
		Industry:    p.Industry,
		Website:     p.Website,
		Description: p.Description,
		MarketCap:   p.MarketCap,
	}
}
