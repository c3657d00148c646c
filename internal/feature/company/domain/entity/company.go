// Package entity defines the domain models for the company feature.
package entity

// Profile is the descriptive data the provider holds for a listed company.
// Optional fields are nil when the provider does not report them.
type Profile struct {
	Symbol      string   `json:"symbol"`
	ShortName   string   `json:"-"`
	LongName    string   `json:"-"`
	Name        string   `json:"name"`
	Sector      *string  `json:"sector"`
	Industry    *string  `json:"industry"`
	Website     *string  `json:"website"`
	Description *string  `json:"description"`
	MarketCap   *float64 `json:"market_cap"`
}

// IsEmpty reports whether the provider returned nothing usable for the symbol.
func (p Profile) IsEmpty() bool {
	return p.Symbol == "" && p.ShortName == "" && p.LongName == "" &&
		p.Sector == nil && p.Industry == nil && p.Website == nil &&
		p.Description == nil && p.MarketCap == nil
}

// DisplayName picks the short name, then the long name, then fallback.
func (p Profile) DisplayName(fallback string) string {
	switch {
	case p.ShortName != "":
		return p.ShortName
	case p.LongName != "":
		return p.LongName
	case p.Symbol != "":
		return p.Symbol
	default:
		return fallback
	}
}

// Recommendation is the analyst rating distribution for one period.
// Period is relative to the current month, e.g. "0m" or "1m".
type Recommendation struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}
