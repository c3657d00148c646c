// Package entity defines the domain models for the metrics feature.
package entity

// PricePoint is a single closing price of a symbol on a calendar date.
// Series of PricePoint are ordered by Date ascending with no duplicates.
type PricePoint struct {
	Date  string  `json:"date"`  // Calendar date, "2006-01-02"
	Price float64 `json:"price"` // Close price
}

// Lookback describes how far back a price window reaches from now.
// Exactly one field is set. Months is a calendar window; Sessions asks for
// the most recent N bars, whatever calendar span they cover.
type Lookback struct {
	Months   int
	Sessions int
}

// Closes extracts the price values of a series, keeping the order.
func Closes(points []PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Price
	}
	return out
}
