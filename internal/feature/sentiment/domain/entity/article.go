// Package entity defines the domain models for the sentiment feature.
package entity

import "time"

// Article is a news item about a symbol as returned by the provider.
type Article struct {
	Title       string
	Summary     string
	URL         string
	PublishedAt time.Time // zero when the provider omits it
}

// ScoredArticle is an article published within the analysis window together
// with the compound polarity of its summary.
type ScoredArticle struct {
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	PreviewURL string  `json:"previewUrl"`
	Compound   float64 `json:"vader_compound"`
}

// Sentiment aggregates the polarity of the last 24 hours of news.
type Sentiment struct {
	MeanCompound float64         `json:"mean_compound_last_24h"`
	Articles     []ScoredArticle `json:"articles_last_24h"`
}
