// Package sentiment scores text polarity with the VADER lexicon.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"finmetrics_backend/internal/feature/sentiment/usecase"
)

// Polarity is the VADER score breakdown of a text.
type Polarity struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// VaderScorer wraps a loaded VADER analyzer. The lexicon is read-only after
// construction, so one scorer is shared by all requests.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ usecase.Scorer = (*VaderScorer)(nil)

// NewVaderScorer loads the lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// PolarityScores returns the full score breakdown of text. Blank text is neutral.
func (s *VaderScorer) PolarityScores(text string) Polarity {
	if strings.TrimSpace(text) == "" {
		return Polarity{Neu: 1}
	}
	r := s.analyzer.PolarityScores(text)
	return Polarity{Neg: r.Negative, Neu: r.Neutral, Pos: r.Positive, Compound: r.Compound}
}

// Compound returns the normalised polarity of text in [-1, 1].
func (s *VaderScorer) Compound(text string) float64 {
	return s.PolarityScores(text).Compound
}
