package timeseries

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DrawdownResult describes the deepest peak-to-trough decline of a series.
type DrawdownResult struct {
	Drawdowns      []float64 // (price - runningMax) / runningMax per index, always <= 0
	MaxDrawdown    float64   // minimum of Drawdowns
	MaxDrawdownPct float64   // |MaxDrawdown| * 100
	PeakIndex      int       // last index at or before the trough where price equals the running max
	TroughIndex    int       // index of MaxDrawdown (first occurrence)
	RecoveryIndex  *int      // first index from the trough whose price regains the peak; nil if never
	RecoveryDays   *int      // RecoveryIndex - TroughIndex; nil if never recovered in the window
}

// Drawdown computes the maximum drawdown and the recovery from it.
// Unlike the other transforms this one fails hard on short or non-finite input.
func Drawdown(prices []float64) (DrawdownResult, error) {
	if len(prices) < 2 {
		return DrawdownResult{}, ErrInsufficientData
	}

	runningMax := make([]float64, len(prices))
	drawdowns := make([]float64, len(prices))
	peak := math.Inf(-1)
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return DrawdownResult{}, ErrInsufficientData
		}
		if p > peak {
			peak = p
		}
		runningMax[i] = peak
		// No decline is measurable from a non-positive peak.
		if peak > 0 {
			drawdowns[i] = (p - peak) / peak
		}
	}

	trough := floats.MinIdx(drawdowns)
	maxDD := drawdowns[trough]

	peakIdx := trough
	for peakIdx > 0 && prices[peakIdx] != runningMax[trough] {
		peakIdx--
	}
	peakPrice := runningMax[peakIdx]

	res := DrawdownResult{
		Drawdowns:      drawdowns,
		MaxDrawdown:    maxDD,
		MaxDrawdownPct: math.Abs(maxDD) * 100,
		PeakIndex:      peakIdx,
		TroughIndex:    trough,
	}
	for i := trough; i < len(prices); i++ {
		if prices[i] >= peakPrice {
			idx, days := i, i-trough
			res.RecoveryIndex = &idx
			res.RecoveryDays = &days
			break
		}
	}
	return res, nil
}
