package timeseries

import "gonum.org/v1/gonum/floats"

// MovingAverage computes the simple moving average over window points.
//
// The result has len(prices)-window+1 values in chronological order; the
// value at index k is the mean of prices[k..k+window-1] and belongs to the
// date of its last point. ok is false when fewer than window prices are
// given, which is distinct from a valid empty result.
func MovingAverage(prices []float64, window int) ([]float64, bool) {
	if window <= 0 || len(prices) < window {
		return nil, false
	}

	out := make([]float64, 0, len(prices)-window+1)
	for end := window; end <= len(prices); end++ {
		out = append(out, floats.Sum(prices[end-window:end])/float64(window))
	}
	return out, true
}
