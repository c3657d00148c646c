package timeseries

// RSI computes the seed Relative Strength Index over a single window.
//
// Only the first period deltas of prices are used, no matter how many points
// follow. Callers that want the current reading must pass exactly the
// trailing period+1 prices. Average gain and loss are divided by period and
// an all-gain window yields 100.
func RSI(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period+1 {
		return 0, false
	}

	var up, down float64
	for i := 1; i <= period; i++ {
		delta := prices[i] - prices[i-1]
		switch {
		case delta > 0:
			up += delta
		case delta < 0:
			down -= delta
		}
	}
	up /= float64(period)
	down /= float64(period)

	if down == 0 {
		return 100.0, true
	}
	rs := up / down
	return finite(100.0 - 100.0/(1.0+rs))
}

// TrailingWindow returns the last n points of prices, or prices itself when
// it is shorter than n.
func TrailingWindow(prices []float64, n int) []float64 {
	if n <= 0 || len(prices) <= n {
		return prices
	}
	return prices[len(prices)-n:]
}
