package timeseries

import "gonum.org/v1/gonum/stat"

// CorrelationResult holds the co-movement statistics of an asset against a
// benchmark. A nil field means the statistic is undefined for the input
// (fewer than two returns, or a flat benchmark).
type CorrelationResult struct {
	Correlation *float64
	Beta        *float64
}

// CorrelationBeta computes the Pearson correlation and the beta of asset
// against benchmark from their simple returns.
//
// Both raw series must be non-empty and of equal length. After converting to
// returns, both sides are cut to their common trailing length so the most
// recent overlapping periods are compared. Beta divides the sample covariance
// (n-1) by the population variance (n) of the benchmark returns.
func CorrelationBeta(asset, benchmark []float64) (CorrelationResult, error) {
	if len(asset) == 0 || len(benchmark) == 0 {
		return CorrelationResult{}, ErrInsufficientData
	}
	if len(asset) != len(benchmark) {
		return CorrelationResult{}, ErrLengthMismatch
	}

	ra := SimpleReturns(asset)
	rb := SimpleReturns(benchmark)
	if len(ra) != len(rb) {
		n := min(len(ra), len(rb))
		ra = ra[len(ra)-n:]
		rb = rb[len(rb)-n:]
	}

	var res CorrelationResult
	if len(ra) < 2 {
		return res, nil
	}
	if v, ok := finite(stat.Correlation(ra, rb, nil)); ok {
		res.Correlation = &v
	}
	if v, ok := finite(stat.Covariance(ra, rb, nil) / stat.PopVariance(rb, nil)); ok {
		res.Beta = &v
	}
	return res, nil
}
