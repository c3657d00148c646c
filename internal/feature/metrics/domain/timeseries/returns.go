// Package timeseries implements the pure numeric transforms applied to price
// history: returns, volatility, RSI, moving averages, drawdown and
// correlation/beta. Every function takes prices in chronological order
// (oldest first), never mutates its input and keeps no state.
//
// Functions whose result may be undefined for short inputs follow the
// comma-ok idiom: ok is false when there is not enough data.
package timeseries

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInsufficientData is returned when a series is too short for a
	// computation that cannot degrade to an absent value.
	ErrInsufficientData = errors.New("insufficient price data")

	// ErrLengthMismatch is returned when two series that must be sampled over
	// the same window have different lengths.
	ErrLengthMismatch = errors.New("price series length mismatch")
)

// Return computes the raw price-ratio return (last-first)/first.
// It is not adjusted for dividends or inflation.
func Return(prices []float64) (float64, bool) {
	if len(prices) < 2 {
		return 0, false
	}
	return finite((prices[len(prices)-1] - prices[0]) / prices[0])
}

// SimpleReturns returns the period-over-period simple returns
// (p[i]-p[i-1])/p[i-1]. The result has len(prices)-1 values.
func SimpleReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return out
}

// Volatility is the population standard deviation of the simple returns.
func Volatility(prices []float64) (float64, bool) {
	if len(prices) < 2 {
		return 0, false
	}
	return finite(stat.PopStdDev(SimpleReturns(prices), nil))
}

// Momentum returns the absolute price change over the trailing lookback
// periods: last - prices[len-1-lookback].
func Momentum(prices []float64, lookback int) (float64, bool) {
	if lookback <= 0 || len(prices) < lookback+1 {
		return 0, false
	}
	last := len(prices) - 1
	return finite(prices[last] - prices[last-lookback])
}

// finite reports v as absent when it is NaN or infinite, which happens on
// zero prices or zero variance and cannot be represented in JSON.
func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
