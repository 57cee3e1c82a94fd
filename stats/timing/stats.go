// Package timing computes distribution statistics over per-invocation
// benchmark times.
//
// Timing distributions are right-skewed: OS scheduling, interrupts and
// the garbage collector only ever add time, never remove it. The
// median is therefore the canonical "typical" value, with the minimum
// reported separately as an often too-optimistic best case.
package timing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds distribution statistics of a set of per-invocation
// times. Positions refer to the original (insertion) order, which a
// benchmark run retains for diagnostics.
type Summary struct {
	N        int
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Mean     float64
	Median   float64
	P25      float64
	P75      float64
	StdDev   float64
	Variance float64
	Skewness float64
	Kurtosis float64
}

// emptySummary returns a zero-count Summary with NaN moments.
func emptySummary() Summary {
	nan := math.NaN()

	return Summary{
		Min:      nan,
		Max:      nan,
		Mean:     nan,
		Median:   nan,
		P25:      nan,
		P75:      nan,
		StdDev:   nan,
		Variance: nan,
		Skewness: nan,
		Kurtosis: nan,
	}
}

// Calculate computes distribution statistics over xs. The input is not
// modified.
func Calculate(xs []float64) Summary {
	n := len(xs)
	if n == 0 {
		return emptySummary()
	}

	minPos := floats.MinIdx(xs)
	maxPos := floats.MaxIdx(xs)

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	s := Summary{
		N:      n,
		Min:    xs[minPos],
		MinPos: minPos,
		Max:    xs[maxPos],
		MaxPos: maxPos,
		Mean:   stat.Mean(xs, nil),
		Median: median(sorted),
		P25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		P75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}

	if n > 1 {
		s.StdDev = stat.StdDev(xs, nil)
		s.Variance = s.StdDev * s.StdDev
		s.Skewness = stat.Skew(xs, nil)
		s.Kurtosis = stat.ExKurtosis(xs, nil)
	} else {
		s.Skewness = math.NaN()
		s.Kurtosis = math.NaN()
	}

	return s
}

// median of an already sorted, non-empty slice. Even lengths take the
// midpoint of the two central order statistics.
func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2

	if n%2 == 1 {
		return sorted[mid]
	}

	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// Percentile returns the empirical p-quantile of xs for p in [0, 1].
// The input is not modified. Returns NaN for an empty input or an
// out-of-range p.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
