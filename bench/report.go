package bench

import (
	"math"
	"time"

	"github.com/cwbudde/algo-bench/stats/timing"
)

// Report is the read-only result of one benchmark run. All time
// fields are normalized per invocation at nanosecond resolution;
// measured per-invocation times below 1ns report as 1ns, never 0.
type Report struct {
	// MedianTime is the canonical "typical" time: scheduling noise and
	// interrupts skew the distribution right, and the median absorbs
	// those outliers where the mean cannot. MinTime is the best case,
	// often too optimistic for variable workloads.
	MinTime    time.Duration
	MedianTime time.Duration
	MeanTime   time.Duration
	MaxTime    time.Duration
	StdTime    time.Duration

	// MinBytes and AllocCount are per-invocation minima across
	// samples. Deterministic code allocates the same amount every
	// sample, so the minimum filters out stray one-off allocations
	// from the measurement plumbing. Meaningful only when
	// MemoryTracked.
	MinBytes   uint64
	AllocCount uint64

	SampleCount    int
	EvalsPerSample int
	TotalTime      time.Duration

	// MemoryTracked is false when allocation tracking was disabled or
	// unavailable; the memory fields are then unknown, not zero.
	MemoryTracked bool
	// Degraded flags a report produced despite an internal
	// limitation: calibration hit its cap or deadline, the time budget
	// truncated sampling, or allocation tracking was requested but
	// unavailable.
	Degraded bool
}

// aggregate reduces a sample set into a report.
func aggregate(samples SampleSet, evals int, track, degraded bool) *Report {
	s := timing.Calculate(samples.perInvocation())

	r := &Report{
		MinTime:        durationFromNs(s.Min),
		MedianTime:     durationFromNs(s.Median),
		MeanTime:       durationFromNs(s.Mean),
		MaxTime:        durationFromNs(s.Max),
		StdTime:        durationFromNs(s.StdDev),
		SampleCount:    s.N,
		EvalsPerSample: evals,
		MemoryTracked:  track,
		Degraded:       degraded,
	}

	if track {
		r.MinBytes, r.AllocCount = minAllocs(samples)
	}

	return r
}

// minAllocs returns the per-invocation minima of bytes and object
// counts across samples.
func minAllocs(samples SampleSet) (bytes, mallocs uint64) {
	for i, smp := range samples {
		e := uint64(smp.Evals)
		b := smp.Bytes / e
		m := smp.Mallocs / e

		if i == 0 || b < bytes {
			bytes = b
		}

		if i == 0 || m < mallocs {
			mallocs = m
		}
	}

	return bytes, mallocs
}

// durationFromNs converts a float nanosecond value to a Duration.
// Positive sub-nanosecond values clamp up to 1ns rather than rounding
// to zero, so measured work never reports as free.
func durationFromNs(ns float64) time.Duration {
	if math.IsNaN(ns) {
		return 0
	}

	if ns > 0 && ns < 1 {
		return time.Duration(1)
	}

	return time.Duration(math.Round(ns))
}

// Comparison relates two reports of the same workload family.
type Comparison struct {
	// Speedup is a.MedianTime / b.MedianTime: how many times faster b
	// runs than the baseline a. Values above 1 mean b improved on a.
	// Zero when b's median is zero.
	Speedup float64
	// BytesDelta and AllocsDelta are b minus a, per invocation.
	// Negative values mean b allocates less than a.
	BytesDelta  int64
	AllocsDelta int64
}

// Compare relates report b to the baseline report a.
func Compare(a, b *Report) Comparison {
	c := Comparison{
		BytesDelta:  int64(b.MinBytes) - int64(a.MinBytes),
		AllocsDelta: int64(b.AllocCount) - int64(a.AllocCount),
	}

	if b.MedianTime > 0 {
		c.Speedup = float64(a.MedianTime) / float64(b.MedianTime)
	}

	return c
}
