package bench

import "time"

// Sample records one timed block of Evals consecutive invocations of
// the benchmarked unit. It is immutable once recorded.
type Sample struct {
	Elapsed time.Duration // wall time of the whole block
	Bytes   uint64        // heap bytes allocated during the block
	Mallocs uint64        // heap objects allocated during the block
	Evals   int           // invocations in the block
}

// SampleSet is the ordered sequence of samples produced by one run.
// Insertion order is irrelevant for aggregation but retained for
// diagnostics. All samples in a set share the same Evals, fixed once
// by calibration.
type SampleSet []Sample

// perInvocation returns each sample's elapsed time divided by its
// evals count, in nanoseconds.
func (s SampleSet) perInvocation() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = float64(smp.Elapsed) / float64(smp.Evals)
	}

	return out
}
