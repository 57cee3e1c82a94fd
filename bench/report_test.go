package bench

import (
	"math"
	"testing"
	"time"
)

func TestAggregate(t *testing.T) {
	samples := SampleSet{
		{Elapsed: 10 * time.Microsecond, Bytes: 4096, Mallocs: 4, Evals: 4},
		{Elapsed: 20 * time.Microsecond, Bytes: 4100, Mallocs: 5, Evals: 4},
		{Elapsed: 30 * time.Microsecond, Bytes: 5000, Mallocs: 8, Evals: 4},
	}

	r := aggregate(samples, 4, true, false)

	if r.MinTime != 2500*time.Nanosecond {
		t.Errorf("MinTime: got %v, want 2.5µs", r.MinTime)
	}
	if r.MedianTime != 5000*time.Nanosecond {
		t.Errorf("MedianTime: got %v, want 5µs", r.MedianTime)
	}
	if r.MeanTime != 5000*time.Nanosecond {
		t.Errorf("MeanTime: got %v, want 5µs", r.MeanTime)
	}
	if r.MaxTime != 7500*time.Nanosecond {
		t.Errorf("MaxTime: got %v, want 7.5µs", r.MaxTime)
	}
	if r.StdTime != 2500*time.Nanosecond {
		t.Errorf("StdTime: got %v, want 2.5µs", r.StdTime)
	}
	if r.MinBytes != 1024 {
		t.Errorf("MinBytes: got %d, want 1024", r.MinBytes)
	}
	if r.AllocCount != 1 {
		t.Errorf("AllocCount: got %d, want 1", r.AllocCount)
	}
	if r.SampleCount != 3 {
		t.Errorf("SampleCount: got %d, want 3", r.SampleCount)
	}
	if r.EvalsPerSample != 4 {
		t.Errorf("EvalsPerSample: got %d, want 4", r.EvalsPerSample)
	}
	if !r.MemoryTracked || r.Degraded {
		t.Errorf("flags: tracked=%t degraded=%t, want true/false", r.MemoryTracked, r.Degraded)
	}
}

func TestAggregateUntracked(t *testing.T) {
	samples := SampleSet{
		{Elapsed: time.Millisecond, Evals: 10},
		{Elapsed: time.Millisecond, Evals: 10},
		{Elapsed: time.Millisecond, Evals: 10},
	}

	r := aggregate(samples, 10, false, true)

	if r.MemoryTracked {
		t.Error("MemoryTracked: got true, want false")
	}
	if r.MinBytes != 0 || r.AllocCount != 0 {
		t.Errorf("memory fields: got %d/%d, want 0/0", r.MinBytes, r.AllocCount)
	}
	if !r.Degraded {
		t.Error("Degraded flag lost in aggregation")
	}
}

func TestAggregateSubNanosecondFloor(t *testing.T) {
	// 100ns over 1000 evals is 0.1ns per invocation: far below clock
	// resolution, but still not free.
	samples := SampleSet{
		{Elapsed: 100 * time.Nanosecond, Evals: 1000},
		{Elapsed: 100 * time.Nanosecond, Evals: 1000},
		{Elapsed: 100 * time.Nanosecond, Evals: 1000},
	}

	r := aggregate(samples, 1000, false, false)

	if r.MedianTime != 1 {
		t.Errorf("MedianTime: got %v, want 1ns floor", r.MedianTime)
	}
	if r.MinTime != 1 || r.MeanTime != 1 || r.MaxTime != 1 {
		t.Errorf("sub-ns times not floored: min=%v mean=%v max=%v",
			r.MinTime, r.MeanTime, r.MaxTime)
	}
}

func TestDurationFromNs(t *testing.T) {
	cases := []struct {
		ns   float64
		want time.Duration
	}{
		{0, 0},
		{0.1, 1},
		{0.9, 1},
		{1, 1},
		{2.4, 2},
		{2.5, 3},
		{1500, 1500},
		{math.NaN(), 0},
	}

	for _, tc := range cases {
		if got := durationFromNs(tc.ns); got != tc.want {
			t.Errorf("durationFromNs(%g): got %v, want %v", tc.ns, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := &Report{MedianTime: 400 * time.Nanosecond, MinBytes: 2048, AllocCount: 3}
	b := &Report{MedianTime: 100 * time.Nanosecond, MinBytes: 512, AllocCount: 1}

	c := Compare(a, b)

	if c.Speedup != 4 {
		t.Errorf("Speedup: got %g, want 4", c.Speedup)
	}
	if c.BytesDelta != -1536 {
		t.Errorf("BytesDelta: got %d, want -1536", c.BytesDelta)
	}
	if c.AllocsDelta != -2 {
		t.Errorf("AllocsDelta: got %d, want -2", c.AllocsDelta)
	}
}

func TestCompareZeroMedian(t *testing.T) {
	a := &Report{MedianTime: 100 * time.Nanosecond}
	b := &Report{}

	if c := Compare(a, b); c.Speedup != 0 {
		t.Errorf("Speedup with zero median: got %g, want 0", c.Speedup)
	}
}

func TestPerInvocation(t *testing.T) {
	s := SampleSet{
		{Elapsed: 1000 * time.Nanosecond, Evals: 10},
		{Elapsed: 3000 * time.Nanosecond, Evals: 10},
	}

	got := s.perInvocation()
	if len(got) != 2 || got[0] != 100 || got[1] != 300 {
		t.Errorf("perInvocation: got %v, want [100 300]", got)
	}
}
