package bench

import (
	"fmt"

	"github.com/cwbudde/algo-bench/clock"
	"github.com/cwbudde/algo-bench/memprobe"
)

// minViableSamples is the smallest sample count a budget-truncated run
// may return as a report instead of failing.
const minViableSamples = 3

// Run benchmarks unit and returns an aggregated report.
//
// The sequence is: clock check, calibration, warmup, measurement,
// aggregation. Measurement stops at TargetSamples or at the
// MaxTotalTime deadline, whichever comes first; a deadline stop with
// at least three samples yields a degraded report, with fewer it
// fails with ErrInsufficientSamples.
//
// A panic inside the unit propagates to the caller unrecovered and no
// report is produced; the harness never masks a bug in the code under
// test.
func Run(unit func(), opts ...Option) (*Report, error) {
	if unit == nil {
		return nil, ErrNilUnit
	}

	if err := clock.Check(); err != nil {
		return nil, fmt.Errorf("bench: clock check failed: %w", err)
	}

	cfg := ApplyOptions(opts...)
	start := clock.Now()
	deadline := start.Add(cfg.MaxTotalTime)

	track := cfg.TrackAllocations && memprobe.Available()
	degraded := cfg.TrackAllocations && !track

	cal := calibrate(unit, cfg, deadline)
	degraded = degraded || cal.degraded

	for i := 0; i < cfg.WarmupSamples && clock.Now().Before(deadline); i++ {
		measureSample(unit, cal.evals, track)
	}

	samples := make(SampleSet, 0, cfg.TargetSamples)

	for len(samples) < cfg.TargetSamples {
		if !clock.Now().Before(deadline) {
			degraded = true
			break
		}

		samples = append(samples, measureSample(unit, cal.evals, track))
	}

	if len(samples) < cfg.TargetSamples && len(samples) < minViableSamples {
		return nil, fmt.Errorf("%w (got %d, need %d)",
			ErrInsufficientSamples, len(samples), minViableSamples)
	}

	report := aggregate(samples, cal.evals, track, degraded)
	report.TotalTime = clock.Since(start)

	return report, nil
}

// measureSample records one sample: allocation snapshot, clock read,
// evals invocations back to back, clock read, allocation snapshot.
// The probe reads sit outside the clock brackets so their cost is
// never charged to the sample.
func measureSample(unit func(), evals int, track bool) Sample {
	var before memprobe.Snapshot
	if track {
		before = memprobe.Read()
	}

	start := clock.Now()
	for i := 0; i < evals; i++ {
		unit()
	}
	elapsed := clock.Since(start)

	if !track {
		return Sample{Elapsed: elapsed, Evals: evals}
	}

	bytes, mallocs := memprobe.Delta(before, memprobe.Read())

	return Sample{Elapsed: elapsed, Bytes: bytes, Mallocs: mallocs, Evals: evals}
}
