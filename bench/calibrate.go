package bench

import (
	"time"

	"github.com/cwbudde/algo-bench/clock"
)

// resolutionMultiple keeps clock granularity below 0.1% of a sample's
// duration even when MinSampleTime is configured aggressively low.
const resolutionMultiple = 1000

// calibration is the evals-per-sample decision, made once per run and
// read-only for the rest of it.
type calibration struct {
	evals    int
	degraded bool
}

// calibrate searches for the smallest power-of-two evals count whose
// sample duration reaches the minimum sample time. Per-invocation cost
// spans many orders of magnitude across units, so the search doubles
// rather than increments, reaching the right magnitude in O(log cost)
// probes. Hitting the evals cap or the run deadline accepts the
// largest tested count and marks the run degraded.
func calibrate(unit func(), cfg Config, deadline time.Time) calibration {
	floor := cfg.MinSampleTime
	if r := resolutionMultiple * clock.Resolution(); r > floor {
		floor = r
	}

	evals := 1

	for {
		if timeSample(unit, evals) >= floor {
			return calibration{evals: evals}
		}

		if evals >= cfg.MaxEvals || !clock.Now().Before(deadline) {
			return calibration{evals: evals, degraded: true}
		}

		evals *= 2
	}
}

// timeSample measures one timing-only sample of evals invocations.
func timeSample(unit func(), evals int) time.Duration {
	start := clock.Now()
	for i := 0; i < evals; i++ {
		unit()
	}

	return clock.Since(start)
}
