// Package clock is the monotonic time source for the benchmark
// harness.
//
// All readings carry the runtime monotonic clock component of
// time.Time, so wall-clock adjustments never show up in measured
// durations. A call to Now is an opaque runtime call; the compiler
// cannot reorder benchmarked work across it or hoist work out of a
// timed region.
package clock

import (
	"errors"
	"sync"
	"time"
)

// ErrUnavailable reports a broken platform timer. It is fatal to a
// benchmark run: without a usable clock no measurement is meaningful.
var ErrUnavailable = errors.New("clock: monotonic timer unavailable")

// Now returns the current instant with a monotonic reading.
func Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t, never negative.
func Since(t time.Time) time.Duration {
	d := time.Since(t)
	if d < 0 {
		return 0
	}

	return d
}

const (
	resolutionRounds = 8
	resolutionSpins  = 1 << 20
)

var (
	resOnce sync.Once
	res     time.Duration
)

// Resolution reports the smallest reliably distinguishable interval of
// the monotonic clock. It is measured once by spinning until the
// reading advances and taking the minimum step over several rounds,
// then cached for the lifetime of the process.
func Resolution() time.Duration {
	resOnce.Do(func() { res = measureResolution() })
	return res
}

func measureResolution() time.Duration {
	var minStep time.Duration

	for range resolutionRounds {
		start := time.Now()

		var step time.Duration
		for spins := 0; step <= 0 && spins < resolutionSpins; spins++ {
			step = time.Since(start)
		}

		if step <= 0 {
			// Timer never advanced within the spin bound.
			return 0
		}

		if minStep == 0 || step < minStep {
			minStep = step
		}
	}

	return minStep
}

// Check verifies the timer is usable: a positive measured resolution
// and non-decreasing consecutive readings. It returns ErrUnavailable
// otherwise.
func Check() error {
	if Resolution() <= 0 {
		return ErrUnavailable
	}

	a := Now()
	b := Now()
	if b.Before(a) {
		return ErrUnavailable
	}

	return nil
}
