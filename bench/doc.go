// Package bench is a microbenchmark measurement harness: it times a
// zero-argument unit of work repeatedly and reports statistically
// robust, allocation-aware per-invocation results.
//
// Three things make microbenchmarks hard, and each has a dedicated
// component here:
//
//   - Clock granularity. A single invocation of a cheap unit finishes
//     far below timer resolution, so the harness times blocks of N
//     back-to-back invocations, choosing N once per run by geometric
//     search until one block's duration dominates the resolution.
//   - Noise. The scheduler and the garbage collector leave a
//     right-skewed tail on any timing distribution. The harness takes
//     many samples and reports the median as canonical, with
//     min/mean/max/stddev alongside (see stats/timing).
//   - The compiler. Constant inputs fold ahead of time and unused
//     results are dead code. Both ends of the unit must pass through
//     package opaque, or the measurement may time nothing at all.
//
// A typical benchmark:
//
//	data := make([]float64, opaque.Val(4096))
//	report, err := bench.Run(func() {
//		var sum float64
//		for _, x := range data {
//			sum += x
//		}
//		opaque.Sink(sum)
//	})
//
// A run is synchronous on the calling goroutine. Concurrent background
// work is treated as noise to be absorbed statistically, not
// eliminated; independent runs may be issued from separate goroutines
// and share no state. The unit must be self-contained: any blocking on
// I/O or external synchronization is charged as benchmarked cost. The
// time budget is checked cooperatively between samples only, so a unit
// of unbounded duration needs its own per-call timeout before it
// reaches the harness.
package bench
