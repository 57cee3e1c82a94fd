// Package opaque provides optimization barriers around benchmarked
// values.
//
// A benchmarked expression whose inputs are compile-time constants can
// be folded before the measurement ever runs, and a result nothing
// reads is dead code the compiler removes outright. Both ends must be
// cut off: route every input through Val and every result through
// Sink. Wrapping only the inputs is not enough, since an unused result
// still leaves the whole computation removable.
//
//	a := opaque.Val(3.0)
//	b := opaque.Val(4.0)
//	report, err := bench.Run(func() {
//		opaque.Sink(math.Hypot(a, b))
//	})
//
// Both barriers are allocation-free, so they never disturb the
// allocation counters of the unit they guard.
package opaque

// Mutable package state the compiler cannot prove constant. The
// alwaysFalse flag is never set, so the guarded stores below never
// execute and never allocate, but the compiler must keep the captured
// values alive and materialized.
var (
	alwaysFalse bool
	sink        any
)

// Val returns v unchanged through a call boundary the inliner is
// barred from removing, so the caller's optimizer cannot see the value
// behind it at compile time.
//
//go:noinline
func Val[T any](v T) T {
	if alwaysFalse {
		sink = v
	}

	return v
}

// Sink consumes v so the computation producing it cannot be eliminated
// as dead.
//
//go:noinline
func Sink[T any](v T) {
	if alwaysFalse {
		sink = v
	}
}
