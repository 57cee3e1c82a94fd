// Package memprobe reads cumulative heap allocation counters around a
// measured region.
//
// A probe read briefly synchronizes with the runtime and is far from
// free, so readers must keep it outside the timed region: snapshot,
// clock read, work, clock read, snapshot. The counters are cumulative
// since process start and unaffected by garbage collection, so a delta
// of two snapshots is exactly the allocation performed in between.
package memprobe

import (
	"runtime"
	"sync"
)

// Snapshot holds cumulative allocator counters.
type Snapshot struct {
	Bytes   uint64 // total heap bytes allocated
	Mallocs uint64 // total heap objects allocated
}

// Read returns the current cumulative allocation counters.
func Read() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return Snapshot{Bytes: ms.TotalAlloc, Mallocs: ms.Mallocs}
}

// Delta returns the bytes and objects allocated between snapshots a
// and b, both clamped at zero.
func Delta(a, b Snapshot) (bytes, mallocs uint64) {
	if b.Bytes > a.Bytes {
		bytes = b.Bytes - a.Bytes
	}

	if b.Mallocs > a.Mallocs {
		mallocs = b.Mallocs - a.Mallocs
	}

	return bytes, mallocs
}

var (
	availOnce sync.Once
	avail     bool

	// probeSink forces the probe allocation below onto the heap; a
	// stack-allocated buffer would never move the counters.
	probeSink []byte
)

// Available reports whether allocator introspection yields usable
// counters: a heap allocation between two reads must move both
// counters forward. When false the harness degrades to unknown memory
// fields rather than aborting the run.
func Available() bool {
	availOnce.Do(func() {
		a := Read()
		probeSink = make([]byte, 1)
		b := Read()

		avail = b.Bytes > a.Bytes && b.Mallocs > a.Mallocs
	})

	return avail
}
