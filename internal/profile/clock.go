package profile

import "time"

// clockBase anchors NowNS readings. time.Since carries the runtime's
// monotonic reading, so values never go backwards under wall-clock
// adjustments.
var clockBase = time.Now()

// nowFunc is swapped in tests to simulate a fixed or unavailable clock.
var nowFunc = func() int64 { return time.Since(clockBase).Nanoseconds() }

// NowNS returns a monotonically non-decreasing timestamp in nanoseconds.
// It is callable regardless of recorder state and has no side effects.
//
// A zero return means the clock was unavailable; elapsed-time math over
// a zero endpoint is meaningless and callers must not rely on it. The Go
// runtime clock does not fail in practice, so the sentinel exists for
// contract compatibility with report consumers.
func NowNS() int64 { return nowFunc() }
