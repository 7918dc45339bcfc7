// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package monotonic

import "time"

// Clock is a monotonic time source. Production code injects a
// RealClock; tests inject a *mockclock.MockClock.
//
// Every Instant a Clock returns belongs to that clock: it may be
// compared with and subtracted from other Instants of the same clock
// only.
type Clock interface {
	// Now returns the current reading. Successive calls on the same
	// clock never go backwards.
	Now() Instant
}

// Elapsed returns the time that has passed on clock since start, which
// must be an Instant previously returned by the same clock. A clock
// never goes backwards, so the result only clamps to zero when start
// came from somewhere else; in monotonic_debug builds that case panics
// on the source check first.
//
// Elapsed is a function rather than a Clock method so that no Clock
// implementation can replace its source check.
func Elapsed(clock Clock, start Instant) time.Duration {
	return clock.Now().SaturatingDurationSince(start)
}
