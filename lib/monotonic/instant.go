// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package monotonic

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrMixedSources is wrapped by the panic raised in monotonic_debug
// builds when two Instants from different clocks are subtracted.
var ErrMixedSources = errors.New("monotonic: instants from different clock sources")

// Instant is a reading of a monotonic clock. It has no relation to
// wall-clock time: the only meaningful operations are comparing it to
// and subtracting it from other Instants produced by the same Clock.
//
// Instants are immutable values and may be compared with ==. In
// monotonic_debug builds two Instants with equal ticks but different
// sources are not equal.
type Instant struct {
	// source must stay the first field so that its empty variant adds
	// no padding.
	source source

	// ticks counts nanoseconds on the platform monotonic timer.
	ticks uint64
}

// DurationSince returns the time elapsed from earlier to t. This is the
// subtraction t - earlier.
//
// Panics if t precedes earlier or the difference exceeds the range of
// time.Duration. In monotonic_debug builds, also panics if t and
// earlier come from different clocks.
func (t Instant) DurationSince(earlier Instant) time.Duration {
	elapsed, ok := t.CheckedDurationSince(earlier)
	if !ok {
		if t.ticks < earlier.ticks {
			panic(fmt.Sprintf("monotonic: %v precedes %v", t, earlier))
		}
		panic(fmt.Sprintf("monotonic: duration from %v to %v overflows time.Duration", earlier, t))
	}
	return elapsed
}

// CheckedDurationSince returns the time elapsed from earlier to t, or
// false if t precedes earlier or the difference does not fit in a
// time.Duration.
func (t Instant) CheckedDurationSince(earlier Instant) (time.Duration, bool) {
	t.source.mustMatch(earlier.source)
	if t.ticks < earlier.ticks {
		return 0, false
	}
	delta := t.ticks - earlier.ticks
	if delta > math.MaxInt64 {
		return 0, false
	}
	return time.Duration(delta), true
}

// SaturatingDurationSince returns the time elapsed from earlier to t,
// clamped to zero if t precedes earlier and to the largest
// time.Duration if the difference is too large.
func (t Instant) SaturatingDurationSince(earlier Instant) time.Duration {
	t.source.mustMatch(earlier.source)
	if t.ticks < earlier.ticks {
		return 0
	}
	delta := t.ticks - earlier.ticks
	if delta > math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(delta)
}

// CheckedAdd returns t+d, or false if the result falls outside the
// timer's range. A negative d moves t backwards. The result keeps t's
// clock source.
func (t Instant) CheckedAdd(d time.Duration) (Instant, bool) {
	if d >= 0 {
		return t.forward(magnitude(d))
	}
	return t.backward(magnitude(d))
}

// CheckedSub returns t-d, or false if the result falls outside the
// timer's range. A negative d moves t forwards. The result keeps t's
// clock source.
func (t Instant) CheckedSub(d time.Duration) (Instant, bool) {
	if d >= 0 {
		return t.backward(magnitude(d))
	}
	return t.forward(magnitude(d))
}

// Add returns t+d. Panics if the result falls outside the timer's
// range; use CheckedAdd where that can happen.
func (t Instant) Add(d time.Duration) Instant {
	result, ok := t.CheckedAdd(d)
	if !ok {
		panic(fmt.Sprintf("monotonic: %v + %v overflows", t, d))
	}
	return result
}

// Sub returns t-d. Panics if the result falls outside the timer's
// range; use CheckedSub where that can happen.
func (t Instant) Sub(d time.Duration) Instant {
	result, ok := t.CheckedSub(d)
	if !ok {
		panic(fmt.Sprintf("monotonic: %v - %v overflows", t, d))
	}
	return result
}

// AddAssign replaces *t with t.Add(d).
func (t *Instant) AddAssign(d time.Duration) { *t = t.Add(d) }

// SubAssign replaces *t with t.Sub(d).
func (t *Instant) SubAssign(d time.Duration) { *t = t.Sub(d) }

// Compare returns -1, 0, or +1 as t is before, equal to, or after u.
// Ticks are compared first; in monotonic_debug builds the clock source
// breaks ties so that the order stays total.
func (t Instant) Compare(u Instant) int {
	switch {
	case t.ticks < u.ticks:
		return -1
	case t.ticks > u.ticks:
		return 1
	}
	return t.source.compare(u.source)
}

// Before reports whether t orders before u.
func (t Instant) Before(u Instant) bool { return t.Compare(u) < 0 }

// After reports whether t orders after u.
func (t Instant) After(u Instant) bool { return t.Compare(u) > 0 }

// Equal reports whether t and u are the same reading of the same clock.
func (t Instant) Equal(u Instant) bool { return t == u }

// String formats t for debugging output. The tick value is only
// meaningful within the current process.
func (t Instant) String() string {
	return fmt.Sprintf("instant(%dns)%s", t.ticks, t.source.suffix())
}

func (t Instant) forward(n uint64) (Instant, bool) {
	if n > math.MaxUint64-t.ticks {
		return Instant{}, false
	}
	return Instant{source: t.source, ticks: t.ticks + n}, true
}

func (t Instant) backward(n uint64) (Instant, bool) {
	if n > t.ticks {
		return Instant{}, false
	}
	return Instant{source: t.source, ticks: t.ticks - n}, true
}

// magnitude returns |d| without overflowing on math.MinInt64.
func magnitude(d time.Duration) uint64 {
	if d >= 0 {
		return uint64(d)
	}
	return uint64(-(d + 1)) + 1
}
