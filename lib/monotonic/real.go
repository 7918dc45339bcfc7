// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package monotonic

import "github.com/aristanetworks/goarista/monotime"

// RealClock reads the platform monotonic timer. It is stateless; the
// zero value is ready to use and every RealClock shares one source.
type RealClock struct{}

// Now returns the current monotonic timer reading.
func (RealClock) Now() Instant {
	return Instant{source: realSource(), ticks: monotime.Now()}
}

// NewMockEpoch reads the platform monotonic timer like RealClock.Now,
// but in monotonic_debug builds tags the result with a fresh mock
// source identity instead of the real one. Mock clocks use it as their
// epoch so that their Instants can never pass the source check against
// the real clock or against any other mock clock.
//
// Outside monotonic_debug builds it is equivalent to RealClock{}.Now().
func NewMockEpoch() Instant {
	return Instant{source: newMockSource(), ticks: monotime.Now()}
}
