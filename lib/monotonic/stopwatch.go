// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package monotonic

import "time"

// Stopwatch measures time elapsed on a clock since a start Instant. The
// clock type is a parameter so that a RealClock value and a shared
// *mockclock.MockClock handle are interchangeable without an interface
// conversion.
//
// A Stopwatch is not safe for concurrent Restart calls; concurrent
// Elapsed calls are safe whenever the clock's Now is.
type Stopwatch[C Clock] struct {
	clock C
	start Instant
}

// NewStopwatch returns a Stopwatch started at clock.Now().
func NewStopwatch[C Clock](clock C) *Stopwatch[C] {
	return &Stopwatch[C]{clock: clock, start: clock.Now()}
}

// Clock returns the clock the Stopwatch reads.
func (s *Stopwatch[C]) Clock() C { return s.clock }

// Start returns the Instant the Stopwatch was last started at.
func (s *Stopwatch[C]) Start() Instant { return s.start }

// Elapsed returns the time since the last start.
func (s *Stopwatch[C]) Elapsed() time.Duration {
	return Elapsed(s.clock, s.start)
}

// Restart moves the start to the current reading and returns the lap:
// the time between the previous start and the new one.
func (s *Stopwatch[C]) Restart() time.Duration {
	now := s.clock.Now()
	lap := now.DurationSince(s.start)
	s.start = now
	return lap
}
