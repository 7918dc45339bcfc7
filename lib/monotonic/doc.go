// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package monotonic provides an injectable monotonic time source for
// measuring elapsed durations without touching wall-clock time.
//
// Production code holds a [Clock] and captures [Instant] values with
// Now. In production the clock is a [RealClock]; in tests it is a
// mockclock.MockClock that advances only when told to:
//
//	type Poller struct {
//	    clock monotonic.Clock
//	    lastPoll monotonic.Instant
//	}
//
//	func (p *Poller) due(interval time.Duration) bool {
//	    return monotonic.Elapsed(p.clock, p.lastPoll) >= interval
//	}
//
// # Clock sources
//
// An Instant is only meaningful relative to other Instants from the
// same clock. Subtracting an Instant produced by one MockClock from an
// Instant produced by another (or by the RealClock) yields a number
// with no meaning, and nothing in the type system prevents it.
//
// Building with the monotonic_debug tag attaches a source tag to every
// Instant and makes every elapsed-time computation assert that both
// operands carry the same tag:
//
//	go test -tags monotonic_debug ./...
//
// A mismatch panics with an error wrapping [ErrMixedSources]. Without
// the tag the source field is an empty struct, the checks compile to
// nothing, and mixing sources goes undetected.
//
// # Shared clocks
//
// Pointers are the shared handle. RealClock implements Clock with a
// value receiver, so both RealClock and *RealClock satisfy the
// interface; a *MockClock may be handed to any number of goroutines,
// all of which observe the same simulated time. Code generic over
// C Clock, like [Stopwatch], accepts any of them.
package monotonic
