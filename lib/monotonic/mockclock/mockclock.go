// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mockclock provides a deterministic monotonic.Clock for tests.
//
// A MockClock starts at a fixed epoch and stands still until Advance is
// called. The *MockClock returned by New is the shared handle: hand it
// to every goroutine and component under test and they all observe the
// same simulated time.
//
//	clock := mockclock.New()
//	limiter := newLimiter(clock)
//	clock.Advance(5 * time.Second)
//
// In monotonic_debug builds every MockClock has its own clock source,
// so measuring an Instant from one MockClock (or from the real clock)
// against another MockClock panics instead of returning garbage.
package mockclock

import (
	"math"
	"sync"
	"time"

	"github.com/bureau-foundation/monoclock/lib/monotonic"
)

// MockClock is a monotonic.Clock whose time advances only when Advance
// is called. It is safe for concurrent use by multiple goroutines and
// must not be copied after first use.
type MockClock struct {
	// epoch is the reading at offset zero. Fixed at construction; it
	// carries this clock's source identity.
	epoch monotonic.Instant

	mu      sync.Mutex
	elapsed time.Duration
}

// New returns a MockClock at offset zero. Each call consumes a fresh
// clock source identity.
func New() *MockClock {
	return &MockClock{epoch: monotonic.NewMockEpoch()}
}

// Now returns the epoch plus all time advanced so far.
func (c *MockClock) Now() monotonic.Instant {
	c.mu.Lock()
	elapsed := c.elapsed
	c.mu.Unlock()
	return c.epoch.Add(elapsed)
}

// Advance moves the clock forward by d. The new time is visible to
// every subsequent Now call from any goroutine. Concurrent Advance
// calls are serialized and none is lost. Panics if d is negative.
func (c *MockClock) Advance(d time.Duration) {
	if d < 0 {
		panic("mockclock: negative duration for Advance")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.elapsed > math.MaxInt64-d {
		panic("mockclock: Advance overflows time.Duration")
	}
	c.elapsed += d
}

// Elapsed returns the total time advanced since construction.
func (c *MockClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}
