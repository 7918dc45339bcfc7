// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mockclock

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/bureau-foundation/monoclock/lib/monotonic"
	"github.com/bureau-foundation/monoclock/lib/testutil"
)

func TestMockClockStandsStill(t *testing.T) {
	clock := New()
	start := clock.Now()
	for i := 0; i < 3; i++ {
		if got := clock.Now(); got != start {
			t.Fatalf("Now() = %v without Advance, want %v", got, start)
		}
	}
	if got := clock.Now().DurationSince(start); got != 0 {
		t.Fatalf("Now() - start = %v, want 0", got)
	}
}

func TestMockClockAdvance(t *testing.T) {
	clock := New()
	start := clock.Now()

	clock.Advance(3 * time.Second)
	clock.Advance(250 * time.Millisecond)

	want := 3250 * time.Millisecond
	if got := monotonic.Elapsed(clock, start); got != want {
		t.Fatalf("Elapsed() = %v, want %v", got, want)
	}
	if got := clock.Elapsed(); got != want {
		t.Fatalf("clock.Elapsed() = %v, want %v", got, want)
	}
	if got := clock.Now(); got != start.Add(want) {
		t.Fatalf("Now() = %v, want %v", got, start.Add(want))
	}
}

func TestMockClockAdvanceZero(t *testing.T) {
	clock := New()
	start := clock.Now()
	clock.Advance(0)
	if got := clock.Now(); got != start {
		t.Fatalf("Now() after Advance(0) = %v, want %v", got, start)
	}
}

func TestMockClockAdvanceNegativePanics(t *testing.T) {
	clock := New()
	clock.Advance(time.Second)
	testutil.RequirePanic(t, func() { clock.Advance(-time.Nanosecond) }, "Advance(-1ns)")
	if got := clock.Elapsed(); got != time.Second {
		t.Fatalf("Elapsed() after rejected Advance = %v, want 1s", got)
	}
}

func TestMockClockAdvanceOverflowPanics(t *testing.T) {
	clock := New()
	clock.Advance(math.MaxInt64)
	testutil.RequirePanic(t, func() { clock.Advance(1) }, "Advance past MaxInt64")
	if got := clock.Elapsed(); got != math.MaxInt64 {
		t.Fatalf("Elapsed() after rejected Advance = %v, want MaxInt64", got)
	}
}

func TestMockClockConcurrentAdvance(t *testing.T) {
	clock := New()
	start := clock.Now()

	const goroutines = 10
	const advancesPerGoroutine = 1000

	var wg sync.WaitGroup
	wg.Add(2 * goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < advancesPerGoroutine; j++ {
				clock.Advance(time.Nanosecond)
			}
		}()
		go func() {
			defer wg.Done()
			previous := clock.Now()
			for j := 0; j < advancesPerGoroutine; j++ {
				now := clock.Now()
				if now.Before(previous) {
					t.Errorf("Now() went backwards: %v then %v", previous, now)
					return
				}
				previous = now
			}
		}()
	}
	wg.Wait()

	want := time.Duration(goroutines*advancesPerGoroutine) * time.Nanosecond
	if got := monotonic.Elapsed(clock, start); got != want {
		t.Fatalf("Elapsed() = %v, want %v", got, want)
	}
}

// TestMockClockHandshake drives a reader goroutine in lockstep with the
// test: the reader reports elapsed time on a shared handle, and the test
// moves the clock one second forward after every third report.
func TestMockClockHandshake(t *testing.T) {
	clock := New()
	const rounds = 12
	const readsPerAdvance = 3
	const timeout = 5 * time.Second

	observed := make(chan time.Duration)
	proceed := make(chan struct{})
	finished := make(chan struct{})
	// Closed when the test ends so a reader left blocked by an early
	// t.Fatalf exits instead of leaking.
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	go func() {
		defer close(finished)
		stopwatch := monotonic.NewStopwatch(clock)
		for round := 0; round < rounds; round++ {
			select {
			case observed <- stopwatch.Elapsed():
			case <-done:
				return
			}
			select {
			case <-proceed:
			case <-done:
				return
			}
		}
	}()

	for round := 0; round < rounds; round++ {
		elapsed := testutil.RequireReceive(t, observed, timeout, "reader round %d", round)
		want := time.Duration(round/readsPerAdvance) * time.Second
		if elapsed != want {
			t.Fatalf("round %d: elapsed = %v, want %v", round, elapsed, want)
		}
		if round%readsPerAdvance == readsPerAdvance-1 {
			clock.Advance(time.Second)
		}
		testutil.RequireSend(t, proceed, struct{}{}, timeout, "releasing reader round %d", round)
	}

	testutil.RequireClosed(t, finished, timeout, "reader exit")
	want := rounds / readsPerAdvance * time.Second
	if got := clock.Elapsed(); got != want {
		t.Fatalf("Elapsed() = %v, want %v", got, want)
	}
}
