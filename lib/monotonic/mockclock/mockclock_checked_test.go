// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build monotonic_debug

package mockclock

import (
	"testing"

	"github.com/bureau-foundation/monoclock/lib/monotonic"
	"github.com/bureau-foundation/monoclock/lib/testutil"
)

func TestElapsedAcrossMockClocksPanics(t *testing.T) {
	first := New()
	second := New()
	testutil.RequirePanicIs(t, func() { monotonic.Elapsed(second, first.Now()) },
		monotonic.ErrMixedSources, "second clock measuring first clock's instant")
}

func TestElapsedAcrossRealAndMockPanics(t *testing.T) {
	clock := New()
	testutil.RequirePanicIs(t, func() { monotonic.Elapsed(clock, monotonic.RealClock{}.Now()) },
		monotonic.ErrMixedSources, "mock clock measuring a real instant")
	testutil.RequirePanicIs(t, func() { monotonic.Elapsed(monotonic.RealClock{}, clock.Now()) },
		monotonic.ErrMixedSources, "real clock measuring a mock instant")
}

func TestSharedHandleKeepsSource(t *testing.T) {
	clock := New()
	start := clock.Now()
	shared := clock
	shared.Advance(1)
	// Same clock behind both references: no panic.
	if got := monotonic.Elapsed(shared, start); got != 1 {
		t.Fatalf("Elapsed() = %v, want 1ns", got)
	}
}
