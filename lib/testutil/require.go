// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
	"time"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireReceive reads one value from ch within timeout, or fails the
// test.
//
//	elapsed := testutil.RequireReceive(t, observed, 5*time.Second, "reader round %d", round)
func RequireReceive[T any](t TB, ch <-chan T, timeout time.Duration, msgAndArgs ...any) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed without sending a value: %s", formatMessage(msgAndArgs))
		}
		return v
	case <-time.After(timeout):
		t.Fatalf("timed out after %v: %s", timeout, formatMessage(msgAndArgs))
	}
	panic("unreachable")
}

// RequireSend sends v on ch within timeout, or fails the test.
func RequireSend[T any](t TB, ch chan<- T, v T, timeout time.Duration, msgAndArgs ...any) {
	t.Helper()
	select {
	case ch <- v:
	case <-time.After(timeout):
		t.Fatalf("timed out after %v: %s", timeout, formatMessage(msgAndArgs))
	}
}

// RequireClosed waits for ch to be closed (or receive a value) within
// timeout, or fails the test.
func RequireClosed(t TB, ch <-chan struct{}, timeout time.Duration, msgAndArgs ...any) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatalf("timed out after %v waiting for channel close: %s", timeout, formatMessage(msgAndArgs))
	}
}

// RequirePanic calls fn and returns the value it panicked with, or
// fails the test if fn returns normally.
//
//	recovered := testutil.RequirePanic(t, func() { later.DurationSince(earlier) }, "underflow")
func RequirePanic(t TB, fn func(), msgAndArgs ...any) (recovered any) {
	t.Helper()
	panicked := true
	func() {
		defer func() { recovered = recover() }()
		fn()
		panicked = false
	}()
	if !panicked {
		t.Fatalf("expected panic: %s", formatMessage(msgAndArgs))
	}
	return recovered
}

// RequirePanicIs calls fn and fails the test unless it panics with an
// error matching target under errors.Is.
func RequirePanicIs(t TB, fn func(), target error, msgAndArgs ...any) {
	t.Helper()
	recovered := RequirePanic(t, fn, msgAndArgs...)
	err, ok := recovered.(error)
	if !ok {
		t.Fatalf("panic value %v (%T) is not an error: %s", recovered, recovered, formatMessage(msgAndArgs))
	}
	if !errors.Is(err, target) {
		t.Fatalf("panic error %v does not match %v: %s", err, target, formatMessage(msgAndArgs))
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single value or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
