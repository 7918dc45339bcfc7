// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for monoclock packages.
//
// [RequireReceive], [RequireSend], and [RequireClosed] wrap the
// timeout safety valve pattern (select with a real-time fallback) so
// that goroutine handshakes in mock clock tests cannot hang the test
// binary. They are the only place in the test suite where wall-clock
// timeouts appear.
//
// [RequirePanic] and [RequirePanicIs] run a function that must panic
// and return or match the recovered value. The monotonic package
// reports programming errors (mixed clock sources, underflow) by
// panicking, so most negative tests go through these.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no monoclock-internal dependencies.
package testutil
