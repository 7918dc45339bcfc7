// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !monotonic_debug

package monotonic

// SourceChecks reports whether this build tags Instants with their
// clock source and asserts on cross-source arithmetic.
const SourceChecks = false

// source is empty outside monotonic_debug builds. As the first field of
// Instant it occupies no memory, and its methods inline to nothing.
type source struct{}

func realSource() source { return source{} }

func newMockSource() source { return source{} }

func (source) compare(source) int { return 0 }

func (source) mustMatch(source) {}

func (source) suffix() string { return "" }
