// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build monotonic_debug

package monotonic

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// SourceChecks reports whether this build tags Instants with their
// clock source and asserts on cross-source arithmetic.
const SourceChecks = true

// nextMockSource hands out mock clock identities. Only uniqueness
// matters, so the counter is never reset and imposes no ordering on
// surrounding memory operations.
var nextMockSource atomic.Uint64

// source identifies the clock that produced an Instant. The zero value
// is the real clock.
type source struct {
	mock bool
	id   uint64
}

func realSource() source { return source{} }

func newMockSource() source {
	return source{mock: true, id: nextMockSource.Add(1) - 1}
}

func (s source) String() string {
	if !s.mock {
		return "real"
	}
	return "mock#" + strconv.FormatUint(s.id, 10)
}

// compare orders the real source before every mock source, and mock
// sources by identity.
func (s source) compare(other source) int {
	switch {
	case s.mock != other.mock:
		if s.mock {
			return 1
		}
		return -1
	case s.id < other.id:
		return -1
	case s.id > other.id:
		return 1
	}
	return 0
}

// mustMatch panics when other was produced by a different clock.
func (s source) mustMatch(other source) {
	if s != other {
		panic(fmt.Errorf("%w: %s and %s", ErrMixedSources, s, other))
	}
}

func (s source) suffix() string { return "@" + s.String() }
