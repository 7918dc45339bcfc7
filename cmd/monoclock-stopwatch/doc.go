// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Monoclock-stopwatch runs a command one or more times and reports how
// long each run took, measured on the monotonic clock. Wall-clock
// adjustments during a run (NTP slews, manual date changes) do not
// affect the reported durations.
//
//	monoclock-stopwatch --repeat 5 --format yaml -- make test
//
// The report lists every run's duration plus the total, minimum,
// maximum, and mean. It stops at the first run that fails and exits
// non-zero.
package main
