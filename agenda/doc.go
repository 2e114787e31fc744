// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package agenda implements the schedule core: duration parsing, start-time
accumulation, and the ordered-list edit operations.

Everything here is pure. Functions take an agenda row slice and return a new
slice; input slices are never mutated. The sheet package owns sequencing
(which edits require a recompute pass) and the handlers own the HTTP mapping.

# Duration Parsing

Durations are free-form text. The first numeric token wins; anything without
one counts as zero minutes:

	agenda.ParseDurationMinutes("15m")  // 15
	agenda.ParseDurationMinutes("~10")  // 10
	agenda.ParseDurationMinutes("1.5m") // 1.5
	agenda.ParseDurationMinutes("TBD")  // 0

# Time Accumulation

RecomputeTimes walks the rows with a running clock seeded from the meeting
start time:

	items = agenda.RecomputeTimes("07:30", items)

The first row always shows the start time itself, section headers show no
time, and every other row shows the accumulated clock. The function is
idempotent, so callers run it unconditionally after any scheduling edit.

# Edit Operations

UpdateField, MoveItem, DeleteItem and AddItem preserve the relative order of
unaffected rows. Boundary moves are defined no-ops; out-of-range indices are
rejected with ErrIndexOutOfRange rather than silently ignored.
*/
package agenda
