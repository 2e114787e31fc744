// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package agenda

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/melodymei/agendasheet/models"
)

const minutesPerDay = 24 * 60

// RecomputeTimes derives the displayed start time of every agenda row from
// the meeting start time and the row durations. It is a pure function: the
// input slice is not modified and a new slice is returned with only the Time
// field replaced.
//
// A running clock starts at startTime and walks the rows in order. Each row
// observes the clock before it advances; rows with a non-empty duration then
// advance the clock by their parsed minute count. Display rules:
//
//   - index 0 shows startTime itself; the first row is the user-controlled
//     anchor, not a derived value
//   - SECTION_HEADER rows show no time
//   - every other row shows the pre-advance clock value
//
// Feeding the output back in with the same startTime reproduces the same
// output, so recomputation is safe to run after every edit that can affect
// scheduling.
func RecomputeTimes(startTime string, items []models.AgendaItem) []models.AgendaItem {
	out := make([]models.AgendaItem, len(items))
	clock := startTime

	for i, item := range items {
		rowTime := clock

		// Advance for the NEXT row. Done before display resolution so the
		// second row is offset from the first row's duration.
		if item.Duration != "" {
			clock = addMinutes(clock, ParseDurationMinutes(item.Duration))
		}

		next := item
		switch {
		case i == 0:
			next.Time = startTime
		case item.Type == models.TypeSectionHeader:
			next.Time = ""
		default:
			next.Time = rowTime
		}
		out[i] = next
	}

	return out
}

// addMinutes advances an HH:MM clock value by a minute count, rolling over
// on the 24-hour boundary. No date crossing is tracked. The sum is truncated
// to whole minutes, so the clock stays minute-quantized at every step; an
// empty clock stays empty and an unparseable clock is returned unchanged.
func addMinutes(clock string, minutes float64) string {
	if clock == "" {
		return ""
	}

	hours, mins, ok := splitClock(clock)
	if !ok {
		return clock
	}

	total := hours*60 + int(float64(mins)+minutes)
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// splitClock parses "HH:MM" into hour and minute components.
func splitClock(clock string) (hours, mins int, ok bool) {
	sep := strings.IndexByte(clock, ':')
	if sep < 0 {
		return 0, 0, false
	}

	hours, errH := strconv.Atoi(strings.TrimSpace(clock[:sep]))
	mins, errM := strconv.Atoi(strings.TrimSpace(clock[sep+1:]))
	if errH != nil || errM != nil {
		return 0, 0, false
	}

	return hours, mins, true
}
