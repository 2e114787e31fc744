// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package agenda

import (
	"regexp"
	"strconv"
)

// durationToken matches the first contiguous numeric token in free-form
// duration text: digits with at most one decimal point, leading-dot allowed.
var durationToken = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)

// ParseDurationMinutes extracts a minute count from free-form duration text
// such as "15m", "7", "1.5m" or "~10". Text without a numeric token ("",
// "TBD", "...") yields 0: absence of a number is a defined zero-duration
// result, never an error. This keeps annotations like "~10m" usable as
// timing input.
func ParseDurationMinutes(text string) float64 {
	token := durationToken.FindString(text)
	if token == "" {
		return 0
	}

	minutes, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return minutes
}
