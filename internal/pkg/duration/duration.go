// Package duration converts between "HH:MM" clock strings and minute counts.
// All attendance fields (presence, retard, entry/exit times) travel as "HH:MM".
package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMinutes converts an "HH:MM" string to minutes. Empty, blank, or
// unparseable input yields 0. This lenient default is intentional: legacy
// records carry empty duration fields and must aggregate as zero, not fail.
// Use ParseMinutesStrict at input boundaries where malformed data should be
// rejected instead.
func ParseMinutes(s string) int {
	m, err := ParseMinutesStrict(s)
	if err != nil {
		return 0
	}
	return m
}

// ParseMinutesStrict converts an "HH:MM" string to minutes, returning an
// error for anything that is not two colon-separated non-negative integers.
// Empty input is not an error and parses to 0.
func ParseMinutesStrict(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid duration %q: expected HH:MM", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if hours < 0 || minutes < 0 {
		return 0, fmt.Errorf("invalid duration %q: negative component", s)
	}

	return hours*60 + minutes, nil
}

// Elapsed returns exit minus entry in minutes, both given as same-day clock
// times. Shifts crossing midnight are not supported at this layer; callers
// treat a non-positive result as "did not work".
func Elapsed(entry, exit string) int {
	return ParseMinutes(exit) - ParseMinutes(entry)
}

// Format renders a minute count as zero-padded "HH:MM". Negative input is
// clamped to 0.
func Format(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
