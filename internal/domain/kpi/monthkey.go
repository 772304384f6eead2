package kpi

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the canonical string form of a month key.
const MonthKeyLayout = "2006-01-02"

// MonthKeyFor derives the canonical first-of-month key bucketing any date.
// Keys are always midnight UTC so that equal months compare equal regardless
// of the zone the input carried.
func MonthKeyFor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonthKey accepts "YYYY-MM" or "YYYY-MM-DD" and returns the month key
// of the named month.
func ParseMonthKey(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthKeyFor(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM or YYYY-MM-DD", ErrInvalidMonthKey, s)
}

// FormatMonthKey renders a month key as "YYYY-MM-01".
func FormatMonthKey(t time.Time) string {
	return MonthKeyFor(t).Format(MonthKeyLayout)
}
