package core

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// MonthKey returns the YYYY-MM bucket of t in t's own location.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// MonthKeyIn returns the YYYY-MM bucket of t as seen from loc. A nil loc
// keeps t's own location.
func MonthKeyIn(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return MonthKey(t)
}

// MonthKeyOf builds the key for a 1-based month and a year.
func MonthKeyOf(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseMonthKey returns the first instant of the month in UTC.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month key %q: %w", key, err)
	}
	return t, nil
}

// StartOfMonth truncates t to midnight of the first day of its month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
