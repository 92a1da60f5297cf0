package sqlite

import (
	"time"
)

// DateLayout is the storage layout for calendar dates. It sorts
// lexicographically in date order, so range predicates compare strings.
const DateLayout = "2006-01-02"

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatDateForDB drops the clock part of t.
func FormatDateForDB(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtrForDB formats a *time.Time as a date, returning nil if the pointer is nil
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatDateForDB(*t)
}

// ParseDateFromDB parses a stored calendar date as midnight UTC.
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
