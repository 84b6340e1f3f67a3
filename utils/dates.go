package utils

import (
	"fmt"
	"time"
)

// Accepted wire formats for job dates. The date-only form comes from the
// edit screen, the others from datetime pickers and API clients.
var jobDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseJobDate parses an ISO-8601 job date in local time. An unparseable
// date is an error; callers must reject it rather than guess.
func ParseJobDate(s string) (time.Time, error) {
	for _, layout := range jobDateFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid job date %q", s)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthLabel renders the revenue grouping label, e.g. "May 2025".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}
