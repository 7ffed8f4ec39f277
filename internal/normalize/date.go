package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate. Slash dates are treated as
// US-style month-first, matching the corpora this tool evaluates.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/06",
	"January 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ordinalSuffixes matches "20th", "1st" etc. so the suffix can be dropped.
var ordinalSuffixes = regexp.MustCompile(`(\d)(st|nd|rd|th)\b`)

// ParseDate parses a calendar date from any of the common human formats.
// Time-of-day components are discarded. Returns the date truncated to
// midnight UTC and whether parsing succeeded.
func ParseDate(s string) (time.Time, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return time.Time{}, false
	}

	// Ordinal suffixes as in "July 20th, 2008".
	cleaned = ordinalSuffixes.ReplaceAllString(cleaned, "$1")

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// SameDate reports whether both strings parse to the same calendar date.
// The second return value is false when either side is unparsable.
func SameDate(a, b string) (equal bool, ok bool) {
	da, okA := ParseDate(a)
	db, okB := ParseDate(b)
	if !okA || !okB {
		return false, false
	}
	return da.Equal(db), true
}
