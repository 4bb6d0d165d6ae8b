package mensafeed

import (
	"regexp"
	"time"
)

// yearRangePattern matches the week range printed on the menu page,
// e.g. "12.5.2025 - 16.5.2025".
var yearRangePattern = regexp.MustCompile(`(\d{1,2}\.\d{1,2}\.\d{4})\s*-\s*(\d{1,2}\.\d{1,2}\.\d{4})`)

// InferYear returns the year of the first week-range date found in text.
// Day headers on the page carry day and month but no year; the inferred
// year completes them uniformly for the whole run. When no range is found
// or the matched date does not parse, the year of now is returned.
func InferYear(text string, now time.Time) int {
	m := yearRangePattern.FindStringSubmatch(text)
	if m == nil {
		return now.Year()
	}
	t, err := time.Parse("2.1.2006", m[1])
	if err != nil {
		return now.Year()
	}
	return t.Year()
}
