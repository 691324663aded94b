// Package recency filters records down to a recent-funding window. Dates
// travel through the pipeline as raw extracted strings; this is the one
// place that re-parses them.
package recency

import (
	"sort"
	"time"

	"LeadScanner/internal/domain"
)

// dateFormats is tried in order; the first successful parse wins.
var dateFormats = []string{
	"2006-01-02",
	"January 2, 2006",
	"02/01/2006",
}

// ParseDate parses an extracted date string against the known formats.
// The second return is false when no format matches.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Filter keeps records whose Date parses and falls within the last days
// days of now, sorted most recent first. Records with an empty or
// unparseable date are excluded. days <= 0 disables the filter and
// returns the input unchanged.
func Filter(records []domain.Record, days int, now time.Time) []domain.Record {
	if days <= 0 {
		return records
	}

	cutoff := now.AddDate(0, 0, -days)

	type dated struct {
		rec  domain.Record
		when time.Time
	}

	var kept []dated
	for _, rec := range records {
		when, ok := ParseDate(rec.Date)
		if !ok || when.Before(cutoff) {
			continue
		}
		kept = append(kept, dated{rec: rec, when: when})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].when.After(kept[j].when)
	})

	out := make([]domain.Record, 0, len(kept))
	for _, d := range kept {
		out = append(out, d.rec)
	}
	return out
}
