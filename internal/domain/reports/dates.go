package reports

import "time"

// dateLayouts are tried in order when parsing business-date strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// resolveDate parses an ISO-8601-ish business date permissively. A malformed
// or empty date falls back to the record's creation timestamp, then to now.
// A bad date degrades one record's placement, never the whole report.
func resolveDate(raw string, createdAt, now time.Time) time.Time {
	if raw != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	if !createdAt.IsZero() {
		return createdAt
	}
	return now
}
