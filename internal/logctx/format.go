package logctx

import (
	"strings"
	"time"
)

// Stringify full event. Newlines are left to the message creator.
func (event Event) Format() (text string) {
	parts := make([]string, 0, 4)
	if !event.Timestamp.IsZero() {
		parts = append(parts, "["+padTimestamp(event.Timestamp)+"]")
	}
	if len(event.Tags) > 0 {
		parts = append(parts, "["+strings.Join(event.Tags, "/")+"]")
	}
	if event.Severity != "" {
		parts = append(parts, "["+event.Severity+"]")
	}
	if event.Message != "" {
		parts = append(parts, event.Message)
	}
	text = strings.Join(parts, " ")
	return
}

// Ensures fixed length timestamps (nanoseconds always 9 digits)
func padTimestamp(timestamp time.Time) (formatted string) {
	formatted = timestamp.Format(time.RFC3339Nano)

	secs, rest, found := strings.Cut(formatted, ".")
	if !found {
		return
	}

	// Fraction ends where the zone designator starts
	zoneAt := strings.IndexAny(rest, "Z+-")
	if zoneAt < 0 {
		return
	}
	fraction, zone := rest[:zoneAt], rest[zoneAt:]

	if len(fraction) < 9 {
		fraction += strings.Repeat("0", 9-len(fraction)) // RFC3339Nano trims trailing zeros
	}
	formatted = secs + "." + fraction + zone
	return
}
