// Package timeparse resolves heterogeneous ledger date strings into UTC instants.
package timeparse

import (
	"time"
)

// Layouts tried in order. Offsetless layouts are coerced to UTC: the ledgers
// treat an absent offset as UTC, not local time.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05-0700",
	"2006-01-02",
}

// Resolve parses primary, falling back to fallback when primary is empty.
// It accepts ISO-8601 with a Z suffix, with a numeric offset, without an
// offset (assumed UTC), and bare dates. The boolean reports whether an
// instant was resolved; callers must treat a false result as "sorts as
// earliest possible", never as an error.
func Resolve(primary, fallback string) (time.Time, bool) {
	raw := primary
	if raw == "" {
		raw = fallback
	}
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return t.UTC(), true
	}
	return time.Time{}, false
}

// Latest returns the later of two resolved instants, treating an unresolved
// side as absent. ok reports whether either side was resolved.
func Latest(a time.Time, aOK bool, b time.Time, bOK bool) (time.Time, bool) {
	switch {
	case aOK && bOK:
		if b.After(a) {
			return b, true
		}
		return a, true
	case aOK:
		return a, true
	case bOK:
		return b, true
	default:
		return time.Time{}, false
	}
}
