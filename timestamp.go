package gostix

import "time"

// timestampLayout is the canonical zero-offset wire layout with millisecond
// precision. Lexical order on this layout matches time order.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp carries an RFC 3339 string verbatim. Decode and encode are
// identity pass-through: the engine never reformats the text, so
// non-canonical input survives a round trip unchanged and only fails if a
// caller later asks for Time().
type Timestamp string

// TimestampFrom formats t in the canonical layout (UTC, millisecond
// precision).
func TimestampFrom(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(timestampLayout))
}

// Now returns the current instant in the canonical layout.
func Now() Timestamp { return TimestampFrom(time.Now()) }

// Time parses the carried text. RFC3339Nano is tried first, then RFC3339.
func (ts Timestamp) Time() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, string(ts)); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, string(ts))
}

// String returns the carried text unchanged.
func (ts Timestamp) String() string { return string(ts) }

// IsZero reports whether the Timestamp is empty.
func (ts Timestamp) IsZero() bool { return ts == "" }

// Before compares lexically, which matches temporal order for canonical
// fixed-width UTC timestamps.
func (ts Timestamp) Before(other Timestamp) bool { return ts < other }

// After compares lexically in the other direction.
func (ts Timestamp) After(other Timestamp) bool { return ts > other }
