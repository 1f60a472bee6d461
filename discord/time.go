package discord

import (
	"time"
)

// ParseTimestamp converts the gateway's ISO-8601 timestamp into epoch
// seconds. Absent or unparseable input yields 0, which callers read as
// "never happened" (e.g. a message that was never edited).
func ParseTimestamp(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// FormatTimestamp is the encode-side inverse of ParseTimestamp. Zero maps to
// the empty string so that unset timestamps are omitted from built JSON.
func FormatTimestamp(epoch int64) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(epoch, 0).UTC().Format(time.RFC3339)
}
