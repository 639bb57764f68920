package domain

import "time"

// DateTimeLayout is the wire format for every timestamp in the API.
const DateTimeLayout = "2006-01-02 15:04:05"

// FormatDateTime renders t in DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses s in DateTimeLayout using the local time zone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, s, time.Local)
}
