package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for all timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a time.Time that marshals as "yyyy-MM-dd HH:mm:ss" in UTC.
// Parsing assumes UTC as well, so a rendered timestamp fed back in resolves
// to the same instant regardless of the server zone.
type DateTime time.Time

// NewDateTime normalizes t to UTC at second precision, matching the wire
// format.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Truncate(time.Second))
}

// Time returns the underlying time value.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// String renders the timestamp in the wire format.
func (d DateTime) String() string {
	return time.Time(d).UTC().Format(DateTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("datetime must be a JSON string: %w", err)
	}
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("datetime must match %q: %w", DateTimeLayout, err)
	}
	*d = DateTime(t)
	return nil
}
