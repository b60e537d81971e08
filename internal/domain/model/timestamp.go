package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is the JSON input form of calendar fields. A date-only value is
// normalized to midnight UTC of that day, anything carrying a time of day is
// kept as sent.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// StartOfDay returns midnight UTC of the calendar day of t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TruncateToStore drops precision the document store cannot keep, so a
// record reads back exactly as it was written.
func TruncateToStore(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}

// ParseTimestamp accepts a date-only value or a date with time of day.
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return StartOfDay(t), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date or datetime %q", value)
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return ts.Time.MarshalJSON()
}
