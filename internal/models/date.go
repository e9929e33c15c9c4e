package models

import (
	"fmt"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

// ISODate is a calendar date without a time component. It marshals as
// "YYYY-MM-DD" and compares by calendar day, so documents round-trip the
// start date exactly regardless of time zone handling upstream.
type ISODate struct {
	time.Time
}

// NewISODate builds an ISODate from year, month, day in UTC.
func NewISODate(year int, month time.Month, day int) ISODate {
	return ISODate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar date in UTC.
func DateOf(t time.Time) ISODate {
	return NewISODate(t.Year(), t.Month(), t.Day())
}

// ParseISODate parses a "YYYY-MM-DD" string.
func ParseISODate(s string) (ISODate, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return ISODate{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return ISODate{t}, nil
}

// String returns the date in "YYYY-MM-DD" form.
func (d ISODate) String() string {
	return d.Format(isoDateLayout)
}

// AddDays returns the date n calendar days later.
func (d ISODate) AddDays(n int) ISODate {
	return ISODate{d.Time.AddDate(0, 0, n)}
}

// SameDay reports whether t falls on this calendar date, ignoring
// time of day.
func (d ISODate) SameDay(t time.Time) bool {
	return d.Year() == t.Year() && d.Month() == t.Month() && d.Day() == t.Day()
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d ISODate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a "YYYY-MM-DD" string.
func (d *ISODate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = ISODate{}
		return nil
	}
	parsed, err := ParseISODate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
