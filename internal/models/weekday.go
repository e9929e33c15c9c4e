package models

import (
	"strings"
	"time"
)

// weekdayMap maps lowercased day labels to time.Weekday
// (Sunday=0 .. Saturday=6). Only full English weekday names are
// recognized; anything else is not a schedulable label.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a day label ("Monday", "monday", " Monday ") to its
// weekday number. Returns the weekday and true if recognized, or
// time.Sunday and false if the label is empty or unknown.
func ParseWeekday(label string) (time.Weekday, bool) {
	wd, ok := weekdayMap[strings.ToLower(strings.TrimSpace(label))]
	return wd, ok
}
