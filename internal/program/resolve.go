// Package program holds the pure program-lifecycle logic: turning a
// date-free template into a dated, athlete-bound instance, and resolving
// which training day of an instance falls on a given calendar date.
package program

import (
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// Resolver maps calendar dates to training days within a program instance.
// The zero value skips days whose label is not a recognized weekday name;
// set StrictLabels to reject them with an error instead.
type Resolver struct {
	StrictLabels bool
}

// TrainingDay is a resolved (week, day) pair. Both pointers reference the
// program passed to Resolve.
type TrainingDay struct {
	Week *models.Week `json:"week"`
	Day  *models.Day  `json:"day"`
}

// ScheduledDate computes the calendar date on which a day falls, given the
// program start date, the day's 1-based week number, and its weekday.
// The day offset is computed modulo 7 from the start date's weekday, so it
// is always in [0,6]: week 1 holds the first occurrence of each weekday on
// or after the start date.
func ScheduledDate(start models.ISODate, weekNumber int, weekday time.Weekday) models.ISODate {
	dayOffset := (int(weekday) - int(start.Weekday()) + 7) % 7
	weekOffset := (weekNumber - 1) * 7
	return start.AddDays(weekOffset + dayOffset)
}

// Resolve returns the training day scheduled on the target date, or nil if
// no day falls on it. Time of day on target is ignored.
//
// Weeks and days are scanned in slice order and the first match wins, which
// makes resolution deterministic even if two days in a week carry the same
// label (a data-entry error upstream).
func (r Resolver) Resolve(p *models.Program, target time.Time) (*TrainingDay, error) {
	for wi := range p.Weeks {
		week := &p.Weeks[wi]
		for di := range week.Days {
			day := &week.Days[di]
			weekday, ok := models.ParseWeekday(day.DayLabel)
			if !ok {
				if r.StrictLabels {
					return nil, fmt.Errorf("week %d day %d: unrecognized day label %q",
						week.WeekNumber, day.DayNumber, day.DayLabel)
				}
				continue
			}
			if ScheduledDate(p.StartDate, week.WeekNumber, weekday).SameDay(target) {
				return &TrainingDay{Week: week, Day: day}, nil
			}
		}
	}
	return nil, nil
}
