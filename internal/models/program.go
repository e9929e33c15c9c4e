package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgramTemplate is an athlete-agnostic, date-free workout plan. Templates
// are copied into Programs on assignment, never linked, so editing a
// template after the fact cannot change an athlete's running program.
type ProgramTemplate struct {
	ID          uuid.UUID         `json:"id"`
	UserID      int               `json:"userId"`
	ProgramName string            `json:"programName"`
	WeekCount   int               `json:"weekCount"`
	RepTargets  map[string]string `json:"repTargets,omitempty"`
	WeekTotals  []float64         `json:"weekTotals,omitempty"`
	Weeks       []Week            `json:"weeks"`
	CreatedAt   time.Time         `json:"createdAt,omitzero"`
	UpdatedAt   time.Time         `json:"updatedAt,omitzero"`
}

// Program is a template bound to one athlete and one calendar start date.
// It carries the athlete's completion state; the source template is never
// mutated through it.
type Program struct {
	ID          uuid.UUID         `json:"id"`
	UserID      int               `json:"userId"`
	AthleteName string            `json:"athleteName"`
	ProgramName string            `json:"programName"`
	StartDate   ISODate           `json:"startDate"`
	WeekCount   int               `json:"weekCount"`
	RepTargets  map[string]string `json:"repTargets,omitempty"`
	WeekTotals  []float64         `json:"weekTotals,omitempty"`
	Weeks       []Week            `json:"weeks"`
	CreatedAt   time.Time         `json:"createdAt,omitzero"`
	UpdatedAt   time.Time         `json:"updatedAt,omitzero"`
}

// Week is an ordered container of Days. WeekNumber is 1-based and unique
// within a program.
type Week struct {
	WeekNumber int   `json:"weekNumber"`
	Days       []Day `json:"days"`
}

// Day is one training session. Rating and CompletedAt are only meaningful
// when Completed is true; the model does not enforce that, callers must.
type Day struct {
	DayNumber   int        `json:"dayNumber"`
	DayLabel    string     `json:"dayLabel,omitempty"`
	Completed   bool       `json:"completed"`
	Rating      DayRating  `json:"rating,omitempty"`
	Intensity   *float64   `json:"intensity,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Exercises   []Exercise `json:"exercises"`
}

// Exercise is one prescribed movement within a Day, exclusively owned by it.
type Exercise struct {
	ExerciseNumber  int         `json:"exerciseNumber"`
	Name            string      `json:"name"`
	Category        string      `json:"category,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	SupersetGroup   string      `json:"supersetGroup,omitempty"`
	SupersetOrder   int         `json:"supersetOrder,omitempty"`
	Sets            int         `json:"sets"`
	Reps            FlexStrings `json:"reps,omitzero"`
	Weight          FlexFloats  `json:"weight,omitzero"`
	Percent         FlexFloats  `json:"percent,omitzero"`
	SetStatus       []SetStatus `json:"setStatus,omitempty"`
	Completed       bool        `json:"completed"`
	AthleteComments string      `json:"athleteComments,omitempty"`
}

// Clone returns a deep copy of the week and everything under it.
func (w Week) Clone() Week {
	out := Week{WeekNumber: w.WeekNumber}
	if w.Days != nil {
		out.Days = make([]Day, len(w.Days))
		for i, d := range w.Days {
			out.Days[i] = d.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the day and its exercises.
func (d Day) Clone() Day {
	out := d
	if d.Intensity != nil {
		v := *d.Intensity
		out.Intensity = &v
	}
	if d.CompletedAt != nil {
		t := *d.CompletedAt
		out.CompletedAt = &t
	}
	if d.Exercises != nil {
		out.Exercises = make([]Exercise, len(d.Exercises))
		for i, e := range d.Exercises {
			out.Exercises[i] = e.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the exercise.
func (e Exercise) Clone() Exercise {
	out := e
	out.Reps = e.Reps.Clone()
	out.Weight = e.Weight.Clone()
	out.Percent = e.Percent.Clone()
	if e.SetStatus != nil {
		out.SetStatus = append([]SetStatus(nil), e.SetStatus...)
	}
	return out
}
