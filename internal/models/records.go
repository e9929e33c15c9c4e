package models

import (
	"time"

	"github.com/google/uuid"
)

// PRKey is the composite natural key for a personal record: at most one
// record exists per key at any time.
type PRKey struct {
	UserID       int    `json:"userId"`
	AthleteName  string `json:"athleteName"`
	ExerciseName string `json:"exerciseName"`
	RepMax       int    `json:"repMax"`
}

// PersonalRecord is an athlete's best lift for an exercise at a rep count
// (1RM, 3RM, ...).
type PersonalRecord struct {
	ID           uuid.UUID `json:"id"`
	UserID       int       `json:"userId"`
	AthleteName  string    `json:"athleteName"`
	ExerciseName string    `json:"exerciseName"`
	RepMax       int       `json:"repMax"`
	Weight       float64   `json:"weight"`
	RecordedAt   time.Time `json:"recordedAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// Key returns the record's composite natural key.
func (r PersonalRecord) Key() PRKey {
	return PRKey{
		UserID:       r.UserID,
		AthleteName:  r.AthleteName,
		ExerciseName: r.ExerciseName,
		RepMax:       r.RepMax,
	}
}

// CompletionKey addresses one program day's completion state.
type CompletionKey struct {
	UserID      int    `json:"userId"`
	AthleteName string `json:"athleteName"`
	ProgramName string `json:"programName"`
	StartDate   string `json:"startDate"` // ISO date of the program instance
	WeekNumber  int    `json:"weekNumber"`
	DayNumber   int    `json:"dayNumber"`
}

// ProgramDayCompletion records completion state for one day of one program
// instance. Repeated client submissions upsert against the same key.
type ProgramDayCompletion struct {
	ID          uuid.UUID  `json:"id"`
	UserID      int        `json:"userId"`
	AthleteName string     `json:"athleteName"`
	ProgramName string     `json:"programName"`
	StartDate   ISODate    `json:"startDate"`
	WeekNumber  int        `json:"weekNumber"`
	DayNumber   int        `json:"dayNumber"`
	Completed   bool       `json:"completed"`
	Rating      DayRating  `json:"rating,omitempty"`
	Intensity   *float64   `json:"intensity,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitzero"`
}

// Key returns the completion's composite natural key.
func (c ProgramDayCompletion) Key() CompletionKey {
	return CompletionKey{
		UserID:      c.UserID,
		AthleteName: c.AthleteName,
		ProgramName: c.ProgramName,
		StartDate:   c.StartDate.String(),
		WeekNumber:  c.WeekNumber,
		DayNumber:   c.DayNumber,
	}
}

// LibraryExercise is an entry in a user's exercise library. Names are
// unique per user; creating a duplicate is rejected, not overwritten.
type LibraryExercise struct {
	ID        uuid.UUID `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
