package models

import "fmt"

// DayRating is an athlete's subjective rating of a completed session.
// The zero value means "not rated".
type DayRating string

const (
	RatingNone         DayRating = ""
	RatingTrash        DayRating = "Trash"
	RatingBelowAverage DayRating = "Below Average"
	RatingAverage      DayRating = "Average"
	RatingAboveAverage DayRating = "Above Average"
	RatingCrushingIt   DayRating = "Crushing It"
)

// ParseDayRating validates a rating string. The empty string is valid and
// means "not rated".
func ParseDayRating(s string) (DayRating, error) {
	switch DayRating(s) {
	case RatingNone, RatingTrash, RatingBelowAverage, RatingAverage,
		RatingAboveAverage, RatingCrushingIt:
		return DayRating(s), nil
	}
	return RatingNone, fmt.Errorf("unknown day rating %q", s)
}

// SetStatus tracks the outcome of one prescribed set.
type SetStatus string

const (
	SetPending  SetStatus = "pending"
	SetComplete SetStatus = "complete"
	SetMiss     SetStatus = "miss"
)

// ParseSetStatus validates a per-set status string.
func ParseSetStatus(s string) (SetStatus, error) {
	switch SetStatus(s) {
	case SetPending, SetComplete, SetMiss:
		return SetStatus(s), nil
	}
	return "", fmt.Errorf("unknown set status %q", s)
}
