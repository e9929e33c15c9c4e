package program

import (
	"time"

	"github.com/claude/liftlog/internal/models"
)

// Materialize binds a template to one athlete and one start date, producing
// a fresh Program instance. The template's weeks are deep-copied down to
// the exercise level and every completion-related field is reset: the
// template is never mutated and the instance shares no memory with it.
//
// nameOverride, when non-empty, replaces the template's program name on the
// instance. The caller assigns the instance ID and persists it.
func Materialize(tpl *models.ProgramTemplate, athleteName string, startDate models.ISODate, nameOverride string) *models.Program {
	name := tpl.ProgramName
	if nameOverride != "" {
		name = nameOverride
	}

	p := &models.Program{
		UserID:      tpl.UserID,
		AthleteName: athleteName,
		ProgramName: name,
		StartDate:   startDate,
		WeekCount:   tpl.WeekCount,
		Weeks:       make([]models.Week, len(tpl.Weeks)),
	}

	if tpl.RepTargets != nil {
		p.RepTargets = make(map[string]string, len(tpl.RepTargets))
		for k, v := range tpl.RepTargets {
			p.RepTargets[k] = v
		}
	}
	if tpl.WeekTotals != nil {
		p.WeekTotals = append([]float64(nil), tpl.WeekTotals...)
	}

	for wi, week := range tpl.Weeks {
		w := week.Clone()
		for di := range w.Days {
			resetDay(&w.Days[di])
		}
		p.Weeks[wi] = w
	}
	return p
}

// resetDay clears completion state on a day and its exercises, leaving all
// prescriptive fields untouched.
func resetDay(d *models.Day) {
	d.Completed = false
	d.Rating = models.RatingNone
	d.Intensity = nil
	d.CompletedAt = nil
	for i := range d.Exercises {
		e := &d.Exercises[i]
		e.Completed = false
		e.AthleteComments = ""
		for j := range e.SetStatus {
			e.SetStatus[j] = models.SetPending
		}
	}
}

// CompletionFor derives the keyed completion record for one day of a
// program instance. The caller stamps Completed/Rating/Intensity before
// handing it to the upsert engine.
func CompletionFor(p *models.Program, weekNumber, dayNumber int) models.ProgramDayCompletion {
	return models.ProgramDayCompletion{
		UserID:      p.UserID,
		AthleteName: p.AthleteName,
		ProgramName: p.ProgramName,
		StartDate:   p.StartDate,
		WeekNumber:  weekNumber,
		DayNumber:   dayNumber,
	}
}

// FindDay locates a day by 1-based week and day number within a program.
// Returns nil if either number is absent.
func FindDay(p *models.Program, weekNumber, dayNumber int) *models.Day {
	for wi := range p.Weeks {
		if p.Weeks[wi].WeekNumber != weekNumber {
			continue
		}
		for di := range p.Weeks[wi].Days {
			if p.Weeks[wi].Days[di].DayNumber == dayNumber {
				return &p.Weeks[wi].Days[di]
			}
		}
	}
	return nil
}

// ApplyCompletion copies completion state from a keyed record onto the
// matching embedded day of the instance. Returns false if the instance has
// no such day. now stamps CompletedAt when the record marks the day
// complete but carries no timestamp of its own.
func ApplyCompletion(p *models.Program, c models.ProgramDayCompletion, now time.Time) bool {
	day := FindDay(p, c.WeekNumber, c.DayNumber)
	if day == nil {
		return false
	}
	day.Completed = c.Completed
	day.Rating = c.Rating
	day.Intensity = c.Intensity
	switch {
	case !c.Completed:
		day.CompletedAt = nil
	case c.CompletedAt != nil:
		day.CompletedAt = c.CompletedAt
	case day.CompletedAt == nil:
		t := now
		day.CompletedAt = &t
	}
	return true
}
