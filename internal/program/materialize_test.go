package program

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

func completedTemplate() *models.ProgramTemplate {
	done := time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)
	intensity := 7.5
	return &models.ProgramTemplate{
		UserID:      1,
		ProgramName: "Strength Block",
		WeekCount:   2,
		RepTargets:  map[string]string{"squat": "5x5"},
		WeekTotals:  []float64{12000, 12500},
		Weeks: []models.Week{
			{WeekNumber: 1, Days: []models.Day{
				{
					DayNumber:   1,
					DayLabel:    "Monday",
					Completed:   true,
					Rating:      models.RatingCrushingIt,
					Intensity:   &intensity,
					CompletedAt: &done,
					Exercises: []models.Exercise{
						{
							ExerciseNumber:  1,
							Name:            "Back Squat",
							Sets:            5,
							Reps:            models.PerSetStrings("5", "5", "3", "3", "1"),
							Weight:          models.LiteralFloat(140),
							Percent:         models.LiteralFloat(85),
							SupersetGroup:   "A",
							SupersetOrder:   1,
							Notes:           "belt on top sets",
							SetStatus:       []models.SetStatus{models.SetComplete, models.SetComplete, models.SetMiss, models.SetComplete, models.SetComplete},
							Completed:       true,
							AthleteComments: "felt heavy",
						},
					},
				},
			}},
			{WeekNumber: 2, Days: []models.Day{
				{DayNumber: 1, DayLabel: "Wednesday", Exercises: []models.Exercise{
					{ExerciseNumber: 1, Name: "Snatch", Sets: 6, Reps: models.LiteralString("2")},
				}},
			}},
		},
	}
}

// TestMaterializeResetsCompletionState verifies every day and exercise in
// the instance starts fresh, no matter what state the template carried.
func TestMaterializeResetsCompletionState(t *testing.T) {
	tpl := completedTemplate()
	start := models.NewISODate(2026, time.February, 2)

	p := Materialize(tpl, "maddisen", start, "")

	for _, w := range p.Weeks {
		for _, d := range w.Days {
			if d.Completed {
				t.Errorf("week %d day %d: completed not reset", w.WeekNumber, d.DayNumber)
			}
			if d.Rating != models.RatingNone {
				t.Errorf("week %d day %d: rating = %q, want unset", w.WeekNumber, d.DayNumber, d.Rating)
			}
			if d.Intensity != nil || d.CompletedAt != nil {
				t.Errorf("week %d day %d: intensity/completedAt not cleared", w.WeekNumber, d.DayNumber)
			}
			for _, e := range d.Exercises {
				if e.Completed {
					t.Errorf("exercise %q: completed not reset", e.Name)
				}
				if e.AthleteComments != "" {
					t.Errorf("exercise %q: athleteComments = %q, want empty", e.Name, e.AthleteComments)
				}
				for i, st := range e.SetStatus {
					if st != models.SetPending {
						t.Errorf("exercise %q set %d: status = %q, want pending", e.Name, i, st)
					}
				}
			}
		}
	}
}

// TestMaterializeCopiesPrescriptiveFields verifies sets, reps, weights,
// superset grouping, and notes survive materialization unchanged.
func TestMaterializeCopiesPrescriptiveFields(t *testing.T) {
	tpl := completedTemplate()
	start := models.NewISODate(2026, time.February, 2)

	p := Materialize(tpl, "maddisen", start, "")

	if p.AthleteName != "maddisen" {
		t.Errorf("athleteName = %q, want %q", p.AthleteName, "maddisen")
	}
	if p.ProgramName != "Strength Block" {
		t.Errorf("programName = %q, want template name", p.ProgramName)
	}
	if !p.StartDate.SameDay(start.Time) {
		t.Errorf("startDate = %s, want %s", p.StartDate, start)
	}
	if p.WeekCount != len(p.Weeks) {
		t.Errorf("weekCount %d != %d weeks", p.WeekCount, len(p.Weeks))
	}
	if p.RepTargets["squat"] != "5x5" {
		t.Errorf("repTargets not copied: %v", p.RepTargets)
	}

	ex := p.Weeks[0].Days[0].Exercises[0]
	if ex.Name != "Back Squat" || ex.Sets != 5 {
		t.Errorf("exercise = %q/%d sets, want Back Squat/5", ex.Name, ex.Sets)
	}
	if got := ex.Reps.Values(); len(got) != 5 || got[2] != "3" {
		t.Errorf("reps = %v, want per-set values copied", got)
	}
	if ex.Weight.ForSet(0) != 140 || ex.Percent.ForSet(3) != 85 {
		t.Errorf("weight/percent not copied: %v / %v", ex.Weight.Values(), ex.Percent.Values())
	}
	if ex.SupersetGroup != "A" || ex.SupersetOrder != 1 || ex.Notes != "belt on top sets" {
		t.Error("superset grouping or notes not copied")
	}
}

// TestMaterializeNameOverride verifies the optional override replaces the
// template's program name on the instance only.
func TestMaterializeNameOverride(t *testing.T) {
	tpl := completedTemplate()
	p := Materialize(tpl, "maddisen", models.NewISODate(2026, time.February, 2), "Maddisen Comp Prep")

	if p.ProgramName != "Maddisen Comp Prep" {
		t.Errorf("programName = %q, want override", p.ProgramName)
	}
	if tpl.ProgramName != "Strength Block" {
		t.Errorf("template name mutated to %q", tpl.ProgramName)
	}
}

// TestMaterializeDeepCopy verifies the instance shares no memory with the
// template: mutating one is invisible to the other.
func TestMaterializeDeepCopy(t *testing.T) {
	tpl := completedTemplate()
	p := Materialize(tpl, "maddisen", models.NewISODate(2026, time.February, 2), "")

	p.Weeks[0].Days[0].Exercises[0].Name = "Front Squat"
	p.Weeks[0].Days[0].Exercises[0].SetStatus[0] = models.SetMiss
	p.RepTargets["squat"] = "3x3"
	p.WeekTotals[0] = 0

	if tpl.Weeks[0].Days[0].Exercises[0].Name != "Back Squat" {
		t.Error("template exercise mutated through instance")
	}
	if tpl.Weeks[0].Days[0].Exercises[0].SetStatus[0] != models.SetComplete {
		t.Error("template set status mutated through instance")
	}
	if tpl.RepTargets["squat"] != "5x5" {
		t.Error("template rep targets mutated through instance")
	}
	if tpl.WeekTotals[0] != 12000 {
		t.Error("template week totals mutated through instance")
	}

	// Template completion state is also untouched by the reset.
	if !tpl.Weeks[0].Days[0].Completed {
		t.Error("template day completion reset in place")
	}
}

// TestApplyCompletion verifies completion state lands on the matching
// embedded day and clears when a day is un-completed.
func TestApplyCompletion(t *testing.T) {
	tpl := completedTemplate()
	p := Materialize(tpl, "maddisen", models.NewISODate(2026, time.February, 2), "")
	now := time.Date(2026, time.February, 2, 19, 0, 0, 0, time.UTC)

	c := CompletionFor(p, 1, 1)
	c.Completed = true
	c.Rating = models.RatingAverage
	if !ApplyCompletion(p, c, now) {
		t.Fatal("ApplyCompletion reported no matching day")
	}

	day := FindDay(p, 1, 1)
	if !day.Completed || day.Rating != models.RatingAverage {
		t.Errorf("day state = completed=%v rating=%q", day.Completed, day.Rating)
	}
	if day.CompletedAt == nil || !day.CompletedAt.Equal(now) {
		t.Errorf("completedAt = %v, want stamped with now", day.CompletedAt)
	}

	// Un-complete clears the timestamp.
	c.Completed = false
	c.Rating = models.RatingNone
	ApplyCompletion(p, c, now)
	if day.Completed || day.CompletedAt != nil {
		t.Error("un-completing did not clear state")
	}

	// Unknown week/day is reported, not invented.
	if ApplyCompletion(p, CompletionFor(p, 9, 9), now) {
		t.Error("expected false for nonexistent week/day")
	}
}
