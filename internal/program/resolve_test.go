package program

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

func monDay(dayNumber int, label string) models.Day {
	return models.Day{DayNumber: dayNumber, DayLabel: label}
}

func testProgram(start models.ISODate, weeks ...models.Week) *models.Program {
	return &models.Program{
		AthleteName: "maddisen",
		ProgramName: "Test Block",
		StartDate:   start,
		WeekCount:   len(weeks),
		Weeks:       weeks,
	}
}

// TestResolveStartDate verifies the canonical scenario: a one-week program
// with a single Monday session starting on a Monday resolves on the start
// date and nowhere in a nonexistent week two.
func TestResolveStartDate(t *testing.T) {
	start := models.NewISODate(2026, time.February, 2) // a Monday
	p := testProgram(start, models.Week{WeekNumber: 1, Days: []models.Day{monDay(1, "Monday")}})

	var r Resolver
	got, err := r.Resolve(p, time.Date(2026, time.February, 2, 15, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a match on the start date")
	}
	if got.Week.WeekNumber != 1 || got.Day.DayNumber != 1 {
		t.Errorf("resolved week %d day %d, want week 1 day 1", got.Week.WeekNumber, got.Day.DayNumber)
	}

	// One week later there is no week 2.
	got, err = r.Resolve(p, time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected no match on 2026-02-09, got week %d day %d", got.Week.WeekNumber, got.Day.DayNumber)
	}
}

// TestResolveMidweekStart verifies offsets when the program starts midweek:
// days earlier in the week than the start weekday wrap to later calendar
// dates within week one.
func TestResolveMidweekStart(t *testing.T) {
	start := models.NewISODate(2026, time.February, 4) // a Wednesday
	p := testProgram(start, models.Week{WeekNumber: 1, Days: []models.Day{
		monDay(1, "Wednesday"),
		monDay(2, "Friday"),
		monDay(3, "Monday"), // wraps: next Monday is Feb 9
	}})

	var r Resolver
	cases := []struct {
		date    models.ISODate
		wantDay int
	}{
		{models.NewISODate(2026, time.February, 4), 1},
		{models.NewISODate(2026, time.February, 6), 2},
		{models.NewISODate(2026, time.February, 9), 3},
	}
	for _, tc := range cases {
		got, err := r.Resolve(p, tc.date.Time)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Errorf("Resolve(%s): expected a match", tc.date)
			continue
		}
		if got.Day.DayNumber != tc.wantDay {
			t.Errorf("Resolve(%s) = day %d, want day %d", tc.date, got.Day.DayNumber, tc.wantDay)
		}
	}
}

// TestResolveSundayStart verifies a Sunday start behaves like any other
// weekday: dayOffset stays in [0,6] and week one holds the first
// occurrence of each label.
func TestResolveSundayStart(t *testing.T) {
	start := models.NewISODate(2026, time.February, 1) // a Sunday
	p := testProgram(start, models.Week{WeekNumber: 1, Days: []models.Day{
		monDay(1, "Sunday"),
		monDay(2, "Saturday"), // offset 6
	}})

	var r Resolver
	got, err := r.Resolve(p, start.Time)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Day.DayNumber != 1 {
		t.Fatalf("Resolve(start) = %+v, want day 1", got)
	}

	got, err = r.Resolve(p, models.NewISODate(2026, time.February, 7).Time)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Day.DayNumber != 2 {
		t.Fatalf("Resolve(Saturday) = %+v, want day 2", got)
	}
}

// TestResolveYearBoundary verifies resolution across a year boundary: a
// program starting in late December schedules week two sessions in January.
func TestResolveYearBoundary(t *testing.T) {
	start := models.NewISODate(2025, time.December, 29) // a Monday
	p := testProgram(start,
		models.Week{WeekNumber: 1, Days: []models.Day{monDay(1, "Monday")}},
		models.Week{WeekNumber: 2, Days: []models.Day{monDay(1, "Monday"), monDay(2, "Thursday")}},
	)

	var r Resolver
	got, err := r.Resolve(p, models.NewISODate(2026, time.January, 5).Time)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Week.WeekNumber != 2 || got.Day.DayNumber != 1 {
		t.Fatalf("Resolve(2026-01-05) = %+v, want week 2 day 1", got)
	}

	got, err = r.Resolve(p, models.NewISODate(2026, time.January, 8).Time)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Week.WeekNumber != 2 || got.Day.DayNumber != 2 {
		t.Fatalf("Resolve(2026-01-08) = %+v, want week 2 day 2", got)
	}
}

// TestResolveSkipsUnlabeledDays verifies days without a recognized weekday
// label are skipped silently by the default resolver.
func TestResolveSkipsUnlabeledDays(t *testing.T) {
	start := models.NewISODate(2026, time.February, 2)
	p := testProgram(start, models.Week{WeekNumber: 1, Days: []models.Day{
		monDay(1, ""),
		monDay(2, "Day 2"),
		monDay(3, "Tuesday"),
	}})

	var r Resolver
	got, err := r.Resolve(p, models.NewISODate(2026, time.February, 3).Time)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Day.DayNumber != 3 {
		t.Fatalf("Resolve = %+v, want day 3", got)
	}
}

// TestResolveStrictLabels verifies StrictLabels turns an unrecognized label
// into an error instead of a silent skip.
func TestResolveStrictLabels(t *testing.T) {
	start := models.NewISODate(2026, time.February, 2)
	p := testProgram(start, models.Week{WeekNumber: 1, Days: []models.Day{
		monDay(1, "Dayz"),
	}})

	r := Resolver{StrictLabels: true}
	if _, err := r.Resolve(p, start.Time); err == nil {
		t.Error("expected error for unrecognized label in strict mode")
	}
}

// TestResolveFirstMatchWins verifies the documented tie-break: when two
// days in one week share a label, the one earlier in slice order wins.
func TestResolveFirstMatchWins(t *testing.T) {
	start := models.NewISODate(2026, time.February, 2)
	p := testProgram(start, models.Week{WeekNumber: 1, Days: []models.Day{
		monDay(1, "Monday"),
		monDay(2, "Monday"),
	}})

	var r Resolver
	got, err := r.Resolve(p, start.Time)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Day.DayNumber != 1 {
		t.Fatalf("Resolve = %+v, want day 1 (first match)", got)
	}
}

// TestScheduledDateOffsets verifies the offset arithmetic directly for
// every start weekday: the computed offset is always within the week.
func TestScheduledDateOffsets(t *testing.T) {
	for d := 0; d < 7; d++ {
		start := models.NewISODate(2026, time.March, 1).AddDays(d)
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			got := ScheduledDate(start, 1, wd)
			offset := int(got.Sub(start.Time).Hours() / 24)
			if offset < 0 || offset > 6 {
				t.Errorf("ScheduledDate(%s, 1, %v): offset %d out of [0,6]", start, wd, offset)
			}
			if got.Weekday() != wd {
				t.Errorf("ScheduledDate(%s, 1, %v) fell on %v", start, wd, got.Weekday())
			}
		}
	}
}
