package importer

import (
	"strings"
	"testing"
)

const validTemplateYAML = `
programName: Hypertrophy Block
repTargets:
  squat: "5x5"
weekTotals: [12000, 12500]
weeks:
  - weekNumber: 1
    days:
      - dayNumber: 1
        dayLabel: Monday
        exercises:
          - exerciseNumber: 1
            name: Back Squat
            sets: 5
            reps: "5"
            weight: 140
            percent: [80, 82.5, 85, 85, 85]
            supersetGroup: A
            supersetOrder: 1
      - dayNumber: 2
        dayLabel: Thursday
        exercises:
          - exerciseNumber: 1
            name: Snatch
            sets: 6
            reps: [2, 2, 1, 1, 1, 1]
  - weekNumber: 2
    days:
      - dayNumber: 1
        dayLabel: Monday
        exercises:
          - exerciseNumber: 1
            name: Back Squat
            sets: 5
            reps: "3"
`

// TestParseTemplateValid verifies a well-formed file decodes with flexible
// scalar/list prescriptions preserved and weekCount derived from the weeks.
func TestParseTemplateValid(t *testing.T) {
	tpl, err := ParseTemplate([]byte(validTemplateYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.ProgramName != "Hypertrophy Block" {
		t.Errorf("programName = %q", tpl.ProgramName)
	}
	if tpl.WeekCount != 2 || len(tpl.Weeks) != 2 {
		t.Errorf("weekCount = %d with %d weeks, want 2/2", tpl.WeekCount, len(tpl.Weeks))
	}
	if tpl.RepTargets["squat"] != "5x5" {
		t.Errorf("repTargets = %v", tpl.RepTargets)
	}

	squat := tpl.Weeks[0].Days[0].Exercises[0]
	if !squat.Reps.IsScalar() || squat.Reps.ForSet(4) != "5" {
		t.Errorf("scalar reps decoded as %v", squat.Reps.Values())
	}
	if !squat.Weight.IsScalar() || squat.Weight.ForSet(0) != 140 {
		t.Errorf("scalar weight decoded as %v", squat.Weight.Values())
	}
	if squat.Percent.IsScalar() || squat.Percent.ForSet(1) != 82.5 {
		t.Errorf("percent list decoded as %v", squat.Percent.Values())
	}

	snatch := tpl.Weeks[0].Days[1].Exercises[0]
	if snatch.Reps.IsScalar() || snatch.Reps.ForSet(0) != "2" || snatch.Reps.ForSet(5) != "1" {
		t.Errorf("numeric rep list decoded as %v", snatch.Reps.Values())
	}
}

// TestParseTemplateRejectsBadStructure verifies the validation errors a
// coach would hit with hand-edited files.
func TestParseTemplateRejectsBadStructure(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "weeks:\n  - weekNumber: 1\n    days: []\n",
			wantErr: "programName",
		},
		{
			name:    "no weeks",
			yaml:    "programName: Empty\n",
			wantErr: "no weeks",
		},
		{
			name:    "weekCount mismatch",
			yaml:    "programName: X\nweekCount: 3\nweeks:\n  - weekNumber: 1\n    days: []\n",
			wantErr: "weekCount",
		},
		{
			name: "duplicate week number",
			yaml: "programName: X\nweeks:\n  - weekNumber: 1\n    days: []\n  - weekNumber: 1\n    days: []\n",
			wantErr: "duplicate weekNumber",
		},
		{
			name: "duplicate day number",
			yaml: "programName: X\nweeks:\n  - weekNumber: 1\n    days:\n      - dayNumber: 1\n      - dayNumber: 1\n",
			wantErr: "duplicate dayNumber",
		},
		{
			name: "bad day label",
			yaml: "programName: X\nweeks:\n  - weekNumber: 1\n    days:\n      - dayNumber: 1\n        dayLabel: Moonday\n",
			wantErr: "dayLabel",
		},
		{
			name: "unnamed exercise",
			yaml: "programName: X\nweeks:\n  - weekNumber: 1\n    days:\n      - dayNumber: 1\n        exercises:\n          - sets: 3\n",
			wantErr: "name is required",
		},
	}
	for _, tc := range cases {
		_, err := ParseTemplate([]byte(tc.yaml))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantErr)
		}
	}
}
