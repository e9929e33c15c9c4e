// Package importer loads program-template YAML files from a directory into
// the store, tracking already-imported files in a local SQLite state
// database so re-runs only pick up new or changed files.
package importer

import (
	"fmt"

	"github.com/claude/liftlog/internal/models"
	"gopkg.in/yaml.v3"
)

// templateFile is the YAML document shape of one template file. Reps,
// weight, and percent accept either a scalar or a per-set list, mirroring
// the wire format.
type templateFile struct {
	ProgramName string            `yaml:"programName"`
	WeekCount   int               `yaml:"weekCount"`
	RepTargets  map[string]string `yaml:"repTargets"`
	WeekTotals  []float64         `yaml:"weekTotals"`
	Weeks       []weekFile        `yaml:"weeks"`
}

type weekFile struct {
	WeekNumber int       `yaml:"weekNumber"`
	Days       []dayFile `yaml:"days"`
}

type dayFile struct {
	DayNumber int            `yaml:"dayNumber"`
	DayLabel  string         `yaml:"dayLabel"`
	Exercises []exerciseFile `yaml:"exercises"`
}

type exerciseFile struct {
	ExerciseNumber int    `yaml:"exerciseNumber"`
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	Notes          string `yaml:"notes"`
	SupersetGroup  string `yaml:"supersetGroup"`
	SupersetOrder  int    `yaml:"supersetOrder"`
	Sets           int    `yaml:"sets"`
	Reps           any    `yaml:"reps"`
	Weight         any    `yaml:"weight"`
	Percent        any    `yaml:"percent"`
}

// ParseTemplate decodes and validates one template YAML document.
func ParseTemplate(data []byte) (*models.ProgramTemplate, error) {
	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if tf.ProgramName == "" {
		return nil, fmt.Errorf("programName is required")
	}
	if len(tf.Weeks) == 0 {
		return nil, fmt.Errorf("template %q has no weeks", tf.ProgramName)
	}
	if tf.WeekCount == 0 {
		tf.WeekCount = len(tf.Weeks)
	}
	if tf.WeekCount != len(tf.Weeks) {
		return nil, fmt.Errorf("template %q: weekCount %d does not match %d weeks",
			tf.ProgramName, tf.WeekCount, len(tf.Weeks))
	}

	t := &models.ProgramTemplate{
		ProgramName: tf.ProgramName,
		WeekCount:   tf.WeekCount,
		RepTargets:  tf.RepTargets,
		WeekTotals:  tf.WeekTotals,
		Weeks:       make([]models.Week, len(tf.Weeks)),
	}

	seenWeeks := make(map[int]bool)
	for wi, wf := range tf.Weeks {
		if wf.WeekNumber < 1 {
			return nil, fmt.Errorf("template %q: week %d: weekNumber must be 1-based", tf.ProgramName, wi+1)
		}
		if seenWeeks[wf.WeekNumber] {
			return nil, fmt.Errorf("template %q: duplicate weekNumber %d", tf.ProgramName, wf.WeekNumber)
		}
		seenWeeks[wf.WeekNumber] = true

		week := models.Week{WeekNumber: wf.WeekNumber, Days: make([]models.Day, len(wf.Days))}
		seenDays := make(map[int]bool)
		for di, df := range wf.Days {
			if df.DayNumber < 1 {
				return nil, fmt.Errorf("template %q week %d: day %d: dayNumber must be 1-based",
					tf.ProgramName, wf.WeekNumber, di+1)
			}
			if seenDays[df.DayNumber] {
				return nil, fmt.Errorf("template %q week %d: duplicate dayNumber %d",
					tf.ProgramName, wf.WeekNumber, df.DayNumber)
			}
			seenDays[df.DayNumber] = true
			if df.DayLabel != "" {
				if _, ok := models.ParseWeekday(df.DayLabel); !ok {
					return nil, fmt.Errorf("template %q week %d day %d: unrecognized dayLabel %q",
						tf.ProgramName, wf.WeekNumber, df.DayNumber, df.DayLabel)
				}
			}

			day := models.Day{
				DayNumber: df.DayNumber,
				DayLabel:  df.DayLabel,
				Exercises: make([]models.Exercise, len(df.Exercises)),
			}
			for ei, ef := range df.Exercises {
				ex, err := convertExercise(ef)
				if err != nil {
					return nil, fmt.Errorf("template %q week %d day %d exercise %d: %w",
						tf.ProgramName, wf.WeekNumber, df.DayNumber, ei+1, err)
				}
				day.Exercises[ei] = ex
			}
			week.Days[di] = day
		}
		t.Weeks[wi] = week
	}
	return t, nil
}

func convertExercise(ef exerciseFile) (models.Exercise, error) {
	if ef.Name == "" {
		return models.Exercise{}, fmt.Errorf("name is required")
	}
	ex := models.Exercise{
		ExerciseNumber: ef.ExerciseNumber,
		Name:           ef.Name,
		Category:       ef.Category,
		Notes:          ef.Notes,
		SupersetGroup:  ef.SupersetGroup,
		SupersetOrder:  ef.SupersetOrder,
		Sets:           ef.Sets,
	}
	var err error
	if ex.Reps, err = flexStrings(ef.Reps); err != nil {
		return models.Exercise{}, fmt.Errorf("reps: %w", err)
	}
	if ex.Weight, err = flexFloats(ef.Weight); err != nil {
		return models.Exercise{}, fmt.Errorf("weight: %w", err)
	}
	if ex.Percent, err = flexFloats(ef.Percent); err != nil {
		return models.Exercise{}, fmt.Errorf("percent: %w", err)
	}
	return ex, nil
}

// flexStrings converts a YAML scalar or list into a FlexStrings value.
// Numeric scalars are accepted and stringified ("5" and 5 mean the same
// rep prescription).
func flexStrings(v any) (models.FlexStrings, error) {
	switch val := v.(type) {
	case nil:
		return models.FlexStrings{}, nil
	case string:
		return models.LiteralString(val), nil
	case int:
		return models.LiteralString(fmt.Sprintf("%d", val)), nil
	case float64:
		return models.LiteralString(fmt.Sprintf("%g", val)), nil
	case []any:
		vals := make([]string, len(val))
		for i, item := range val {
			switch s := item.(type) {
			case string:
				vals[i] = s
			case int:
				vals[i] = fmt.Sprintf("%d", s)
			case float64:
				vals[i] = fmt.Sprintf("%g", s)
			default:
				return models.FlexStrings{}, fmt.Errorf("element %d: expected string or number, got %T", i, item)
			}
		}
		return models.PerSetStrings(vals...), nil
	default:
		return models.FlexStrings{}, fmt.Errorf("expected scalar or list, got %T", v)
	}
}

// flexFloats converts a YAML scalar or list into a FlexFloats value.
func flexFloats(v any) (models.FlexFloats, error) {
	switch val := v.(type) {
	case nil:
		return models.FlexFloats{}, nil
	case int:
		return models.LiteralFloat(float64(val)), nil
	case float64:
		return models.LiteralFloat(val), nil
	case []any:
		vals := make([]float64, len(val))
		for i, item := range val {
			switch n := item.(type) {
			case int:
				vals[i] = float64(n)
			case float64:
				vals[i] = n
			default:
				return models.FlexFloats{}, fmt.Errorf("element %d: expected number, got %T", i, item)
			}
		}
		return models.PerSetFloats(vals...), nil
	default:
		return models.FlexFloats{}, fmt.Errorf("expected number or list, got %T", v)
	}
}
