package mcp

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// dateOrToday parses a YYYY-MM-DD string, defaulting to today when empty.
func dateOrToday(s string) (models.ISODate, error) {
	if s == "" {
		return models.DateOf(time.Now()), nil
	}
	return models.ParseISODate(s)
}

// --- Tool definitions ---

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List all program templates with their week counts and rep targets."),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Retrieve a full program instance (weeks, days, exercises, completion state) by ID, or list an athlete's programs when only 'athlete' is given."),
	mcp.WithString("id", mcp.Description("Program instance UUID")),
	mcp.WithString("athlete", mcp.Description("Athlete name; used when no ID is given")),
)

var toolGetTrainingDay = mcp.NewTool("get_training_day",
	mcp.WithDescription("Resolve which training day, if any, an athlete has scheduled on a calendar date. Scans the athlete's programs and returns the first match."),
	mcp.WithString("athlete", mcp.Required(), mcp.Description("Athlete name")),
	mcp.WithString("date", mcp.Description("Calendar date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("List an athlete's personal records, ordered by exercise and rep max."),
	mcp.WithString("athlete", mcp.Required(), mcp.Description("Athlete name")),
)

var toolUpsertPersonalRecord = mcp.NewTool("upsert_personal_record",
	mcp.WithDescription("Create or update a personal record. At most one record exists per (athlete, exercise, rep max); resubmitting updates the weight in place."),
	mcp.WithString("athlete", mcp.Required(), mcp.Description("Athlete name")),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (e.g. 'snatch')")),
	mcp.WithString("rep_max", mcp.Required(), mcp.Description("Rep count of the max (1 for 1RM, 3 for 3RM, ...)")),
	mcp.WithString("weight", mcp.Required(), mcp.Description("Weight lifted")),
)

// --- Tool handlers ---

func (h *handlers) listTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	templates, err := h.db.ListTemplates(ctx, uid)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(templates)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	if idStr := req.GetString("id", ""); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return mcp.NewToolResultError("invalid program ID"), nil
		}
		p, err := h.db.GetProgram(ctx, id, uid)
		if err != nil {
			h.log.Error("mcp get_program", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		result, err := mcp.NewToolResultJSON(p)
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	athlete := req.GetString("athlete", "")
	if athlete == "" {
		return mcp.NewToolResultError("either id or athlete is required"), nil
	}
	programs, err := h.db.ListPrograms(ctx, uid, athlete)
	if err != nil {
		h.log.Error("mcp get_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	athlete, err := req.RequireString("athlete")
	if err != nil {
		return mcp.NewToolResultError("athlete parameter is required"), nil
	}
	date, err := dateOrToday(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	programs, err := h.db.ListPrograms(ctx, uid, athlete)
	if err != nil {
		h.log.Error("mcp get_training_day", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	for i := range programs {
		day, err := h.resolver.Resolve(&programs[i], date.Time)
		if err != nil {
			return mcp.NewToolResultError("resolution failed: " + err.Error()), nil
		}
		if day == nil {
			continue
		}
		result, err := mcp.NewToolResultJSON(map[string]any{
			"programName": programs[i].ProgramName,
			"programId":   programs[i].ID,
			"date":        date.String(),
			"week":        day.Week,
			"day":         day.Day,
		})
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}
	return mcp.NewToolResultText("no training day scheduled for " + athlete + " on " + date.String()), nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	athlete, err := req.RequireString("athlete")
	if err != nil {
		return mcp.NewToolResultError("athlete parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	records, err := h.db.ListPersonalRecords(ctx, uid, athlete)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) upsertPersonalRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	athlete, err := req.RequireString("athlete")
	if err != nil {
		return mcp.NewToolResultError("athlete parameter is required"), nil
	}
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	repMax, err := strconv.Atoi(req.GetString("rep_max", ""))
	if err != nil || repMax < 1 {
		return mcp.NewToolResultError("rep_max must be a positive integer"), nil
	}
	weight, err := strconv.ParseFloat(req.GetString("weight", ""), 64)
	if err != nil {
		return mcp.NewToolResultError("weight must be a number"), nil
	}

	uid := UserIDFromContext(ctx)
	id, err := h.prs.Upsert(ctx, models.PersonalRecord{
		UserID:       uid,
		AthleteName:  athlete,
		ExerciseName: exercise,
		RepMax:       repMax,
		Weight:       weight,
	})
	if err != nil {
		h.log.Error("mcp upsert_personal_record", "error", err)
		return mcp.NewToolResultError("upsert failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"id": id})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) templateCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	templates, err := h.db.ListTemplates(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(templates)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
