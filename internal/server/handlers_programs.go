package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/program"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	athlete := r.URL.Query().Get("athlete")
	programs, err := s.db.ListPrograms(r.Context(), userIDFrom(r.Context()), athlete)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid program ID")
		return
	}
	p, err := s.db.GetProgram(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid program ID")
		return
	}
	deleted, err := s.db.DeleteProgram(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "program not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handleGetTrainingDay resolves which training day, if any, falls on the
// given calendar date (default today) within the program instance.
func (s *Server) handleGetTrainingDay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid program ID")
		return
	}
	date, err := dateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	p, err := s.db.GetProgram(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	day, err := s.resolver.Resolve(p, date.Time)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if day == nil {
		writeError(w, http.StatusNotFound, "no training day on "+date.String())
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// dayUpdateRequest is the body of PUT /programs/{id}/days. It carries the
// completion state for one (week, day) of the instance.
type dayUpdateRequest struct {
	WeekNumber  int        `json:"weekNumber"`
	DayNumber   int        `json:"dayNumber"`
	Completed   bool       `json:"completed"`
	Rating      string     `json:"rating,omitempty"`
	Intensity   *float64   `json:"intensity,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// handleUpsertProgramDay records completion state for one program day. The
// state lands twice, deliberately: as a keyed completion record via the
// upsert engine, and patched onto the embedded day of the program document
// so "today's workout" reads stay consistent.
func (s *Server) handleUpsertProgramDay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid program ID")
		return
	}
	var req dayUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	rating, err := models.ParseDayRating(req.Rating)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.Completed && (rating != models.RatingNone || req.CompletedAt != nil) {
		writeError(w, http.StatusBadRequest, "rating and completedAt require completed=true")
		return
	}

	p, err := s.db.GetProgram(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if program.FindDay(p, req.WeekNumber, req.DayNumber) == nil {
		writeError(w, http.StatusNotFound, "no such week/day in program")
		return
	}

	completion := program.CompletionFor(p, req.WeekNumber, req.DayNumber)
	completion.Completed = req.Completed
	completion.Rating = rating
	completion.Intensity = req.Intensity
	completion.CompletedAt = req.CompletedAt

	recordID, err := s.completions.Upsert(r.Context(), completion)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	program.ApplyCompletion(p, completion, time.Now())
	if err := s.db.UpdateProgramWeeks(r.Context(), p.ID, p.UserID, p.Weeks); err != nil {
		s.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": recordID})
}

func (s *Server) handleListCompletions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid program ID")
		return
	}
	p, err := s.db.GetProgram(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	completions, err := s.db.ListCompletions(r.Context(), p.UserID, p.AthleteName, p.ProgramName, p.StartDate)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, completions)
}
