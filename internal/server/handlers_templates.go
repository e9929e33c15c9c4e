package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/program"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var t models.ProgramTemplate
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	t.UserID = userIDFrom(r.Context())
	if t.ProgramName == "" {
		writeError(w, http.StatusBadRequest, "programName is required")
		return
	}
	if t.WeekCount != len(t.Weeks) {
		writeError(w, http.StatusBadRequest, "weekCount must equal the number of weeks")
		return
	}

	if err := s.db.InsertTemplate(r.Context(), &t); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": t.ID})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.db.ListTemplates(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template ID")
		return
	}
	t, err := s.db.GetTemplate(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template ID")
		return
	}
	var t models.ProgramTemplate
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	t.ID = id
	t.UserID = userIDFrom(r.Context())
	if t.WeekCount != len(t.Weeks) {
		writeError(w, http.StatusBadRequest, "weekCount must equal the number of weeks")
		return
	}

	if err := s.db.UpdateTemplate(r.Context(), &t); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": t.ID})
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template ID")
		return
	}
	deleted, err := s.db.DeleteTemplate(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// assignRequest is the body of POST /templates/{id}/assign.
type assignRequest struct {
	AthleteName string `json:"athleteName"`
	StartDate   string `json:"startDate"`
	ProgramName string `json:"programName,omitempty"`
}

// handleAssignTemplate materializes a template into a program instance for
// one athlete and persists it. The template itself is never modified.
func (s *Server) handleAssignTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template ID")
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.AthleteName == "" {
		writeError(w, http.StatusBadRequest, "athleteName is required")
		return
	}
	startDate, err := models.ParseISODate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}

	tpl, err := s.db.GetTemplate(r.Context(), id, userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	instance := program.Materialize(tpl, req.AthleteName, startDate, req.ProgramName)
	if err := s.db.InsertProgram(r.Context(), instance); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": instance.ID})
}
