package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/liftlog/internal/models"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.db.ListLibraryExercises(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

// handleCreateExercise adds a library entry. A duplicate name is rejected
// with 409; the existing entry is left as is.
func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var e models.LibraryExercise
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if e.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	e.UserID = userIDFrom(r.Context())

	if err := s.db.InsertLibraryExercise(r.Context(), &e); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": e.ID})
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name parameter required")
		return
	}
	deleted, err := s.db.DeleteLibraryExercise(r.Context(), userIDFrom(r.Context()), name)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "exercise not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
