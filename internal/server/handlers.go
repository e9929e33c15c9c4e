package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps storage sentinel errors to HTTP statuses; anything
// else is a plain 500. Store failures are surfaced, never retried here.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateName):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.log.Error("store error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// dateParam reads a YYYY-MM-DD query parameter, defaulting to today.
func dateParam(r *http.Request, name string) (models.ISODate, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return models.DateOf(time.Now()), nil
	}
	return models.ParseISODate(v)
}
