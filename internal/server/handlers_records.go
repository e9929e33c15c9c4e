package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/claude/liftlog/internal/models"
)

// prRequest is one personal-record submission.
type prRequest struct {
	AthleteName  string  `json:"athleteName"`
	ExerciseName string  `json:"exerciseName"`
	RepMax       int     `json:"repMax"`
	Weight       float64 `json:"weight"`
}

func (p prRequest) validate() string {
	if p.AthleteName == "" {
		return "athleteName is required"
	}
	if p.ExerciseName == "" {
		return "exerciseName is required"
	}
	if p.RepMax < 1 {
		return "repMax must be at least 1"
	}
	return ""
}

func (p prRequest) record(userID int) models.PersonalRecord {
	return models.PersonalRecord{
		UserID:       userID,
		AthleteName:  p.AthleteName,
		ExerciseName: p.ExerciseName,
		RepMax:       p.RepMax,
		Weight:       p.Weight,
	}
}

// handleUpsertPR creates or updates an athlete's personal record. Repeated
// submissions with the same (athlete, exercise, repMax) key never create
// duplicates.
func (s *Server) handleUpsertPR(w http.ResponseWriter, r *http.Request) {
	var req prRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := s.prs.Upsert(r.Context(), req.record(userIDFrom(r.Context())))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

// bulkPRRequest is the body of POST /prs/bulk.
type bulkPRRequest struct {
	AthleteName string `json:"athleteName"`
	Records     []struct {
		ExerciseName string  `json:"exerciseName"`
		RepMax       int     `json:"repMax"`
		Weight       float64 `json:"weight"`
	} `json:"records"`
}

// handleBulkUpsertPRs upserts a sequence of records for one athlete. Items
// are applied in order with no batch atomicity: a failure partway through
// leaves the earlier upserts committed, and the response reports the ids
// that did commit.
func (s *Server) handleBulkUpsertPRs(w http.ResponseWriter, r *http.Request) {
	var req bulkPRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.AthleteName == "" {
		writeError(w, http.StatusBadRequest, "athleteName is required")
		return
	}

	userID := userIDFrom(r.Context())
	records := make([]models.PersonalRecord, 0, len(req.Records))
	for i, item := range req.Records {
		pr := prRequest{
			AthleteName:  req.AthleteName,
			ExerciseName: item.ExerciseName,
			RepMax:       item.RepMax,
			Weight:       item.Weight,
		}
		if msg := pr.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, "record "+strconv.Itoa(i)+": "+msg)
			return
		}
		records = append(records, pr.record(userID))
	}

	ids, err := s.prs.BulkUpsert(r.Context(), records)
	if err != nil {
		s.log.Error("bulk PR upsert failed partway", "committed", len(ids), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": err.Error(),
			"ids":   ids,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ids": ids})
}

func (s *Server) handleListPRs(w http.ResponseWriter, r *http.Request) {
	athlete := r.URL.Query().Get("athlete")
	if athlete == "" {
		writeError(w, http.StatusBadRequest, "athlete parameter required")
		return
	}
	records, err := s.db.ListPersonalRecords(r.Context(), userIDFrom(r.Context()), athlete)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// handleDeletePR removes one record by key. A missing key is a 404, not a
// store error.
func (s *Server) handleDeletePR(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	repMax, err := strconv.Atoi(q.Get("repMax"))
	if err != nil || q.Get("athlete") == "" || q.Get("exercise") == "" {
		writeError(w, http.StatusBadRequest, "athlete, exercise, and repMax parameters required")
		return
	}

	key := models.PRKey{
		UserID:       userIDFrom(r.Context()),
		AthleteName:  q.Get("athlete"),
		ExerciseName: q.Get("exercise"),
		RepMax:       repMax,
	}
	deleted, err := s.prs.DeleteByKey(r.Context(), key)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "no record for key")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
