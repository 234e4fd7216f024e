package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/models"
)

type attemptsResponse struct {
	Attempts []models.Attempt `json:"attempts"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.SummaryService.GetStats(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.SummaryService.GetSummary(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleAttempts(w http.ResponseWriter, r *http.Request) {
	filter := models.AttemptFilter{UserID: chi.URLParam(r, "userID")}

	if v := r.URL.Query().Get("difficulty"); v != "" {
		d, ok := models.ParseDifficulty(v)
		if !ok {
			handleError(w, r, errors.NewValidationError("difficulty", "must be EASY, MEDIUM or HARD"))
			return
		}
		filter.Difficulty = d
	}

	var err error
	if filter.Correct, err = queryBool(r, "correct"); err != nil {
		handleError(w, r, err)
		return
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(w, r, err)
		return
	}
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(w, r, err)
		return
	}

	attempts, total, err := s.HistoryService.ListAttempts(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if attempts == nil {
		attempts = []models.Attempt{}
	}
	writeJSON(w, r, http.StatusOK, attemptsResponse{
		Attempts: attempts,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}

func (s *Server) handleTierStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.HistoryService.TierStats(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if stats == nil {
		stats = []models.TierStat{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"tiers": stats})
}
