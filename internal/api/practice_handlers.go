package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/mathadventures/internal/services"
)

func (s *Server) handleRequestPuzzle(w http.ResponseWriter, r *http.Request) {
	var req puzzleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	p, err := s.PracticeService.RequestPuzzle(r.Context(), chi.URLParam(r, "userID"), parseDifficulty(req.Difficulty))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.PracticeService.SubmitAnswer(r.Context(), services.SubmitInput{
		UserID:       chi.URLParam(r, "userID"),
		PuzzleID:     req.PuzzleID,
		UserAnswer:   *req.UserAnswer,
		ResponseTime: req.ResponseTime,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
