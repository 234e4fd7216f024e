package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.SessionService.StartSession(r.Context(), parseDifficulty(req.Difficulty))
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Location", "/sessions/"+session.UserID)
	writeJSON(w, r, http.StatusCreated, map[string]any{
		"user_id":    session.UserID,
		"difficulty": session.CurrentDifficulty,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.SessionService.GetSession(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := s.SessionService.EndSession(r.Context(), chi.URLParam(r, "userID")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
