package api

import (
	"net/http"
	"time"

	"github.com/vytor/mathadventures/internal/logger"
)

type healthResponse struct {
	Status         string    `json:"status"`
	ActiveSessions int       `json:"active_sessions"`
	Timestamp      time.Time `json:"timestamp"`
}

// handleHealth is the liveness probe; it answers 200 while the process runs.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{
		Status:         "healthy",
		ActiveSessions: s.SessionService.ActiveSessions(r.Context()),
		Timestamp:      time.Now().UTC(),
	})
}

// handleReady is the readiness probe. It fails with 503 when the attempt
// archive cannot be reached.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.DB != nil {
		if err := s.DB.Check(ctx); err != nil {
			logger.FromContext(ctx).Warn("readiness check failed - database: %v", err)
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
