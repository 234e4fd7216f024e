package api

import (
	"context"

	"github.com/vytor/mathadventures/internal/services"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

type Server struct {
	SessionService  services.SessionService
	PracticeService services.PracticeService
	SummaryService  services.SummaryService
	HistoryService  services.HistoryService
	DB              HealthChecker
	AllowedOrigins  []string
}
