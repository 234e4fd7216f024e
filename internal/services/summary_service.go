package services

import (
	"context"

	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
	"github.com/vytor/mathadventures/internal/summary"
)

// SummaryService reports on a live session
type SummaryService interface {
	GetSummary(ctx context.Context, userID string) (*models.Summary, error)
	GetStats(ctx context.Context, userID string) (*models.PerformanceStats, error)
}

type summaryService struct {
	sessions repository.SessionRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(sessions repository.SessionRepository) SummaryService {
	return &summaryService{sessions: sessions}
}

func (s *summaryService) GetSummary(ctx context.Context, userID string) (*models.Summary, error) {
	logger.FromContext(ctx).Debug("building session summary: user_id=%s", userID)

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summary.Summarize(session)
}

func (s *summaryService) GetStats(ctx context.Context, userID string) (*models.PerformanceStats, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := summary.Stats(session)
	return &stats, nil
}
