package services

import (
	"context"

	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
)

// HistoryService reads the attempt archive for live sessions
type HistoryService interface {
	ListAttempts(ctx context.Context, filter models.AttemptFilter) ([]models.Attempt, int, error)
	TierStats(ctx context.Context, userID string) ([]models.TierStat, error)
}

type historyService struct {
	sessions repository.SessionRepository
	attempts repository.AttemptRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(sessions repository.SessionRepository, attempts repository.AttemptRepository) HistoryService {
	return &historyService{sessions: sessions, attempts: attempts}
}

func (s *historyService) ListAttempts(ctx context.Context, filter models.AttemptFilter) ([]models.Attempt, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing attempts: user_id=%s", filter.UserID)

	if _, err := s.sessions.Get(ctx, filter.UserID); err != nil {
		return nil, 0, err
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, 0, errors.NewValidationError("difficulty", "must be EASY, MEDIUM or HARD")
	}

	attempts, err := s.attempts.List(ctx, filter)
	if err != nil {
		log.Error("failed to list attempts: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	total, err := s.attempts.Count(ctx, models.AttemptFilter{
		UserID:     filter.UserID,
		Difficulty: filter.Difficulty,
		Correct:    filter.Correct,
	})
	if err != nil {
		log.Error("failed to count attempts: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	return attempts, total, nil
}

func (s *historyService) TierStats(ctx context.Context, userID string) ([]models.TierStat, error) {
	log := logger.FromContext(ctx)

	if _, err := s.sessions.Get(ctx, userID); err != nil {
		return nil, err
	}
	stats, err := s.attempts.TierStats(ctx, userID)
	if err != nil {
		log.Error("failed to get tier stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}
