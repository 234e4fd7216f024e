package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/jobs"
	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
)

// SessionService handles the session lifecycle
type SessionService interface {
	StartSession(ctx context.Context, initial *models.Difficulty) (*models.Session, error)
	GetSession(ctx context.Context, userID string) (*models.Session, error)
	EndSession(ctx context.Context, userID string) error
	ActiveSessions(ctx context.Context) int
}

type sessionService struct {
	sessions repository.SessionRepository
	puzzles  repository.PuzzleRepository
	queue    jobs.JobQueue
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions repository.SessionRepository, puzzles repository.PuzzleRepository, queue jobs.JobQueue) SessionService {
	return &sessionService{
		sessions: sessions,
		puzzles:  puzzles,
		queue:    queue,
	}
}

func (s *sessionService) StartSession(ctx context.Context, initial *models.Difficulty) (*models.Session, error) {
	log := logger.FromContext(ctx)

	difficulty := models.DefaultDifficulty
	if initial != nil {
		difficulty = *initial
	}
	if !difficulty.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be EASY, MEDIUM or HARD")
	}

	userID := uuid.NewString()
	session, err := s.sessions.Create(ctx, userID, difficulty)
	if err != nil {
		log.Error("failed to create session: %v", err)
		return nil, err
	}

	log.Info("session started: user_id=%s, difficulty=%s", userID, difficulty)
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, userID string) (*models.Session, error) {
	logger.FromContext(ctx).Debug("getting session: user_id=%s", userID)
	return s.sessions.Get(ctx, userID)
}

func (s *sessionService) EndSession(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.sessions.Delete(ctx, userID); err != nil {
		return err
	}
	dropped := s.puzzles.DeleteForUser(ctx, userID)

	if s.queue != nil {
		if err := s.queue.EnqueuePurge(userID); err != nil {
			log.Warn("failed to enqueue attempt purge: %v", err)
		}
	}

	log.Info("session ended: user_id=%s, dropped_puzzles=%d", userID, dropped)
	return nil
}

func (s *sessionService) ActiveSessions(ctx context.Context) int {
	return s.sessions.Count(ctx)
}
