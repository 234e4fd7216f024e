package memory

import (
	"context"
	"sync"

	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
)

type sessionEntry struct {
	mu      sync.Mutex
	session *models.Session
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewSessionRepository creates an empty in-memory SessionRepository.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{sessions: make(map[string]*sessionEntry)}
}

func (r *sessionRepository) Create(ctx context.Context, userID string, initial models.Difficulty) (*models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	if !initial.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be EASY, MEDIUM or HARD")
	}

	s := models.NewSession(userID, initial)
	r.mu.Lock()
	_, replaced := r.sessions[userID]
	r.sessions[userID] = &sessionEntry{session: s}
	r.mu.Unlock()

	if replaced {
		log.Debug("session replaced: user_id=%s", userID)
	} else {
		log.Debug("session created: user_id=%s, difficulty=%s", userID, initial)
	}
	return s.Clone(), nil
}

func (r *sessionRepository) entry(userID string) (*sessionEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[userID]
	return e, ok
}

func (r *sessionRepository) Get(ctx context.Context, userID string) (*models.Session, error) {
	e, ok := r.entry(userID)
	if !ok {
		logger.FromContext(ctx).WithPrefix("session_repo").Debug("session not found: user_id=%s", userID)
		return nil, errors.NewSessionNotFoundError(userID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

func (r *sessionRepository) Update(ctx context.Context, userID string, fn func(*models.Session) error) error {
	e, ok := r.entry(userID)
	if !ok {
		logger.FromContext(ctx).WithPrefix("session_repo").Debug("session not found for update: user_id=%s", userID)
		return errors.NewSessionNotFoundError(userID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	// The entry may have been deleted or replaced while we waited.
	r.mu.RLock()
	current := r.sessions[userID]
	r.mu.RUnlock()
	if current != e {
		return errors.NewSessionNotFoundError(userID)
	}
	return fn(e.session)
}

func (r *sessionRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[userID]; !ok {
		return errors.NewSessionNotFoundError(userID)
	}
	delete(r.sessions, userID)
	logger.FromContext(ctx).WithPrefix("session_repo").Debug("session deleted: user_id=%s", userID)
	return nil
}

func (r *sessionRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
