package memory

import (
	"context"
	"sync"

	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
)

type puzzleRepository struct {
	mu      sync.Mutex
	puzzles map[string]models.Puzzle
}

// NewPuzzleRepository creates an empty in-memory PuzzleRepository.
func NewPuzzleRepository() repository.PuzzleRepository {
	return &puzzleRepository{puzzles: make(map[string]models.Puzzle)}
}

func (r *puzzleRepository) Put(ctx context.Context, p models.Puzzle) error {
	if p.ID == "" {
		return errors.NewValidationError("puzzle_id", "cannot be empty")
	}
	r.mu.Lock()
	r.puzzles[p.ID] = p
	r.mu.Unlock()
	logger.FromContext(ctx).WithPrefix("puzzle_repo").Debug("puzzle stored: puzzle_id=%s, user_id=%s", p.ID, p.UserID)
	return nil
}

func (r *puzzleRepository) Take(ctx context.Context, puzzleID, userID string) (*models.Puzzle, error) {
	log := logger.FromContext(ctx).WithPrefix("puzzle_repo")

	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.puzzles[puzzleID]
	if !ok {
		log.Debug("puzzle not found or already claimed: puzzle_id=%s", puzzleID)
		return nil, errors.NewPuzzleNotFoundError(puzzleID)
	}
	if p.UserID != userID {
		log.Warn("puzzle claimed by non-owner: puzzle_id=%s, user_id=%s", puzzleID, userID)
		return nil, errors.NewPuzzleNotFoundError(puzzleID)
	}
	delete(r.puzzles, puzzleID)
	log.Debug("puzzle claimed: puzzle_id=%s", puzzleID)
	return &p, nil
}

func (r *puzzleRepository) DeleteForUser(ctx context.Context, userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, p := range r.puzzles {
		if p.UserID == userID {
			delete(r.puzzles, id)
			n++
		}
	}
	return n
}
