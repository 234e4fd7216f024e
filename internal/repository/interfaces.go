package repository

import (
	"context"

	"github.com/vytor/mathadventures/internal/models"
)

// SessionRepository owns live practice sessions.
type SessionRepository interface {
	// Create inserts a fresh session, replacing any existing one for userID.
	Create(ctx context.Context, userID string, initial models.Difficulty) (*models.Session, error)

	// Get returns a snapshot of the session or a SESSION_NOT_FOUND error.
	// Mutating the snapshot does not affect the stored session.
	Get(ctx context.Context, userID string) (*models.Session, error)

	// Update runs fn against the stored session while holding that session's
	// lock, so concurrent submissions for one user are serialized.
	Update(ctx context.Context, userID string, fn func(*models.Session) error) error

	// Delete removes the session or returns SESSION_NOT_FOUND.
	Delete(ctx context.Context, userID string) error

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}

// PuzzleRepository holds issued puzzles until they are answered.
type PuzzleRepository interface {
	Put(ctx context.Context, p models.Puzzle) error

	// Take atomically removes and returns the puzzle. Unknown, already
	// claimed, or foreign-owned puzzles yield PUZZLE_NOT_FOUND; a
	// foreign-owned puzzle stays claimable by its owner.
	Take(ctx context.Context, puzzleID, userID string) (*models.Puzzle, error)

	// DeleteForUser drops every outstanding puzzle owned by userID.
	DeleteForUser(ctx context.Context, userID string) int
}

// AttemptRepository archives answered puzzles.
type AttemptRepository interface {
	Insert(ctx context.Context, attempt models.Attempt) (int64, error)
	List(ctx context.Context, filter models.AttemptFilter) ([]models.Attempt, error)
	Count(ctx context.Context, filter models.AttemptFilter) (int, error)
	TierStats(ctx context.Context, userID string) ([]models.TierStat, error)
	DeleteForUser(ctx context.Context, userID string) (int64, error)
}
