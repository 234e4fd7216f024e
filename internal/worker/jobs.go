package worker

import (
	"context"

	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
)

// ArchiveAttemptJob writes one answered puzzle to the attempt archive.
type ArchiveAttemptJob struct {
	AttemptRepo repository.AttemptRepository
	Attempt     models.Attempt
}

func (j *ArchiveAttemptJob) Name() string { return "archive_attempt" }

func (j *ArchiveAttemptJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"user_id":   j.Attempt.UserID,
		"puzzle_id": j.Attempt.PuzzleID,
	})
	id, err := j.AttemptRepo.Insert(ctx, j.Attempt)
	if err != nil {
		return err
	}
	log.Debug("attempt archived: id=%d", id)
	return nil
}

// PurgeAttemptsJob removes a user's archived attempts after their session ends.
type PurgeAttemptsJob struct {
	AttemptRepo repository.AttemptRepository
	UserID      string
}

func (j *PurgeAttemptsJob) Name() string { return "purge_attempts" }

func (j *PurgeAttemptsJob) Run(ctx context.Context) error {
	n, err := j.AttemptRepo.DeleteForUser(ctx, j.UserID)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("purged %d attempts for user_id=%s", n, j.UserID)
	return nil
}
