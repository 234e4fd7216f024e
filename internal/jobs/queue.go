package jobs

import "github.com/vytor/mathadventures/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueArchive(attempt models.Attempt) error
	EnqueuePurge(userID string) error
}
