package jobs

import (
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
	"github.com/vytor/mathadventures/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	archivePool *worker.Pool
	attemptRepo repository.AttemptRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(archivePool *worker.Pool, attemptRepo repository.AttemptRepository) JobQueue {
	return &WorkerQueue{
		archivePool: archivePool,
		attemptRepo: attemptRepo,
	}
}

func (q *WorkerQueue) EnqueueArchive(attempt models.Attempt) error {
	return q.archivePool.Submit(&worker.ArchiveAttemptJob{
		AttemptRepo: q.attemptRepo,
		Attempt:     attempt,
	})
}

func (q *WorkerQueue) EnqueuePurge(userID string) error {
	return q.archivePool.Submit(&worker.PurgeAttemptsJob{
		AttemptRepo: q.attemptRepo,
		UserID:      userID,
	})
}
