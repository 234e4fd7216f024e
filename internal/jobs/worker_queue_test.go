package jobs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/mathadventures/internal/jobs"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/testutil/mocks"
	"github.com/vytor/mathadventures/internal/worker"
)

func TestWorkerQueue_ArchiveThenPurge(t *testing.T) {
	repo := new(mocks.MockAttemptRepository)
	attempt := models.Attempt{UserID: "u1", PuzzleID: "p1", Difficulty: models.Medium}
	repo.On("Insert", mock.Anything, attempt).Return(int64(1), nil).Once()
	repo.On("DeleteForUser", mock.Anything, "u1").Return(int64(1), nil).Once()

	pool := worker.NewPool(1, 8)
	pool.Start(context.Background())
	q := jobs.NewWorkerQueue(pool, repo)

	require.NoError(t, q.EnqueueArchive(attempt))
	require.NoError(t, q.EnqueuePurge("u1"))
	pool.Stop()

	repo.AssertExpectations(t)
}

func TestWorkerQueue_StoppedPool(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()

	q := jobs.NewWorkerQueue(pool, new(mocks.MockAttemptRepository))
	assert.ErrorIs(t, q.EnqueueArchive(models.Attempt{}), worker.ErrPoolStopped)
	assert.ErrorIs(t, q.EnqueuePurge("u1"), worker.ErrPoolStopped)
}
