package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/mathadventures/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueArchive(attempt models.Attempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockJobQueue) EnqueuePurge(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}
