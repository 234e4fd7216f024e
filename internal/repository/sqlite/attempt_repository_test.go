package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
	"github.com/vytor/mathadventures/internal/repository/sqlite"
	"github.com/vytor/mathadventures/internal/testutil"
)

type AttemptRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.AttemptRepository
}

func (s *AttemptRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewAttemptRepository(s.db)
}

func (s *AttemptRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *AttemptRepositorySuite) insert(userID, puzzleID string, d models.Difficulty, correct bool, seconds float64) int64 {
	id, err := s.repo.Insert(context.Background(), models.Attempt{
		UserID:         userID,
		PuzzleID:       puzzleID,
		Question:       "6 × 7 = ?",
		Difficulty:     d,
		NextDifficulty: d,
		UserAnswer:     42,
		CorrectAnswer:  42,
		IsCorrect:      correct,
		ResponseTime:   seconds,
		CreatedAt:      time.Now(),
	})
	s.Require().NoError(err)
	return id
}

func (s *AttemptRepositorySuite) TestInsertAndList() {
	ctx := context.Background()
	first := s.insert("u1", "p1", models.Medium, true, 2)
	second := s.insert("u1", "p2", models.Hard, false, 6)
	s.insert("u2", "p3", models.Easy, true, 1)

	s.Greater(second, first)

	attempts, err := s.repo.List(ctx, models.AttemptFilter{UserID: "u1"})
	s.Require().NoError(err)
	s.Require().Len(attempts, 2)

	// newest first
	s.Equal("p2", attempts[0].PuzzleID)
	s.Equal(models.Hard, attempts[0].Difficulty)
	s.False(attempts[0].IsCorrect)
	s.Equal(6.0, attempts[0].ResponseTime)
	s.Equal(models.TransitionHold, attempts[0].Transition)
	s.Equal("p1", attempts[1].PuzzleID)
	s.True(attempts[1].IsCorrect)
	s.False(attempts[1].CreatedAt.IsZero())
}

func (s *AttemptRepositorySuite) TestListFilters() {
	ctx := context.Background()
	s.insert("u1", "p1", models.Medium, true, 2)
	s.insert("u1", "p2", models.Medium, false, 3)
	s.insert("u1", "p3", models.Hard, true, 4)

	medium, err := s.repo.List(ctx, models.AttemptFilter{UserID: "u1", Difficulty: models.Medium})
	s.Require().NoError(err)
	s.Len(medium, 2)

	correct := true
	right, err := s.repo.List(ctx, models.AttemptFilter{UserID: "u1", Correct: &correct})
	s.Require().NoError(err)
	s.Len(right, 2)

	paged, err := s.repo.List(ctx, models.AttemptFilter{UserID: "u1", Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(paged, 1)
	s.Equal("p2", paged[0].PuzzleID)

	n, err := s.repo.Count(ctx, models.AttemptFilter{UserID: "u1", Difficulty: models.Hard})
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *AttemptRepositorySuite) TestDuplicatePuzzleRejected() {
	s.insert("u1", "p1", models.Medium, true, 2)

	_, err := s.repo.Insert(context.Background(), models.Attempt{
		UserID: "u1", PuzzleID: "p1", Question: "q", Difficulty: models.Medium, NextDifficulty: models.Medium,
	})
	s.Error(err)
}

func (s *AttemptRepositorySuite) TestTierStats() {
	ctx := context.Background()
	s.insert("u1", "p1", models.Hard, true, 4)
	s.insert("u1", "p2", models.Medium, true, 2)
	s.insert("u1", "p3", models.Medium, false, 4)
	s.insert("u1", "p4", models.Easy, true, 1)
	s.insert("u2", "p5", models.Easy, false, 9)

	stats, err := s.repo.TierStats(ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(stats, 3)

	s.Equal(models.Easy, stats[0].Difficulty)
	s.Equal(1, stats[0].Attempts)
	s.Equal(1.0, stats[0].Accuracy)

	s.Equal(models.Medium, stats[1].Difficulty)
	s.Equal(2, stats[1].Attempts)
	s.Equal(1, stats[1].Correct)
	s.Equal(0.5, stats[1].Accuracy)
	s.Equal(3.0, stats[1].AverageResponseTime)

	s.Equal(models.Hard, stats[2].Difficulty)
}

func (s *AttemptRepositorySuite) TestTierStatsEmpty() {
	stats, err := s.repo.TierStats(context.Background(), "nobody")
	s.Require().NoError(err)
	s.Empty(stats)
}

func (s *AttemptRepositorySuite) TestDeleteForUser() {
	ctx := context.Background()
	s.insert("u1", "p1", models.Medium, true, 2)
	s.insert("u1", "p2", models.Medium, true, 2)
	s.insert("u2", "p3", models.Medium, true, 2)

	n, err := s.repo.DeleteForUser(ctx, "u1")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	left, err := s.repo.Count(ctx, models.AttemptFilter{})
	s.Require().NoError(err)
	s.Equal(1, left)
}

func TestAttemptRepositorySuite(t *testing.T) {
	suite.Run(t, new(AttemptRepositorySuite))
}
