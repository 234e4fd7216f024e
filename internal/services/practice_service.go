package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/mathadventures/internal/adaptive"
	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/jobs"
	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/puzzle"
	"github.com/vytor/mathadventures/internal/repository"
	"github.com/vytor/mathadventures/internal/summary"
)

// AnswerTolerance is the largest difference still accepted as correct.
const AnswerTolerance = 1e-3

// ProblemGenerator produces a problem for a tier.
type ProblemGenerator interface {
	Generate(d models.Difficulty) (puzzle.Problem, error)
}

// SubmitInput carries one answer. A nil ResponseTime means the server
// measures the time since the puzzle was issued.
type SubmitInput struct {
	UserID       string
	PuzzleID     string
	UserAnswer   float64
	ResponseTime *float64
}

// PracticeService issues puzzles and grades answers
type PracticeService interface {
	RequestPuzzle(ctx context.Context, userID string, difficulty *models.Difficulty) (*models.Puzzle, error)
	SubmitAnswer(ctx context.Context, in SubmitInput) (*models.AnswerResult, error)
}

type practiceService struct {
	sessions   repository.SessionRepository
	puzzles    repository.PuzzleRepository
	generator  ProblemGenerator
	controller *adaptive.Controller
	queue      jobs.JobQueue
}

// NewPracticeService creates a new PracticeService. queue may be nil, in
// which case answers are not archived.
func NewPracticeService(
	sessions repository.SessionRepository,
	puzzles repository.PuzzleRepository,
	generator ProblemGenerator,
	controller *adaptive.Controller,
	queue jobs.JobQueue,
) PracticeService {
	return &practiceService{
		sessions:   sessions,
		puzzles:    puzzles,
		generator:  generator,
		controller: controller,
		queue:      queue,
	}
}

func (s *practiceService) RequestPuzzle(ctx context.Context, userID string, difficulty *models.Difficulty) (*models.Puzzle, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	tier := session.CurrentDifficulty
	if difficulty != nil {
		tier = *difficulty
	}

	problem, err := s.generator.Generate(tier)
	if err != nil {
		return nil, err
	}

	p := models.Puzzle{
		ID:            uuid.NewString(),
		UserID:        userID,
		Question:      problem.Question,
		CorrectAnswer: problem.Answer,
		Operation:     problem.Operation,
		Left:          problem.Left,
		Right:         problem.Right,
		Difficulty:    tier,
		IssuedAt:      time.Now(),
	}
	if err := s.puzzles.Put(ctx, p); err != nil {
		log.Error("failed to store puzzle: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("puzzle issued: user_id=%s, puzzle_id=%s, difficulty=%s", userID, p.ID, tier)
	return &p, nil
}

func (s *practiceService) SubmitAnswer(ctx context.Context, in SubmitInput) (*models.AnswerResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: user_id=%s, puzzle_id=%s", in.UserID, in.PuzzleID)

	if in.ResponseTime != nil && (*in.ResponseTime < 0 || math.IsNaN(*in.ResponseTime)) {
		return nil, errors.NewValidationError("response_time", "must be a non-negative number of seconds")
	}
	if math.IsNaN(in.UserAnswer) || math.IsInf(in.UserAnswer, 0) {
		return nil, errors.NewValidationError("user_answer", "must be a finite number")
	}

	p, err := s.puzzles.Take(ctx, in.PuzzleID, in.UserID)
	if err != nil {
		return nil, err
	}

	responseTime := time.Since(p.IssuedAt).Seconds()
	if in.ResponseTime != nil {
		responseTime = *in.ResponseTime
	}
	isCorrect := math.Abs(in.UserAnswer-float64(p.CorrectAnswer)) < AnswerTolerance

	var decision adaptive.Decision
	var stats models.PerformanceStats
	err = s.sessions.Update(ctx, in.UserID, func(session *models.Session) error {
		var derr error
		decision, derr = s.controller.Decide(session, isCorrect, responseTime)
		if derr != nil {
			return derr
		}
		stats = summary.Stats(session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if decision.Transition != models.TransitionHold {
		log.Info("tier %s: user_id=%s, %s -> %s", decision.Transition, in.UserID, decision.Previous, decision.Next)
	}

	s.archive(ctx, models.Attempt{
		UserID:         in.UserID,
		PuzzleID:       p.ID,
		Question:       p.Question,
		Difficulty:     p.Difficulty,
		NextDifficulty: decision.Next,
		Transition:     decision.Transition,
		UserAnswer:     in.UserAnswer,
		CorrectAnswer:  p.CorrectAnswer,
		IsCorrect:      isCorrect,
		ResponseTime:   responseTime,
		CreatedAt:      time.Now(),
	})

	return &models.AnswerResult{
		IsCorrect:      isCorrect,
		CorrectAnswer:  p.CorrectAnswer,
		NextDifficulty: decision.Next,
		Transition:     decision.Transition,
		ResponseTime:   responseTime,
		Stats:          stats,
	}, nil
}

// archive never fails the submission; the archive is best effort.
func (s *practiceService) archive(ctx context.Context, a models.Attempt) {
	if s.queue == nil {
		return
	}
	if err := s.queue.EnqueueArchive(a); err != nil {
		logger.FromContext(ctx).Warn("failed to enqueue attempt archive: puzzle_id=%s: %v", a.PuzzleID, err)
	}
}
