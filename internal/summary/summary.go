package summary

import (
	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/models"
)

const (
	excellentAbove = 0.8
	goodAbove      = 0.6

	recommendExcellent    = "Excellent! You're ready for more challenging problems!"
	recommendGood         = "Good progress! Keep practicing to improve consistency."
	recommendFundamentals = "Consider focusing on fundamental concepts. You'll get better with practice!"
)

// Recommend maps accuracy to advice. Both thresholds are exclusive.
func Recommend(accuracy float64) string {
	switch {
	case accuracy > excellentAbove:
		return recommendExcellent
	case accuracy > goodAbove:
		return recommendGood
	default:
		return recommendFundamentals
	}
}

// Summarize builds the full session summary. It fails with NO_DATA when no
// answer has been recorded yet.
func Summarize(s *models.Session) (*models.Summary, error) {
	if s == nil {
		return nil, errors.ErrSessionNotFound
	}
	if len(s.History) == 0 {
		return nil, errors.NewNoDataError(s.UserID)
	}

	total := len(s.History)
	correct := 0
	var elapsed float64
	tiers := make([]models.Difficulty, 0, total)
	for _, r := range s.History {
		if r.IsCorrect {
			correct++
		}
		elapsed += r.ResponseTime
		tiers = append(tiers, r.Difficulty)
	}
	accuracy := float64(correct) / float64(total)

	return &models.Summary{
		UserID:              s.UserID,
		TotalQuestions:      total,
		CorrectAnswers:      correct,
		Accuracy:            accuracy,
		AverageResponseTime: elapsed / float64(total),
		CurrentDifficulty:   s.CurrentDifficulty,
		DifficultyHistory:   tiers,
		Recommendation:      Recommend(accuracy),
	}, nil
}

// Stats returns running totals. Accuracy is zero for an empty history.
func Stats(s *models.Session) models.PerformanceStats {
	st := models.PerformanceStats{
		TotalQuestions:     len(s.History),
		CurrentDifficulty:  s.CurrentDifficulty,
		ConsecutiveCorrect: s.ConsecutiveCorrect,
		ConsecutiveWrong:   s.ConsecutiveWrong,
	}
	for _, r := range s.History {
		if r.IsCorrect {
			st.CorrectAnswers++
		}
	}
	if st.TotalQuestions > 0 {
		st.Accuracy = float64(st.CorrectAnswers) / float64(st.TotalQuestions)
	}
	return st
}
