package models

import "time"

// Attempt is the archived form of one answered puzzle.
type Attempt struct {
	ID             int64      `json:"id"`
	UserID         string     `json:"user_id"`
	PuzzleID       string     `json:"puzzle_id"`
	Question       string     `json:"question"`
	Difficulty     Difficulty `json:"difficulty"`
	NextDifficulty Difficulty `json:"next_difficulty"`
	Transition     Transition `json:"transition"`
	UserAnswer     float64    `json:"user_answer"`
	CorrectAnswer  int        `json:"correct_answer"`
	IsCorrect      bool       `json:"is_correct"`
	ResponseTime   float64    `json:"response_time"`
	CreatedAt      time.Time  `json:"created_at"`
}

type AttemptFilter struct {
	UserID     string
	Difficulty Difficulty
	Correct    *bool
	Limit      int
	Offset     int
}

// TierStat aggregates archived attempts for one tier.
type TierStat struct {
	Difficulty          Difficulty `json:"difficulty"`
	Attempts            int        `json:"attempts"`
	Correct             int        `json:"correct"`
	Accuracy            float64    `json:"accuracy"`
	AverageResponseTime float64    `json:"average_response_time"`
}
