package models

import "time"

type Session struct {
	UserID             string         `json:"user_id"`
	CurrentDifficulty  Difficulty     `json:"current_difficulty"`
	InitialDifficulty  Difficulty     `json:"initial_difficulty"`
	ConsecutiveCorrect int            `json:"consecutive_correct"`
	ConsecutiveWrong   int            `json:"consecutive_wrong"`
	History            []AnswerRecord `json:"history"`
	CreatedAt          time.Time      `json:"created_at"`
}

// AnswerRecord is appended once per submitted answer. Difficulty is the tier
// the question was posed at, before any transition.
type AnswerRecord struct {
	IsCorrect    bool       `json:"is_correct"`
	ResponseTime float64    `json:"response_time"` // seconds
	Difficulty   Difficulty `json:"difficulty"`
}

// NewSession returns a fresh session at the given tier.
func NewSession(userID string, initial Difficulty) *Session {
	return &Session{
		UserID:            userID,
		CurrentDifficulty: initial,
		InitialDifficulty: initial,
		History:           []AnswerRecord{},
		CreatedAt:         time.Now(),
	}
}

// Clone returns a deep copy so readers never share the history slice.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.History = make([]AnswerRecord, len(s.History))
	copy(c.History, s.History)
	return &c
}
