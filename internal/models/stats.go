package models

// PerformanceStats is returned with every answer.
type PerformanceStats struct {
	TotalQuestions     int        `json:"total_questions"`
	CorrectAnswers     int        `json:"correct_answers"`
	Accuracy           float64    `json:"accuracy"`
	CurrentDifficulty  Difficulty `json:"current_difficulty"`
	ConsecutiveCorrect int        `json:"consecutive_correct"`
	ConsecutiveWrong   int        `json:"consecutive_wrong"`
}

type Summary struct {
	UserID              string       `json:"user_id"`
	TotalQuestions      int          `json:"total_questions"`
	CorrectAnswers      int          `json:"correct_answers"`
	Accuracy            float64      `json:"accuracy"`
	AverageResponseTime float64      `json:"average_response_time"`
	CurrentDifficulty   Difficulty   `json:"current_difficulty"`
	DifficultyHistory   []Difficulty `json:"difficulty_history"`
	Recommendation      string       `json:"recommendation"`
}

// Transition is the outcome of one adaptive decision.
type Transition string

const (
	TransitionPromote Transition = "promote"
	TransitionDemote  Transition = "demote"
	TransitionHold    Transition = "hold"
)

// AnswerResult is the response to a submitted answer.
type AnswerResult struct {
	IsCorrect      bool             `json:"is_correct"`
	CorrectAnswer  int              `json:"correct_answer"`
	NextDifficulty Difficulty       `json:"next_difficulty"`
	Transition     Transition       `json:"transition"`
	ResponseTime   float64          `json:"response_time"`
	Stats          PerformanceStats `json:"performance_stats"`
}
