package adaptive

import (
	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/models"
)

// Policy holds the tier-transition thresholds.
type Policy struct {
	// FastResponseSeconds gates promotion: a correct answer only counts
	// toward promotion when answered strictly faster than this.
	FastResponseSeconds float64
	// PromoteStreak is the consecutive-correct count that triggers promotion.
	PromoteStreak int
	// DemoteStreak is the consecutive-wrong count that triggers demotion.
	DemoteStreak int
}

// DefaultPolicy returns the canonical rule set.
func DefaultPolicy() Policy {
	return Policy{
		FastResponseSeconds: 5,
		PromoteStreak:       2,
		DemoteStreak:        2,
	}
}

// Decision is the outcome of one answer.
type Decision struct {
	Previous   models.Difficulty
	Next       models.Difficulty
	Transition models.Transition
}

type Controller struct {
	policy Policy
}

func NewController(p Policy) *Controller {
	return &Controller{policy: p}
}

func (c *Controller) Policy() Policy {
	return c.policy
}

// Decide records one answer on the session and moves it at most one tier.
// The caller must hold whatever lock guards s.
func (c *Controller) Decide(s *models.Session, isCorrect bool, responseTime float64) (Decision, error) {
	if s == nil {
		return Decision{}, errors.ErrSessionNotFound
	}
	if responseTime < 0 {
		responseTime = 0
	}

	current := s.CurrentDifficulty
	if isCorrect {
		s.ConsecutiveCorrect++
		s.ConsecutiveWrong = 0
	} else {
		s.ConsecutiveWrong++
		s.ConsecutiveCorrect = 0
	}

	s.History = append(s.History, models.AnswerRecord{
		IsCorrect:    isCorrect,
		ResponseTime: responseTime,
		Difficulty:   current,
	})

	d := Decision{Previous: current, Next: current, Transition: models.TransitionHold}

	// Promotion and demotion depend on opposite outcomes, so at most one fires.
	switch {
	case isCorrect && responseTime < c.policy.FastResponseSeconds && s.ConsecutiveCorrect >= c.policy.PromoteStreak:
		if next := current.Promote(); next != current {
			s.CurrentDifficulty = next
			s.ConsecutiveCorrect = 0
			d.Next, d.Transition = next, models.TransitionPromote
		}
	case !isCorrect && s.ConsecutiveWrong >= c.policy.DemoteStreak:
		if next := current.Demote(); next != current {
			s.CurrentDifficulty = next
			s.ConsecutiveWrong = 0
			d.Next, d.Transition = next, models.TransitionDemote
		}
	}
	return d, nil
}
