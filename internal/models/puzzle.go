package models

import "time"

// Operation is the arithmetic operator of a puzzle.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "×"
	OpDivide   Operation = "÷"
)

// Apply evaluates left op right. Division is integer division; generated
// division puzzles never have a remainder.
func (o Operation) Apply(left, right int) int {
	switch o {
	case OpAdd:
		return left + right
	case OpSubtract:
		return left - right
	case OpMultiply:
		return left * right
	case OpDivide:
		if right == 0 {
			return 0
		}
		return left / right
	default:
		return 0
	}
}

// Puzzle is an issued question waiting for its single answer.
type Puzzle struct {
	ID            string     `json:"puzzle_id"`
	UserID        string     `json:"user_id"`
	Question      string     `json:"question"`
	CorrectAnswer int        `json:"-"`
	Operation     Operation  `json:"operation"`
	Left          int        `json:"-"`
	Right         int        `json:"-"`
	Difficulty    Difficulty `json:"difficulty"`
	IssuedAt      time.Time  `json:"issued_at"`
}
