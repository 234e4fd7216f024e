package puzzle

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/models"
)

// Operand ranges per tier, inclusive on both ends.
var (
	easyRange           = span{1, 9}
	mediumAddRange      = span{10, 50}
	mediumMultiplyRange = span{2, 12}
	hardAddRange        = span{50, 100}
	hardMultiplyRange   = span{5, 20}
	divisorRange        = span{2, 12}
	quotientRange       = span{2, 12}
)

type span struct{ lo, hi int }

// Problem is a generated question together with the operands it was built from.
type Problem struct {
	Question   string
	Answer     int
	Operation  models.Operation
	Left       int
	Right      int
	Difficulty models.Difficulty
}

// Generator produces arithmetic problems for a tier. Output is fully
// determined by the random source it was built with.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a reproducible Generator. A zero seed uses the clock.
func NewSeeded(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate draws a problem for the given tier.
func (g *Generator) Generate(d models.Difficulty) (Problem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var p Problem
	switch d {
	case models.Easy:
		p = g.easy()
	case models.Medium:
		p = g.medium()
	case models.Hard:
		p = g.hard()
	default:
		return Problem{}, errors.NewValidationError("difficulty", fmt.Sprintf("unknown tier %q", d))
	}
	p.Difficulty = d
	p.Answer = p.Operation.Apply(p.Left, p.Right)
	p.Question = fmt.Sprintf("%d %s %d = ?", p.Left, p.Operation, p.Right)
	return p, nil
}

func (g *Generator) easy() Problem {
	a, b := g.draw(easyRange), g.draw(easyRange)
	if g.rng.IntN(2) == 0 {
		return Problem{Operation: models.OpAdd, Left: a, Right: b}
	}
	return subtraction(a, b)
}

func (g *Generator) medium() Problem {
	switch g.rng.IntN(3) {
	case 0:
		return Problem{Operation: models.OpAdd, Left: g.draw(mediumAddRange), Right: g.draw(mediumAddRange)}
	case 1:
		return subtraction(g.draw(mediumAddRange), g.draw(mediumAddRange))
	default:
		return Problem{Operation: models.OpMultiply, Left: g.draw(mediumMultiplyRange), Right: g.draw(mediumMultiplyRange)}
	}
}

func (g *Generator) hard() Problem {
	switch g.rng.IntN(4) {
	case 0:
		return Problem{Operation: models.OpAdd, Left: g.draw(hardAddRange), Right: g.draw(hardAddRange)}
	case 1:
		return subtraction(g.draw(hardAddRange), g.draw(hardAddRange))
	case 2:
		return Problem{Operation: models.OpMultiply, Left: g.draw(hardMultiplyRange), Right: g.draw(hardMultiplyRange)}
	default:
		divisor := g.draw(divisorRange)
		quotient := g.draw(quotientRange)
		return Problem{Operation: models.OpDivide, Left: divisor * quotient, Right: divisor}
	}
}

func (g *Generator) draw(s span) int {
	return s.lo + g.rng.IntN(s.hi-s.lo+1)
}

// subtraction puts the larger operand first so the result is never negative.
func subtraction(a, b int) Problem {
	if b > a {
		a, b = b, a
	}
	return Problem{Operation: models.OpSubtract, Left: a, Right: b}
}
