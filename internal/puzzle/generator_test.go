package puzzle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/mathadventures/internal/errors"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/puzzle"
)

const samples = 2000

func generateMany(t *testing.T, d models.Difficulty) []puzzle.Problem {
	t.Helper()
	g := puzzle.NewSeeded(42)
	out := make([]puzzle.Problem, 0, samples)
	for i := 0; i < samples; i++ {
		p, err := g.Generate(d)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func within(t *testing.T, v, lo, hi int, msgAndArgs ...any) {
	t.Helper()
	assert.GreaterOrEqual(t, v, lo, msgAndArgs...)
	assert.LessOrEqual(t, v, hi, msgAndArgs...)
}

func TestGenerate_AnswerMatchesOperands(t *testing.T) {
	for _, d := range models.Difficulties() {
		t.Run(d.String(), func(t *testing.T) {
			for _, p := range generateMany(t, d) {
				assert.Equal(t, p.Operation.Apply(p.Left, p.Right), p.Answer)
				assert.Equal(t, fmt.Sprintf("%d %s %d = ?", p.Left, p.Operation, p.Right), p.Question)
				assert.Equal(t, d, p.Difficulty)
			}
		})
	}
}

func TestGenerate_QuestionTextRoundTrip(t *testing.T) {
	for _, d := range models.Difficulties() {
		for _, p := range generateMany(t, d) {
			var left, right int
			var op string
			_, err := fmt.Sscanf(p.Question, "%d %s %d = ?", &left, &op, &right)
			require.NoError(t, err, p.Question)
			assert.Equal(t, p.Answer, models.Operation(op).Apply(left, right), p.Question)
		}
	}
}

func TestGenerate_Easy(t *testing.T) {
	ops := map[models.Operation]int{}
	for _, p := range generateMany(t, models.Easy) {
		ops[p.Operation]++
		within(t, p.Left, 1, 9)
		within(t, p.Right, 1, 9)
		assert.Contains(t, []models.Operation{models.OpAdd, models.OpSubtract}, p.Operation)
	}
	assert.Positive(t, ops[models.OpAdd])
	assert.Positive(t, ops[models.OpSubtract])
}

func TestGenerate_Medium(t *testing.T) {
	ops := map[models.Operation]int{}
	for _, p := range generateMany(t, models.Medium) {
		ops[p.Operation]++
		switch p.Operation {
		case models.OpAdd, models.OpSubtract:
			within(t, p.Left, 10, 50)
			within(t, p.Right, 10, 50)
		case models.OpMultiply:
			within(t, p.Left, 2, 12)
			within(t, p.Right, 2, 12)
		default:
			t.Fatalf("unexpected medium operation %q", p.Operation)
		}
	}
	assert.Len(t, ops, 3)
}

func TestGenerate_Hard(t *testing.T) {
	ops := map[models.Operation]int{}
	for _, p := range generateMany(t, models.Hard) {
		ops[p.Operation]++
		switch p.Operation {
		case models.OpAdd, models.OpSubtract:
			within(t, p.Left, 50, 100)
			within(t, p.Right, 50, 100)
		case models.OpMultiply:
			within(t, p.Left, 5, 20)
			within(t, p.Right, 5, 20)
		case models.OpDivide:
			within(t, p.Right, 2, 12)
			within(t, p.Answer, 2, 12)
		}
	}
	assert.Len(t, ops, 4)
}

func TestGenerate_DivisionIsExact(t *testing.T) {
	for _, p := range generateMany(t, models.Hard) {
		if p.Operation != models.OpDivide {
			continue
		}
		assert.Zero(t, p.Left%p.Right, p.Question)
		assert.Equal(t, p.Left, p.Answer*p.Right, p.Question)
	}
}

func TestGenerate_SubtractionNeverNegative(t *testing.T) {
	for _, d := range models.Difficulties() {
		for _, p := range generateMany(t, d) {
			if p.Operation == models.OpSubtract {
				assert.GreaterOrEqual(t, p.Left, p.Right, p.Question)
				assert.GreaterOrEqual(t, p.Answer, 0, p.Question)
			}
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := puzzle.NewSeeded(7)
	b := puzzle.NewSeeded(7)

	for i := 0; i < 100; i++ {
		d := models.Difficulties()[i%3]
		pa, err := a.Generate(d)
		require.NoError(t, err)
		pb, err := b.Generate(d)
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	}
}

func TestGenerate_UnknownTier(t *testing.T) {
	_, err := puzzle.NewSeeded(1).Generate(models.Difficulty("EXTREME"))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}
