package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/mathadventures/internal/models"
)

func TestDifficulty_PromoteDemote(t *testing.T) {
	tests := []struct {
		in      models.Difficulty
		promote models.Difficulty
		demote  models.Difficulty
	}{
		{models.Easy, models.Medium, models.Easy},
		{models.Medium, models.Hard, models.Easy},
		{models.Hard, models.Hard, models.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.promote, tt.in.Promote())
			assert.Equal(t, tt.demote, tt.in.Demote())
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	d, ok := models.ParseDifficulty(" easy ")
	assert.True(t, ok)
	assert.Equal(t, models.Easy, d)

	_, ok = models.ParseDifficulty("EXTREME")
	assert.False(t, ok)
}

func TestDifficulty_Rank(t *testing.T) {
	assert.Less(t, models.Easy.Rank(), models.Medium.Rank())
	assert.Less(t, models.Medium.Rank(), models.Hard.Rank())
	assert.Equal(t, -1, models.Difficulty("NOPE").Rank())
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := models.NewSession("u1", models.Medium)
	s.History = append(s.History, models.AnswerRecord{IsCorrect: true, ResponseTime: 1, Difficulty: models.Medium})

	c := s.Clone()
	c.History[0].IsCorrect = false
	c.CurrentDifficulty = models.Hard

	assert.True(t, s.History[0].IsCorrect)
	assert.Equal(t, models.Medium, s.CurrentDifficulty)
}

func TestOperation_Apply(t *testing.T) {
	assert.Equal(t, 12, models.OpAdd.Apply(5, 7))
	assert.Equal(t, 3, models.OpSubtract.Apply(10, 7))
	assert.Equal(t, 42, models.OpMultiply.Apply(6, 7))
	assert.Equal(t, 6, models.OpDivide.Apply(42, 7))
	assert.Equal(t, 0, models.OpDivide.Apply(42, 0))
}
