package sqlite

import (
	"github.com/Masterminds/squirrel"
	"github.com/vytor/mathadventures/internal/models"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// attemptWhere narrows a query to the filter's non-zero fields.
func attemptWhere(q squirrel.SelectBuilder, f models.AttemptFilter) squirrel.SelectBuilder {
	if f.UserID != "" {
		q = q.Where(squirrel.Eq{"user_id": f.UserID})
	}
	if f.Difficulty != "" {
		q = q.Where(squirrel.Eq{"difficulty": string(f.Difficulty)})
	}
	if f.Correct != nil {
		q = q.Where(squirrel.Eq{"is_correct": *f.Correct})
	}
	return q
}
