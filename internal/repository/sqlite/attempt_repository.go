package sqlite

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/vytor/mathadventures/internal/logger"
	"github.com/vytor/mathadventures/internal/models"
	"github.com/vytor/mathadventures/internal/repository"
)

type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new AttemptRepository implementation
func NewAttemptRepository(db *sql.DB) repository.AttemptRepository {
	return &attemptRepository{db: db}
}

var attemptColumns = []string{
	"id", "user_id", "puzzle_id", "question", "difficulty", "next_difficulty", "transition",
	"user_answer", "correct_answer", "is_correct", "response_time", "created_at",
}

func (r *attemptRepository) Insert(ctx context.Context, a models.Attempt) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("inserting attempt: user_id=%s, puzzle_id=%s", a.UserID, a.PuzzleID)

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.Transition == "" {
		a.Transition = models.TransitionHold
	}

	query, args, err := sqlBuilder.Insert("attempts").
		Columns(attemptColumns[1:]...).
		Values(a.UserID, a.PuzzleID, a.Question, string(a.Difficulty), string(a.NextDifficulty), string(a.Transition),
			a.UserAnswer, a.CorrectAnswer, a.IsCorrect, a.ResponseTime, a.CreatedAt).
		ToSql()
	if err != nil {
		log.Error("failed to build insert: %v", err)
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert attempt: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get attempt id: %v", err)
		return 0, err
	}
	log.Debug("attempt inserted: id=%d", id)
	return id, nil
}

func (r *attemptRepository) List(ctx context.Context, filter models.AttemptFilter) ([]models.Attempt, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("listing attempts: user_id=%s, difficulty=%s, limit=%d, offset=%d",
		filter.UserID, filter.Difficulty, filter.Limit, filter.Offset)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := attemptWhere(sqlBuilder.Select(attemptColumns...).From("attempts"), filter).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	attempts := []models.Attempt{}
	for rows.Next() {
		var a models.Attempt
		var difficulty, next, transition string
		if err := rows.Scan(&a.ID, &a.UserID, &a.PuzzleID, &a.Question, &difficulty, &next, &transition,
			&a.UserAnswer, &a.CorrectAnswer, &a.IsCorrect, &a.ResponseTime, &a.CreatedAt); err != nil {
			log.Error("failed to scan attempt row: %v", err)
			return nil, err
		}
		a.Difficulty = models.Difficulty(difficulty)
		a.NextDifficulty = models.Difficulty(next)
		a.Transition = models.Transition(transition)
		attempts = append(attempts, a)
	}
	log.Debug("found %d attempts", len(attempts))
	return attempts, rows.Err()
}

func (r *attemptRepository) Count(ctx context.Context, filter models.AttemptFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")

	sqlStr, args, err := attemptWhere(sqlBuilder.Select("COUNT(*)").From("attempts"), filter).ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var n int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&n); err != nil {
		log.Error("failed to count attempts: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *attemptRepository) TierStats(ctx context.Context, userID string) ([]models.TierStat, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("computing tier stats: user_id=%s", userID)

	sqlStr, args, err := sqlBuilder.
		Select("difficulty", "COUNT(*)", "COALESCE(SUM(is_correct), 0)", "COALESCE(AVG(response_time), 0)").
		From("attempts").
		Where("user_id = ?", userID).
		GroupBy("difficulty").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query tier stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	stats := []models.TierStat{}
	for rows.Next() {
		var st models.TierStat
		var difficulty string
		if err := rows.Scan(&difficulty, &st.Attempts, &st.Correct, &st.AverageResponseTime); err != nil {
			log.Error("failed to scan tier stat row: %v", err)
			return nil, err
		}
		st.Difficulty = models.Difficulty(difficulty)
		if st.Attempts > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Attempts)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Difficulty.Rank() < stats[j].Difficulty.Rank()
	})
	return stats, nil
}

func (r *attemptRepository) DeleteForUser(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")

	sqlStr, args, err := sqlBuilder.Delete("attempts").Where("user_id = ?", userID).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to delete attempts: %v", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	log.Debug("deleted %d attempts for user_id=%s", n, userID)
	return n, nil
}
