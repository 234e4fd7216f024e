package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"file:x.db?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL",
		dsn("file:x.db"))
	assert.Equal(t,
		"file:mem?mode=memory&cache=shared&_busy_timeout=5000&_foreign_keys=on",
		dsn("file:mem?mode=memory&cache=shared"))
}

func TestOpen_AppliesMigrationsOnce(t *testing.T) {
	path := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	database, err := Open(path)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	require.NoError(t, database.Check(ctx))

	var n int
	require.NoError(t, database.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)

	require.NoError(t, database.applyMigrations(ctx))
	require.NoError(t, database.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)

	_, err = database.ExecContext(ctx, `SELECT id, user_id, puzzle_id FROM attempts LIMIT 1`)
	assert.NoError(t, err)
}
