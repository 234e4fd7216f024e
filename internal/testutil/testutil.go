package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vytor/mathadventures/internal/db"
	"github.com/vytor/mathadventures/internal/puzzle"
)

// NewTestDB opens an isolated in-memory SQLite database with all migrations
// applied. Each call gets its own named shared-cache database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open("file:test-" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	return database.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// SeededGenerator returns a puzzle generator with a fixed seed.
func SeededGenerator() *puzzle.Generator {
	return puzzle.NewSeeded(20240601)
}
