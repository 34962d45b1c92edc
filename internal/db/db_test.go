package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	conn, err := Init("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })

	require.NoError(t, RunMigrations(conn.DB, "sqlite"))

	var tables []string
	err = conn.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('sessions', 'plan_snapshots') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"plan_snapshots", "sessions"}, tables)

	// Re-running is a no-op.
	require.NoError(t, RunMigrations(conn.DB, "sqlite"))
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", dialect("sqlite"))
	assert.Equal(t, "postgres", dialect("pgx"))
	assert.Equal(t, "mysql", dialect("mysql"))
}
