// Package testdb provides helpers for integration tests that run
// against a real PostgreSQL database. Tests using it skip themselves
// unless QUILLFEED_TEST_DATABASE_URL is set, so the unit suite stays
// runnable without any infrastructure.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/quillfeed/quillfeed-api/migrations"
)

// envURL names the environment variable carrying the test database
// connection string.
const envURL = "QUILLFEED_TEST_DATABASE_URL"

const pingTimeout = 5 * time.Second

// URL returns the test database connection string, or empty when no
// test database is configured.
func URL() string {
	return os.Getenv(envURL)
}

// New opens a connection to the test database, applies all migrations,
// and registers cleanup. The test is skipped when no test database is
// configured.
func New(t *testing.T) *sql.DB {
	t.Helper()

	dsn := URL()
	if dsn == "" {
		t.Skipf("skipping: %s not set", envURL)
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "ping test database")

	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."), "apply migrations")

	return db
}

// Reset empties the mutable tables while keeping seeded topics and
// users in place. Identities restart so tests can rely on ids
// starting from 1.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec("TRUNCATE articles, comments RESTART IDENTITY CASCADE")
	require.NoError(t, err, "reset test database")
}
