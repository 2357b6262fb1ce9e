package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vytor/founderlab/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// Foreign keys are enabled and the pool is pinned to one connection, so the
// in-memory database lives as long as the returned handle.
func NewTestDB(t *testing.T, opts ...db.Option) *db.DB {
	t.Helper()
	ctx := context.Background()

	d, err := db.Open(ctx, db.DriverSQLite, "file::memory:", opts...)
	require.NoError(t, err)
	require.NoError(t, d.Migrate(ctx))
	return d
}

// FixedClock returns a db option whose clock always reports ts.
func FixedClock(ts time.Time) db.Option {
	return db.WithClock(func() time.Time { return ts })
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// CountRows returns the number of rows in table matching where (optional).
func CountRows(t *testing.T, d *db.DB, table, where string, args ...any) int {
	t.Helper()
	q := "SELECT COUNT(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, d.GetContext(context.Background(), &n, q, args...))
	return n
}
