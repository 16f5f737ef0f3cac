package sessions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE sessions (
  name    TEXT PRIMARY KEY,
  value   TEXT NOT NULL,
  path    TEXT NOT NULL DEFAULT '/',
  domain  TEXT NOT NULL DEFAULT '',
  expires INTEGER NOT NULL DEFAULT 0
);`)
	require.NoError(t, err)
	return db
}

func TestReplaceAll_ThenList(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	exp := time.Unix(1_900_000_000, 0)

	require.NoError(t, r.ReplaceAll(ctx, []models.SessionCookie{
		{Name: "session", Value: "abc"},
		{Name: "remember", Value: "1", Path: "/api", Domain: "example.com", Expires: exp},
	}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.SessionCookie{Name: "remember", Value: "1", Path: "/api", Domain: "example.com", Expires: exp}, got[0])
	assert.Equal(t, models.SessionCookie{Name: "session", Value: "abc", Path: "/"}, got[1])
}

func TestReplaceAll_DropsPreviousCookies(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.ReplaceAll(ctx, []models.SessionCookie{{Name: "old", Value: "1"}}))
	require.NoError(t, r.ReplaceAll(ctx, []models.SessionCookie{{Name: "session", Value: "2"}}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "session", got[0].Name)
}

func TestReplaceAll_InsideTxRollsBack(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteRepository(db).ReplaceAll(ctx, []models.SessionCookie{{Name: "session", Value: "keep"}}))

	err := dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := NewSQLiteRepository(tx).ReplaceAll(ctx, []models.SessionCookie{{Name: "session", Value: "new"}}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	got, err := NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].Value)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.ReplaceAll(ctx, []models.SessionCookie{{Name: "session", Value: "x"}}))
	require.NoError(t, r.Clear(ctx))

	got, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	require.ErrorContains(t, r.Clear(ctx), "failed to clear session cookies")
	_, err := r.List(ctx)
	require.ErrorContains(t, err, "failed to list session cookies")
}
