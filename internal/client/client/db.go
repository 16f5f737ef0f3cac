package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeshare/internal/client/migrations"
	"github.com/dmitrijs2005/recipeshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipeshare/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipeshare/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/recipeshare/internal/dbx"
	"github.com/dmitrijs2005/recipeshare/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Repositories groups the local stores built on one database handle.
type Repositories struct {
	DB       *sql.DB
	Metadata metadata.Repository
	Sessions sessions.Repository
	Recipes  recipes.Repository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
		Sessions: sessions.NewSQLiteRepository(db),
		Recipes:  recipes.NewSQLiteRepository(db),
	}
}

// WithTx runs fn with repositories bound to a single transaction.
func (r *Repositories) WithTx(ctx context.Context, fn func(ctx context.Context, tx *Repositories) error) error {
	return dbx.WithTx(ctx, r.DB, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &Repositories{
			DB:       r.DB,
			Metadata: metadata.NewSQLiteRepository(tx),
			Sessions: sessions.NewSQLiteRepository(tx),
			Recipes:  recipes.NewSQLiteRepository(tx),
		})
	})
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the sqlite database at dsn and
// applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}
