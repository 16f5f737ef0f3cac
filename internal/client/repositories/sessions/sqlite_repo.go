package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, cookies []models.SessionCookie) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}

	for _, c := range cookies {
		var expires int64
		if !c.Expires.IsZero() {
			expires = c.Expires.Unix()
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO sessions (name, value, path, domain, expires) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET value = excluded.value, path = excluded.path,
				domain = excluded.domain, expires = excluded.expires
		`, c.Name, c.Value, path, c.Domain, expires)
		if err != nil {
			return fmt.Errorf("failed to store session cookie %s: %w", c.Name, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.SessionCookie, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, value, path, domain, expires FROM sessions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list session cookies: %w", err)
	}
	defer rows.Close()

	var out []models.SessionCookie
	for rows.Next() {
		var (
			c       models.SessionCookie
			expires int64
		)
		if err := rows.Scan(&c.Name, &c.Value, &c.Path, &c.Domain, &expires); err != nil {
			return nil, fmt.Errorf("failed to scan session cookie: %w", err)
		}
		if expires > 0 {
			c.Expires = time.Unix(expires, 0)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session cookies: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("failed to clear session cookies: %w", err)
	}
	return nil
}
