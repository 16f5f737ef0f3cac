package recipes

import (
	"context"
	"encoding/json"
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

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, recipes []models.Recipe, fetchedAt time.Time) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}

	for i, rec := range recipes {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode recipe %d: %w", rec.ID, err)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO recipes (id, payload, position, fetched_at) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET payload = excluded.payload,
				position = excluded.position, fetched_at = excluded.fetched_at
		`, rec.ID, payload, i, fetchedAt.Unix())
		if err != nil {
			return fmt.Errorf("failed to store recipe %d: %w", rec.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, payload FROM recipes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Recipe, 0)
	for rows.Next() {
		var (
			id      int64
			payload []byte
			rec     models.Recipe
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode recipe %d: %w", id, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete recipe %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("failed to clear recipes: %w", err)
	}
	return nil
}
