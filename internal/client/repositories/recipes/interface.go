// Package recipes keeps the last recipe list fetched from the backend so
// the client can still show something when the server is unreachable.
package recipes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

type Repository interface {
	// ReplaceAll swaps the snapshot for recipes, preserving their order.
	ReplaceAll(ctx context.Context, recipes []models.Recipe, fetchedAt time.Time) error
	List(ctx context.Context) ([]models.Recipe, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
