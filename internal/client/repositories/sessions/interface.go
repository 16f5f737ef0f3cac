// Package sessions persists the backend session cookies so a restarted
// client can resume the previous login.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

type Repository interface {
	// ReplaceAll drops stored cookies and stores the given ones. Run it in
	// a transaction to make the swap atomic.
	ReplaceAll(ctx context.Context, cookies []models.SessionCookie) error
	List(ctx context.Context) ([]models.SessionCookie, error)
	Clear(ctx context.Context) error
}
