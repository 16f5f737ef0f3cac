// Package metadata is a small key/value store for client bookkeeping: the
// last email used to log in, the server a stored session belongs to, and
// when the recipe snapshot was taken.
package metadata

import (
	"context"
	"time"
)

type Key string

const (
	KeyLastEmail  Key = "last_email"
	KeyServerURL  Key = "server_url"
	KeySnapshotAt Key = "snapshot_at"
)

type Repository interface {
	Get(ctx context.Context, key Key) ([]byte, error)
	Set(ctx context.Context, key Key, value []byte) error
	Delete(ctx context.Context, key Key) error
	List(ctx context.Context) (map[Key][]byte, error)
	Clear(ctx context.Context) error

	GetString(ctx context.Context, key Key) (string, error)
	SetString(ctx context.Context, key Key, value string) error
	GetTime(ctx context.Context, key Key) (time.Time, error)
	SetTime(ctx context.Context, key Key, t time.Time) error
}
