// Package client contains client-side building blocks for recipeshare.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface) for the recipe backend:
//     auth (Status/Login/Register/Logout), recipe CRUD, like and save
//     toggles, and the per-user liked/saved status lists.
//  2. A concrete HTTP implementation (see HTTPClient). It keeps the backend
//     session in a cookie jar, tags every request with an X-Request-ID, and
//     maps non-2xx responses to *APIError.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrBadResponse,
// ErrLocalDataNotAvailable. An *APIError matches ErrUnauthorized for 401/403
// and ErrNotFound for 404; its Message is the backend's own text.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; a per-request timeout is applied on top of it.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
package client
