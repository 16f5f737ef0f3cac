package common

import "errors"

var (
	// ErrNotLoggedIn is returned by operations that need an authenticated user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotFound is returned when a recipe is missing from the local cache
	// and the backend.
	ErrNotFound = errors.New("not found")
)
