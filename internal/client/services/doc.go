// Package services contains application services for the recipeshare client.
//
// AuthService owns the session: login, register, logout, the status check at
// startup, and the per-user liked/saved sets. RecipeService owns the recipe
// cache: listing with an offline snapshot, add/edit, the two-step delete,
// and the like/save toggles.
//
// Both services write through the injected *state.Store. Sets and like counts
// change only after the backend confirmed a toggle.
package services
