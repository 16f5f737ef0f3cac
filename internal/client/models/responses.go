package models

// MessageResponse is the generic {"message": ...} body used by most endpoints,
// including error responses.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Message   string `json:"message"`
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
}

func (r AuthResponse) User() User {
	return User{ID: r.UserID, Email: r.UserEmail}
}

// StatusResponse is returned by GET /api/auth/status.
type StatusResponse struct {
	LoggedIn  bool   `json:"loggedIn"`
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// RecipeResponse is returned by recipe create and update.
type RecipeResponse struct {
	Message string  `json:"message"`
	Recipe  *Recipe `json:"recipe,omitempty"`
}

// ToggleSaveResponse carries the new saved state after a save toggle.
type ToggleSaveResponse struct {
	Message string `json:"message"`
	Saved   bool   `json:"saved"`
}

// ToggleLikeResponse carries the new liked state and like count.
type ToggleLikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
	Likes   int    `json:"likes"`
}

// LikedStatus lists the current user's liked recipe ids.
type LikedStatus struct {
	LikedRecipeIDs []int64 `json:"likedRecipeIds"`
}

// SavedStatus lists the current user's saved recipe ids.
type SavedStatus struct {
	SavedRecipeIDs []int64 `json:"savedRecipeIds"`
}
