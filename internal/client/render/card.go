// Package render turns cached recipes into cards and draws them as
// terminal text, HTML fragments or markdown details.
//
// A Card is built once from a recipe and the store; toggles are applied to
// the card in place so only the touched card is redrawn.
package render

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
)

const (
	NoRecipes        = "No recipes yet."
	NoSavedRecipes   = "No saved recipes yet."
	LoginToViewSaved = "Log in to view your saved recipes."
	NoIngredients    = "No ingredients listed."
	UnknownCreator   = "Unknown"
)

type Card struct {
	ID           int64
	Title        string
	Description  string
	CreatorEmail string
	Likes        int
	ImageURL     string
	Ingredients  []string
	Instructions string

	Saved bool
	Liked bool

	// ShowToggles is set for a logged-in user; ShowOwnerControls only for
	// the recipe's creator.
	ShowToggles       bool
	ShowOwnerControls bool
	Expanded          bool
}

func BuildCard(r models.Recipe, store *state.Store, baseURL string) Card {
	creator := r.CreatorEmail
	if creator == "" {
		creator = UnknownCreator
	}
	return Card{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		CreatorEmail:      creator,
		Likes:             r.Likes,
		ImageURL:          r.ImageURL(baseURL),
		Ingredients:       slices.Clone(r.Ingredients),
		Instructions:      r.Instructions,
		Saved:             store.IsSaved(r.ID),
		Liked:             store.IsLiked(r.ID),
		ShowToggles:       store.LoggedIn(),
		ShowOwnerControls: store.IsCreator(r),
	}
}

func Cards(recipes []models.Recipe, store *state.Store, baseURL string) []Card {
	out := make([]Card, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, BuildCard(r, store, baseURL))
	}
	return out
}

func (c *Card) ApplySave(saved bool) {
	c.Saved = saved
}

func (c *Card) ApplyLike(liked bool, likes int) {
	c.Liked = liked
	c.Likes = likes
}

func (c *Card) ToggleDetails() {
	c.Expanded = !c.Expanded
}

func (c Card) SaveLabel() string {
	if c.Saved {
		return "Unsave"
	}
	return "Save"
}

func (c Card) LikeLabel() string {
	if c.Liked {
		return "Unlike"
	}
	return "Like"
}

// LikeAriaLabel mirrors the accessible name of the like button.
func (c Card) LikeAriaLabel() string {
	if c.Liked {
		return "Unlike recipe"
	}
	return "Like recipe"
}

func (c Card) DetailsLabel() string {
	if c.Expanded {
		return "Hide Details"
	}
	return "View Details"
}

func (c Card) LikesText() string {
	return fmt.Sprintf("Likes: %d", c.Likes)
}

func (c Card) ByText() string {
	return "By: " + c.CreatorEmail
}

// Find returns the index of the card for id, or -1.
func Find(cards []Card, id int64) int {
	return slices.IndexFunc(cards, func(c Card) bool { return c.ID == id })
}
