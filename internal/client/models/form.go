package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/filex"
)

var (
	ErrImageRequired = errors.New("please upload a recipe image for new recipes")
	ErrImageType     = errors.New("invalid image file type, allowed: png, jpg, jpeg, gif")
	ErrImageMissing  = errors.New("image file not readable")
)

// RecipeForm is the add/edit form. RecipeID zero means a new recipe.
type RecipeForm struct {
	RecipeID     int64
	Title        string
	Description  string
	Ingredients  string
	Instructions string
	ImagePath    string
	ImageRemoved bool
}

// IsNew reports whether submitting the form creates a recipe.
func (f RecipeForm) IsNew() bool {
	return f.RecipeID == 0
}

// IngredientsValue is the normalized comma-joined list sent to the backend.
func (f RecipeForm) IngredientsValue() string {
	return common.JoinList(strings.Split(f.Ingredients, ","))
}

// Validate runs the client-side checks that must pass before any request is
// sent: a new recipe needs an image, and a given image must be an existing
// file of an allowed type.
func (f RecipeForm) Validate() error {
	if f.ImagePath == "" {
		if f.IsNew() {
			return ErrImageRequired
		}
		return nil
	}
	if !filex.HasExt(f.ImagePath, common.AllowedImageExtensions...) {
		return ErrImageType
	}
	if err := filex.RegularFile(f.ImagePath); err != nil {
		return fmt.Errorf("%w: %v", ErrImageMissing, err)
	}
	return nil
}

// FormFromRecipe pre-fills an edit form.
func FormFromRecipe(r Recipe) RecipeForm {
	return RecipeForm{
		RecipeID:     r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  strings.Join(r.Ingredients, ", "),
		Instructions: r.Instructions,
	}
}
