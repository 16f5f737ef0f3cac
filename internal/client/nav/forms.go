package nav

import (
	"errors"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

// AuthForm derives the auth screen texts from the mode kept in the store.
type AuthForm struct {
	store *state.Store
}

func NewAuthForm(store *state.Store) *AuthForm {
	return &AuthForm{store: store}
}

func (f *AuthForm) Mode() state.AuthMode { return f.store.AuthMode() }

func (f *AuthForm) IsLogin() bool { return f.Mode() == state.AuthModeLogin }

func (f *AuthForm) Toggle() {
	if f.IsLogin() {
		f.store.SetAuthMode(state.AuthModeRegister)
		return
	}
	f.store.SetAuthMode(state.AuthModeLogin)
}

// Reset returns the form to login mode.
func (f *AuthForm) Reset() {
	f.store.SetAuthMode(state.AuthModeLogin)
}

func (f *AuthForm) Title() string {
	if f.IsLogin() {
		return "Login"
	}
	return "Register"
}

func (f *AuthForm) SubmitLabel() string { return f.Title() }

func (f *AuthForm) ToggleText() string {
	if f.IsLogin() {
		return "Don't have an account?"
	}
	return "Already have an account?"
}

func (f *AuthForm) ToggleLabel() string {
	if f.IsLogin() {
		return "Register here"
	}
	return "Login here"
}

// ConfirmRequired reports whether the password confirmation is asked for.
func (f *AuthForm) ConfirmRequired() bool { return !f.IsLogin() }

// Check validates the input before any request: in register mode both
// passwords must match.
func (f *AuthForm) Check(password, confirm string) error {
	if f.ConfirmRequired() && password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// RecipeForm is the add/edit screen state.
type RecipeForm struct {
	Form models.RecipeForm
}

func (f *RecipeForm) ResetForAdd() {
	f.Form = models.RecipeForm{}
}

func (f *RecipeForm) LoadForEdit(r models.Recipe) {
	f.Form = models.FormFromRecipe(r)
}

func (f *RecipeForm) Editing() bool { return !f.Form.IsNew() }

func (f *RecipeForm) Title() string {
	if f.Editing() {
		return "Update Recipe"
	}
	return "Add New Recipe"
}

func (f *RecipeForm) SubmitLabel() string {
	if f.Editing() {
		return "Update Recipe"
	}
	return "Add Recipe"
}

// ImageHint is shown next to the image field.
func (f *RecipeForm) ImageHint() string {
	if f.Editing() {
		return "Leave blank to keep existing image."
	}
	return ""
}

// CanCancel reports whether the cancel-edit action is offered.
func (f *RecipeForm) CanCancel() bool { return f.Editing() }
