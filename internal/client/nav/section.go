// Package nav models the client's screens: which section is visible, the
// navigation items offered to the current user, and the state of the auth
// and recipe forms.
package nav

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

type Section string

const (
	SectionHome      Section = "home"
	SectionAddRecipe Section = "add-recipe"
	SectionSaved     Section = "saved"
	SectionAuth      Section = "auth"
)

var AllSections = []Section{SectionHome, SectionAddRecipe, SectionSaved, SectionAuth}

var (
	ErrLoginToAdd   = errors.New("login required to add a recipe")
	ErrLoginToSaved = errors.New("login required to view saved recipes")
)

// Message returns the text shown to the user for err.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrLoginToAdd):
		return "Please log in to add a recipe."
	case errors.Is(err, ErrLoginToSaved):
		return "Please log in to view your saved recipes."
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match!"
	}
	return err.Error()
}

func ParseSection(s string) (Section, error) {
	for _, sec := range AllSections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// Controller keeps exactly one section visible.
type Controller struct {
	mu      sync.RWMutex
	current Section
}

func NewController() *Controller {
	return &Controller{current: SectionHome}
}

func (c *Controller) Show(s Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s
}

func (c *Controller) Current() Section {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Controller) Visible(s Section) bool {
	return c.Current() == s
}

// GoAddRecipe opens the add form, or the auth section with ErrLoginToAdd
// when nobody is logged in.
func (c *Controller) GoAddRecipe(loggedIn bool) error {
	if !loggedIn {
		c.Show(SectionAuth)
		return ErrLoginToAdd
	}
	c.Show(SectionAddRecipe)
	return nil
}

// GoSaved opens the saved list, or the auth section with ErrLoginToSaved.
func (c *Controller) GoSaved(loggedIn bool) error {
	if !loggedIn {
		c.Show(SectionAuth)
		return ErrLoginToSaved
	}
	c.Show(SectionSaved)
	return nil
}

// Item is an entry of the navigation bar.
type Item struct {
	Label   string
	Section Section
	Logout  bool
}

// Items lists the navigation entries visible for user (nil when logged out).
func Items(user *models.User) []Item {
	if user == nil {
		return []Item{
			{Label: "All Recipes", Section: SectionHome},
			{Label: "Login / Register", Section: SectionAuth},
		}
	}
	return []Item{
		{Label: "All Recipes", Section: SectionHome},
		{Label: "Add Recipe", Section: SectionAddRecipe},
		{Label: "My Saved Recipes", Section: SectionSaved},
		{Label: fmt.Sprintf("Logout (%s)", user.Email), Logout: true},
	}
}
