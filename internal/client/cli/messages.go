package cli

import (
	"errors"
	"strconv"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/services"
	"github.com/dmitrijs2005/recipeshare/internal/common"
)

const (
	msgAuthUnavailable = "Could not connect to authentication service."
	msgLoginToSubmit   = "You must be logged in to add or update a recipe."
	msgLoginToToggle   = "Please log in to like or save recipes."
	msgImageRequired   = "Please upload a recipe image for new recipes."
	msgImageType       = "Invalid image file type. Allowed: png, jpg, jpeg, gif."
	msgOwnRecipesOnly  = "You can only change your own recipes."
	msgDeleteCancelled = "Deletion cancelled."
	msgConfirmDelete   = "Are you sure you want to delete this recipe?"
	msgRetryDelete     = "Try deleting again?"
	msgNotLoggedIn     = "Not logged in."
	msgInvalidID       = "Invalid recipe id."
)

// formMessage maps client-side form rejections to their displayed text.
func formMessage(err error, editing bool) string {
	switch {
	case errors.Is(err, common.ErrNotLoggedIn):
		return msgLoginToSubmit
	case errors.Is(err, models.ErrImageRequired):
		return msgImageRequired
	case errors.Is(err, models.ErrImageType):
		return msgImageType
	case errors.Is(err, services.ErrNotCreator):
		return msgOwnRecipesOnly
	case errors.Is(err, models.ErrImageMissing):
		return "Error: " + err.Error()
	}
	if editing {
		return client.Describe("Error updating recipe: ", err)
	}
	return client.Describe("Error adding recipe: ", err)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

var errInvalidID = errors.New("invalid recipe id")
