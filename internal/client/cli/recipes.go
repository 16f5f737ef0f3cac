package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/nav"
	"github.com/dmitrijs2005/recipeshare/internal/client/render"
	"github.com/dmitrijs2005/recipeshare/internal/client/services"
	"github.com/dmitrijs2005/recipeshare/internal/common"
)

// detailsStyle selects the glamour style of "show"; empty follows the terminal.
var detailsStyle = ""

const detailsWidth = 80

// List fetches all recipes and prints them. When the server is unreachable
// the last stored list is shown instead.
func (a *App) List(ctx context.Context) error {
	a.nav.Show(nav.SectionHome)

	res, err := a.recipeService.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		a.banner.Error(ctx, "Error fetching recipes: "+client.UserMessage(err))
		return err
	}
	if res.Offline {
		a.setMode(ModeOffline)
		a.banner.Info(ctx, fmt.Sprintf("Server unavailable, showing recipes from %s.", res.SnapshotAt.Local().Format(time.DateTime)))
	}

	a.shown = res.Recipes
	return a.print(res.Recipes, render.NoRecipes)
}

// Saved lists the current user's saved recipes.
func (a *App) Saved(ctx context.Context) error {
	prev := a.nav.Current()
	if err := a.nav.GoSaved(a.isLoggedIn()); err != nil {
		a.banner.Error(ctx, nav.Message(err))
		return err
	}

	list, err := a.recipeService.FetchSaved(ctx)
	if err != nil {
		a.nav.Show(prev)
		a.banner.Error(ctx, "Error fetching saved recipes: "+client.UserMessage(err))
		return err
	}

	a.shown = list
	return a.print(list, render.NoSavedRecipes)
}

func (a *App) print(list []models.Recipe, empty string) error {
	return render.Text(a.out, render.Cards(list, a.store, a.recipeService.BaseURL()), empty)
}

// Show prints one recipe with its ingredients and instructions.
func (a *App) Show(ctx context.Context, idArg string) error {
	id, err := a.recipeID(ctx, idArg)
	if err != nil {
		return err
	}

	r, err := a.recipeService.Get(ctx, id)
	if err != nil {
		a.banner.Error(ctx, client.Describe("Error: ", err))
		return err
	}

	card := render.BuildCard(r, a.store, a.recipeService.BaseURL())
	card.Expanded = true
	out, err := render.Details(card, detailsWidth, detailsStyle)
	if err != nil {
		a.log.Warn(ctx, "render details failed", "error", err)
		out = render.Markdown(card)
	}
	_, err = fmt.Fprint(a.out, out)
	return err
}

// Like toggles the like of a recipe and prints the updated card.
func (a *App) Like(ctx context.Context, idArg string) error {
	id, err := a.toggleTarget(ctx, idArg)
	if err != nil {
		return err
	}

	resp, err := a.recipeService.ToggleLike(ctx, id)
	if err != nil {
		a.banner.Error(ctx, client.Describe("Error: ", err))
		return err
	}
	a.banner.Success(ctx, resp.Message)
	a.printCard(ctx, id, func(c *render.Card) { c.ApplyLike(resp.Liked, resp.Likes) })
	return nil
}

// Save toggles the saved state. Unsaving from the saved list refreshes it.
func (a *App) Save(ctx context.Context, idArg string) error {
	id, err := a.toggleTarget(ctx, idArg)
	if err != nil {
		return err
	}

	resp, err := a.recipeService.ToggleSave(ctx, id)
	if err != nil {
		a.banner.Error(ctx, client.Describe("Error: ", err))
		return err
	}
	a.banner.Success(ctx, resp.Message)

	if !resp.Saved && a.nav.Visible(nav.SectionSaved) {
		return a.Saved(ctx)
	}
	a.printCard(ctx, id, func(c *render.Card) { c.ApplySave(resp.Saved) })
	return nil
}

func (a *App) toggleTarget(ctx context.Context, idArg string) (int64, error) {
	id, err := a.recipeID(ctx, idArg)
	if err != nil {
		return 0, err
	}
	if !a.isLoggedIn() {
		a.banner.Error(ctx, msgLoginToToggle)
		return 0, common.ErrNotLoggedIn
	}
	return id, nil
}

// printCard redraws the card of one recipe. Recipes missing from the cache
// are fetched.
func (a *App) printCard(ctx context.Context, id int64, apply func(*render.Card)) {
	r, err := a.recipeService.Get(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "redraw recipe card", "recipe_id", id, "error", err)
		return
	}
	card := render.BuildCard(r, a.store, a.recipeService.BaseURL())
	apply(&card)
	_, _ = fmt.Fprintln(a.out, render.CardText(card, true))
}

// Delete asks for confirmation and deletes an own recipe.
func (a *App) Delete(ctx context.Context, idArg string) error {
	id, err := a.recipeID(ctx, idArg)
	if err != nil {
		return err
	}

	if err := a.recipeService.RequestDelete(id); err != nil {
		switch {
		case errors.Is(err, common.ErrNotLoggedIn):
			a.banner.Error(ctx, "Please log in to delete a recipe.")
		case errors.Is(err, services.ErrNotCreator):
			a.banner.Error(ctx, msgOwnRecipesOnly)
		default:
			a.banner.Error(ctx, client.Describe("Error deleting recipe: ", err))
		}
		return err
	}

	ok, err := confirm(a.reader, msgConfirmDelete, a.out)
	if err != nil || !ok {
		a.recipeService.CancelDelete()
		printlnFn(msgDeleteCancelled)
		return err
	}

	// A failed delete stays pending until the user retries or gives up.
	msg, err := a.recipeService.ConfirmDelete(ctx)
	for err != nil {
		a.banner.Error(ctx, client.Describe("Error deleting recipe: ", err))
		retry, cerr := confirm(a.reader, msgRetryDelete, a.out)
		if cerr != nil || !retry {
			a.recipeService.CancelDelete()
			printlnFn(msgDeleteCancelled)
			return err
		}
		msg, err = a.recipeService.ConfirmDelete(ctx)
	}
	a.banner.Success(ctx, msg)

	if a.nav.Visible(nav.SectionSaved) {
		return a.Saved(ctx)
	}
	return a.List(ctx)
}

func (a *App) recipeID(ctx context.Context, s string) (int64, error) {
	id, err := parseID(s)
	if err != nil {
		a.banner.Error(ctx, msgInvalidID)
	}
	return id, err
}

var confirm = Confirm
