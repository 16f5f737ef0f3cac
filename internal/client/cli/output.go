package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/export"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/nav"
	"github.com/dmitrijs2005/recipeshare/internal/client/render"
)

// HTML writes the list printed last as recipe-card markup.
func (a *App) HTML(ctx context.Context, path string) error {
	empty := render.NoRecipes
	if a.nav.Visible(nav.SectionSaved) {
		empty = render.NoSavedRecipes
	}

	f, err := os.Create(path)
	if err != nil {
		a.banner.Error(ctx, "Error: "+err.Error())
		return err
	}
	defer f.Close()

	cards := render.Cards(a.shown, a.store, a.recipeService.BaseURL())
	if err := render.HTML(f, cards, empty); err != nil {
		a.banner.Error(ctx, "Error: "+err.Error())
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	a.banner.Success(ctx, fmt.Sprintf("Wrote %d recipes to %s", len(cards), path))
	return nil
}

// Export writes all recipes, or the saved ones, to an .xlsx or .csv file.
func (a *App) Export(ctx context.Context, path string, saved bool) error {
	var (
		list []models.Recipe
		err  error
	)
	if saved {
		list, err = a.recipeService.FetchSaved(ctx)
		if err != nil {
			a.banner.Error(ctx, "Error fetching saved recipes: "+client.UserMessage(err))
			return err
		}
	} else {
		res, err := a.recipeService.FetchAll(ctx)
		if err != nil {
			a.banner.Error(ctx, "Error fetching recipes: "+client.UserMessage(err))
			return err
		}
		list = res.Recipes
	}

	if err := export.Write(path, list, a.recipeService.BaseURL()); err != nil {
		a.banner.Error(ctx, "Error: "+err.Error())
		return err
	}

	a.banner.Success(ctx, fmt.Sprintf("Exported %d recipes to %s", len(list), path))
	return nil
}
