package cli

import (
	"context"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/nav"
	"github.com/dmitrijs2005/recipeshare/internal/client/render"
	"github.com/dmitrijs2005/recipeshare/internal/client/services"
	"github.com/dmitrijs2005/recipeshare/internal/common"
)

var getMultiline = GetMultiline

// Add opens an empty recipe form. A new recipe needs an image.
func (a *App) Add(ctx context.Context) error {
	if err := a.nav.GoAddRecipe(a.isLoggedIn()); err != nil {
		a.banner.Error(ctx, nav.Message(err))
		return err
	}
	a.recipeForm.ResetForAdd()
	return a.fillAndSubmit(ctx)
}

// Edit opens the form pre-filled with an own recipe. Empty answers keep the
// current values.
func (a *App) Edit(ctx context.Context, idArg string) error {
	id, err := a.recipeID(ctx, idArg)
	if err != nil {
		return err
	}
	if !a.isLoggedIn() {
		a.banner.Error(ctx, msgLoginToSubmit)
		return common.ErrNotLoggedIn
	}

	r, err := a.recipeService.Get(ctx, id)
	if err != nil {
		a.banner.Error(ctx, client.Describe("Error: ", err))
		return err
	}
	if !a.store.IsCreator(r) {
		a.banner.Error(ctx, msgOwnRecipesOnly)
		return services.ErrNotCreator
	}

	a.recipeForm.LoadForEdit(r)
	a.nav.Show(nav.SectionAddRecipe)
	return a.fillAndSubmit(ctx)
}

func (a *App) fillAndSubmit(ctx context.Context) error {
	f := &a.recipeForm.Form
	editing := a.recipeForm.Editing()
	printlnFn(a.recipeForm.Title())

	var err error
	if f.Title, err = getWithDefault(a.reader, "Title", f.Title, a.out); err != nil {
		return err
	}
	if f.Description, err = getWithDefault(a.reader, "Description", f.Description, a.out); err != nil {
		return err
	}
	if f.Ingredients, err = getWithDefault(a.reader, "Ingredients (comma separated)", f.Ingredients, a.out); err != nil {
		return err
	}

	prompt := "Instructions"
	if editing {
		prompt = "Instructions (leave empty to keep the current ones)"
	}
	instructions, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if instructions != "" || !editing {
		f.Instructions = instructions
	}

	prompt = "Image path (png, jpg, jpeg, gif)"
	if hint := a.recipeForm.ImageHint(); hint != "" {
		prompt += " " + hint + " Enter - to remove it."
	}
	image, err := getWithDefault(a.reader, prompt, "", a.out)
	if err != nil {
		return err
	}
	if editing && image == "-" {
		f.ImageRemoved = true
		image = ""
	}
	f.ImagePath = image

	resp, err := a.recipeService.Submit(ctx, *f)
	if err != nil {
		a.banner.Error(ctx, formMessage(err, editing))
		return err
	}

	a.banner.Success(ctx, resp.Message)
	a.recipeForm.ResetForAdd()
	a.nav.Show(nav.SectionHome)

	a.shown = a.store.Recipes()
	return render.Text(a.out, render.Cards(a.shown, a.store, a.recipeService.BaseURL()), render.NoRecipes)
}
