package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
)

var (
	ErrNoPendingDelete = errors.New("no recipe selected for deletion")
	ErrNotCreator      = errors.New("you can only change your own recipes")
)

// FetchResult is the outcome of FetchAll. Offline is set when the backend was
// unreachable and Recipes come from the local snapshot taken at SnapshotAt.
type FetchResult struct {
	Recipes    []models.Recipe
	Offline    bool
	SnapshotAt time.Time
}

type RecipeService interface {
	FetchAll(ctx context.Context) (*FetchResult, error)
	FetchSaved(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id int64) (models.Recipe, error)
	Submit(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error)
	RequestDelete(id int64) error
	ConfirmDelete(ctx context.Context) (string, error)
	CancelDelete()
	ToggleLike(ctx context.Context, id int64) (*models.ToggleLikeResponse, error)
	ToggleSave(ctx context.Context, id int64) (*models.ToggleSaveResponse, error)
	BaseURL() string
}

type recipeService struct {
	client client.Client
	store  *state.Store
	repos  *client.Repositories
	log    logging.Logger
}

// NewRecipeService wires a RecipeService. repos may be nil, which disables
// the offline snapshot.
func NewRecipeService(c client.Client, store *state.Store, repos *client.Repositories, log logging.Logger) RecipeService {
	if log == nil {
		log = logging.NewNop()
	}
	return &recipeService{client: c, store: store, repos: repos, log: log.With("service", "recipes")}
}

func (s *recipeService) BaseURL() string {
	return s.client.BaseURL()
}

func (s *recipeService) FetchAll(ctx context.Context) (*FetchResult, error) {
	list, err := s.client.ListRecipes(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			return s.fromSnapshot(ctx, err)
		}
		return nil, err
	}

	s.store.SetRecipes(list)
	if err := s.saveSnapshot(ctx, list); err != nil {
		s.log.Warn(ctx, "save recipe snapshot failed", "error", err)
	}
	return &FetchResult{Recipes: list}, nil
}

func (s *recipeService) saveSnapshot(ctx context.Context, list []models.Recipe) error {
	if s.repos == nil {
		return nil
	}
	now := timeNow()
	return s.repos.WithTx(ctx, func(ctx context.Context, tx *client.Repositories) error {
		if err := tx.Recipes.ReplaceAll(ctx, list, now); err != nil {
			return err
		}
		return tx.Metadata.SetTime(ctx, metadata.KeySnapshotAt, now)
	})
}

func (s *recipeService) fromSnapshot(ctx context.Context, cause error) (*FetchResult, error) {
	if s.repos == nil {
		return nil, cause
	}

	list, err := s.repos.Recipes.List(ctx)
	if err != nil {
		s.log.Warn(ctx, "read recipe snapshot failed", "error", err)
		return nil, cause
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %w", client.ErrLocalDataNotAvailable, cause)
	}

	at, err := s.repos.Metadata.GetTime(ctx, metadata.KeySnapshotAt)
	if err != nil {
		s.log.Debug(ctx, "read snapshot time", "error", err)
	}

	s.store.SetRecipes(list)
	s.log.Info(ctx, "showing recipe snapshot", "count", len(list), "taken_at", at)
	return &FetchResult{Recipes: list, Offline: true, SnapshotAt: at}, nil
}

func (s *recipeService) FetchSaved(ctx context.Context) ([]models.Recipe, error) {
	if !s.store.LoggedIn() {
		return nil, common.ErrNotLoggedIn
	}
	return s.client.SavedRecipes(ctx)
}

// Get returns the cached recipe, asking the backend when it is not cached.
func (s *recipeService) Get(ctx context.Context, id int64) (models.Recipe, error) {
	if r, ok := s.store.Recipe(id); ok {
		return r, nil
	}
	r, err := s.client.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return models.Recipe{}, fmt.Errorf("recipe %d: %w", id, common.ErrNotFound)
		}
		return models.Recipe{}, err
	}
	return *r, nil
}

// Submit creates or updates a recipe and refetches the list on success.
func (s *recipeService) Submit(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error) {
	if !s.store.LoggedIn() {
		return nil, common.ErrNotLoggedIn
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var (
		resp *models.RecipeResponse
		err  error
	)
	if form.IsNew() {
		resp, err = s.client.CreateRecipe(ctx, form)
	} else {
		if r, ok := s.store.Recipe(form.RecipeID); ok && !s.store.IsCreator(r) {
			return nil, ErrNotCreator
		}
		resp, err = s.client.UpdateRecipe(ctx, form)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.FetchAll(ctx); err != nil {
		s.log.Warn(ctx, "refresh after submit failed", "error", err)
	}
	return resp, nil
}

// RequestDelete marks id for deletion; ConfirmDelete performs it.
func (s *recipeService) RequestDelete(id int64) error {
	if !s.store.LoggedIn() {
		return common.ErrNotLoggedIn
	}
	if r, ok := s.store.Recipe(id); ok && !s.store.IsCreator(r) {
		return ErrNotCreator
	}
	s.store.SetRecipeToDelete(id)
	return nil
}

// ConfirmDelete deletes the pending recipe. On failure the recipe stays
// pending so the user can retry or cancel.
func (s *recipeService) ConfirmDelete(ctx context.Context) (string, error) {
	id, ok := s.store.RecipeToDelete()
	if !ok {
		return "", ErrNoPendingDelete
	}

	msg, err := s.client.DeleteRecipe(ctx, id)
	if err != nil {
		return "", err
	}

	s.store.RemoveRecipe(id)
	s.store.ClearRecipeToDelete()
	if s.repos != nil {
		if err := s.repos.Recipes.Delete(ctx, id); err != nil {
			s.log.Warn(ctx, "drop recipe from snapshot failed", "recipe_id", id, "error", err)
		}
	}
	return msg, nil
}

func (s *recipeService) CancelDelete() {
	s.store.ClearRecipeToDelete()
}

func (s *recipeService) ToggleLike(ctx context.Context, id int64) (*models.ToggleLikeResponse, error) {
	if !s.store.LoggedIn() {
		return nil, common.ErrNotLoggedIn
	}
	resp, err := s.client.ToggleLike(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.MarkLiked(id, resp.Liked)
	s.store.SetLikes(id, resp.Likes)
	return resp, nil
}

func (s *recipeService) ToggleSave(ctx context.Context, id int64) (*models.ToggleSaveResponse, error) {
	if !s.store.LoggedIn() {
		return nil, common.ErrNotLoggedIn
	}
	resp, err := s.client.ToggleSave(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.MarkSaved(id, resp.Saved)
	return resp, nil
}
