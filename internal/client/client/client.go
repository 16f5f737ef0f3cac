package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

// Client is the recipe backend API. Every method issues exactly one request.
type Client interface {
	Close() error
	BaseURL() string
	Ping(ctx context.Context) error

	Status(ctx context.Context) (*models.StatusResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) (string, error)

	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error)
	UpdateRecipe(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error)
	DeleteRecipe(ctx context.Context, id int64) (string, error)

	ToggleLike(ctx context.Context, id int64) (*models.ToggleLikeResponse, error)
	ToggleSave(ctx context.Context, id int64) (*models.ToggleSaveResponse, error)
	SavedRecipes(ctx context.Context) ([]models.Recipe, error)
	LikedStatus(ctx context.Context) ([]int64, error)
	SavedStatus(ctx context.Context) ([]int64, error)

	ImageURL(filename string) string
	Cookies() []*http.Cookie
	SetCookies(cookies []*http.Cookie)
}
