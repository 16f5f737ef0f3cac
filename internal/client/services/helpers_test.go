package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/fakeapi"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) *client.Repositories {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return client.NewRepositories(db)
}

type env struct {
	srv    *fakeapi.Server
	api    *client.HTTPClient
	store  *state.Store
	repos  *client.Repositories
	auth   AuthService
	recipe RecipeService
}

// newEnv wires both services to a fake backend over real HTTP.
func newEnv(t *testing.T) *env {
	t.Helper()
	srv := fakeapi.New()
	t.Cleanup(srv.Close)

	api, err := client.NewHTTPClient(srv.URL(), 5*time.Second, nil)
	require.NoError(t, err)

	store := state.NewStore()
	repos := setupRepos(t)
	return &env{
		srv:    srv,
		api:    api,
		store:  store,
		repos:  repos,
		auth:   NewAuthService(api, store, repos, nil),
		recipe: NewRecipeService(api, store, repos, nil),
	}
}

func tempImage(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dish.jpg")
	require.NoError(t, os.WriteFile(p, []byte("jpeg"), 0o600))
	return p
}
