package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

// fakeClient implements client.Client for unit tests. Results are preset,
// calls are counted per method.
type fakeClient struct {
	base string

	StatusRet *models.StatusResponse
	StatusErr error

	AuthRet  *models.AuthResponse
	LoginErr error
	RegErr   error

	LogoutMsg string
	LogoutErr error

	ListRet []models.Recipe
	ListErr error

	GetRet *models.Recipe
	GetErr error

	SubmitRet *models.RecipeResponse
	SubmitErr error

	DeleteMsg string
	DeleteErr error

	LikeRet *models.ToggleLikeResponse
	LikeErr error
	SaveRet *models.ToggleSaveResponse
	SaveErr error

	SavedRet []models.Recipe
	SavedErr error

	LikedIDs    []int64
	LikedIDsErr error
	SavedIDs    []int64
	SavedIDsErr error

	PingErr error

	cookies []*http.Cookie
	last    models.RecipeForm

	mu    sync.Mutex
	calls map[string]int
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{base: "http://fake", calls: map[string]int{}}
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeClient) Close() error    { f.hit("Close"); return nil }
func (f *fakeClient) BaseURL() string { return f.base }

func (f *fakeClient) Ping(ctx context.Context) error { f.hit("Ping"); return f.PingErr }

func (f *fakeClient) Status(ctx context.Context) (*models.StatusResponse, error) {
	f.hit("Status")
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	f.hit("Login")
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.AuthRet, nil
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	f.hit("Register")
	if f.RegErr != nil {
		return nil, f.RegErr
	}
	return f.AuthRet, nil
}

func (f *fakeClient) Logout(ctx context.Context) (string, error) {
	f.hit("Logout")
	return f.LogoutMsg, f.LogoutErr
}

func (f *fakeClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	f.hit("ListRecipes")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	f.hit("GetRecipe")
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateRecipe(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error) {
	f.hit("CreateRecipe")
	f.last = form
	return f.SubmitRet, f.SubmitErr
}

func (f *fakeClient) UpdateRecipe(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error) {
	f.hit("UpdateRecipe")
	f.last = form
	return f.SubmitRet, f.SubmitErr
}

func (f *fakeClient) DeleteRecipe(ctx context.Context, id int64) (string, error) {
	f.hit("DeleteRecipe")
	return f.DeleteMsg, f.DeleteErr
}

func (f *fakeClient) ToggleLike(ctx context.Context, id int64) (*models.ToggleLikeResponse, error) {
	f.hit("ToggleLike")
	if f.LikeErr != nil {
		return nil, f.LikeErr
	}
	return f.LikeRet, nil
}

func (f *fakeClient) ToggleSave(ctx context.Context, id int64) (*models.ToggleSaveResponse, error) {
	f.hit("ToggleSave")
	if f.SaveErr != nil {
		return nil, f.SaveErr
	}
	return f.SaveRet, nil
}

func (f *fakeClient) SavedRecipes(ctx context.Context) ([]models.Recipe, error) {
	f.hit("SavedRecipes")
	return f.SavedRet, f.SavedErr
}

func (f *fakeClient) LikedStatus(ctx context.Context) ([]int64, error) {
	f.hit("LikedStatus")
	return f.LikedIDs, f.LikedIDsErr
}

func (f *fakeClient) SavedStatus(ctx context.Context) ([]int64, error) {
	f.hit("SavedStatus")
	return f.SavedIDs, f.SavedIDsErr
}

func (f *fakeClient) ImageURL(filename string) string {
	return models.Recipe{ImageFilename: filename}.ImageURL(f.base)
}

func (f *fakeClient) Cookies() []*http.Cookie { return f.cookies }

func (f *fakeClient) SetCookies(cookies []*http.Cookie) {
	f.hit("SetCookies")
	f.cookies = cookies
}
