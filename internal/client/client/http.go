package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

const maxResponseBody = 4 << 20

type HTTPClient struct {
	base    *url.URL
	http    *http.Client
	jar     *cookiejar.Jar
	timeout time.Duration
	log     logging.Logger
}

// NewHTTPClient returns a client for the backend at baseURL. timeout bounds
// every single request; zero means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logging.NewNop()
	}

	return &HTTPClient{
		base:    u,
		http:    &http.Client{Jar: jar},
		jar:     jar,
		timeout: timeout,
		log:     log.With("component", "api"),
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) BaseURL() string {
	return c.base.String()
}

func (c *HTTPClient) ImageURL(filename string) string {
	return models.Recipe{ImageFilename: filename}.ImageURL(c.BaseURL())
}

// Cookies returns the session cookies the jar would send to the backend.
func (c *HTTPClient) Cookies() []*http.Cookie {
	return c.jar.Cookies(c.base)
}

// SetCookies loads previously persisted session cookies into the jar.
func (c *HTTPClient) SetCookies(cookies []*http.Cookie) {
	c.jar.SetCookies(c.base, cookies)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.Status(ctx)
	return err
}

func (c *HTTPClient) Status(ctx context.Context) (*models.StatusResponse, error) {
	var out models.StatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", credentials{email, password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", credentials{email, password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) (string, error) {
	var out models.MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.doJSON(ctx, http.MethodGet, "/api/recipes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.doJSON(ctx, http.MethodGet, recipePath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRecipe posts a new recipe. The form is validated first; an invalid
// form, in particular one without an image, never reaches the backend.
func (c *HTTPClient) CreateRecipe(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error) {
	if !form.IsNew() {
		return nil, fmt.Errorf("create recipe: form already has id %d", form.RecipeID)
	}
	return c.sendForm(ctx, http.MethodPost, "/api/recipes", form)
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, form models.RecipeForm) (*models.RecipeResponse, error) {
	if form.IsNew() {
		return nil, errors.New("update recipe: form has no recipe id")
	}
	return c.sendForm(ctx, http.MethodPut, recipePath(form.RecipeID), form)
}

func (c *HTTPClient) sendForm(ctx context.Context, method, path string, form models.RecipeForm) (*models.RecipeResponse, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := encodeRecipeForm(form)
	if err != nil {
		return nil, err
	}

	var out models.RecipeResponse
	if err := c.do(ctx, method, path, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id int64) (string, error) {
	var out models.MessageResponse
	if err := c.doJSON(ctx, http.MethodDelete, recipePath(id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) ToggleLike(ctx context.Context, id int64) (*models.ToggleLikeResponse, error) {
	var out models.ToggleLikeResponse
	if err := c.doJSON(ctx, http.MethodPost, recipePath(id)+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ToggleSave(ctx context.Context, id int64) (*models.ToggleSaveResponse, error) {
	var out models.ToggleSaveResponse
	if err := c.doJSON(ctx, http.MethodPost, recipePath(id)+"/save", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SavedRecipes(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.doJSON(ctx, http.MethodGet, "/api/my-saved-recipes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LikedStatus(ctx context.Context) ([]int64, error) {
	var out models.LikedStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/my-liked-recipes-status", nil, &out); err != nil {
		return nil, err
	}
	return out.LikedRecipeIDs, nil
}

func (c *HTTPClient) SavedStatus(ctx context.Context) ([]int64, error) {
	var out models.SavedStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/my-saved-recipes-status", nil, &out); err != nil {
		return nil, err
	}
	return out.SavedRecipeIDs, nil
}

func recipePath(id int64) string {
	return "/api/recipes/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	if in == nil {
		return c.do(ctx, method, path, nil, "", out)
	}
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(b), "application/json", out)
}

// do sends one request and decodes a 2xx JSON body into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(resp.Header.Get("Content-Type"), data, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrBadResponse, method, path, err)
	}
	return nil
}
