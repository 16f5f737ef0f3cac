package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/config"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/nav"
	"github.com/dmitrijs2005/recipeshare/internal/client/notify"
	"github.com/dmitrijs2005/recipeshare/internal/client/services"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
	"github.com/dmitrijs2005/recipeshare/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config        *config.Config
	log           logging.Logger
	db            *sql.DB
	authService   services.AuthService
	recipeService services.RecipeService
	store         *state.Store
	nav           *nav.Controller
	authForm      *nav.AuthForm
	recipeForm    *nav.RecipeForm
	banner        *notify.Banner
	reader        *bufio.Reader
	out           io.Writer

	// shown is the list printed last, used by "html".
	shown []models.Recipe

	mu   sync.RWMutex
	mode Mode
}

// Deps are the collaborators of an App. NewApp builds them from the config;
// tests pass their own.
type Deps struct {
	DB       *sql.DB
	Auth     services.AuthService
	Recipes  services.RecipeService
	Store    *state.Store
	Banner   *notify.Banner
	Reader   *bufio.Reader
	Out      io.Writer
	Logger   logging.Logger
	Settings *config.Config
}

// NewApp opens the local database, creates the API client and wires the
// services for cfg.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := client.NewRepositories(db)
	store := state.NewStore()

	return newApp(Deps{
		DB:       db,
		Auth:     services.NewAuthService(apiClient, store, repos, log),
		Recipes:  services.NewRecipeService(apiClient, store, repos, log),
		Store:    store,
		Banner:   notify.NewBanner(os.Stdout, cfg.MessageTTL, log),
		Reader:   bufio.NewReader(os.Stdin),
		Out:      os.Stdout,
		Logger:   log,
		Settings: cfg,
	}), nil
}

func newApp(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.NewNop()
	}
	if d.Settings == nil {
		d.Settings = &config.Config{}
		d.Settings.LoadDefaults()
	}
	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.Banner == nil {
		d.Banner = notify.NewBanner(d.Out, d.Settings.MessageTTL, d.Logger)
	}
	return &App{
		config:        d.Settings,
		log:           d.Logger.With("component", "cli"),
		db:            d.DB,
		authService:   d.Auth,
		recipeService: d.Recipes,
		store:         d.Store,
		nav:           nav.NewController(),
		authForm:      nav.NewAuthForm(d.Store),
		recipeForm:    &nav.RecipeForm{},
		banner:        d.Banner,
		reader:        d.Reader,
		out:           d.Out,
	}
}

// Services exposes the wired services to the other front ends.
func (a *App) Services() (services.AuthService, services.RecipeService, *state.Store) {
	return a.authService, a.recipeService, a.store
}

func (a *App) Banner() *notify.Banner { return a.banner }

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// Startup resumes the stored session and loads the recipe list, the way the
// client greets a returning user.
func (a *App) Startup(ctx context.Context) {
	user, err := a.authService.Restore(ctx)
	switch {
	case err != nil:
		a.log.Warn(ctx, "status check failed", "error", err)
		a.banner.Error(ctx, msgAuthUnavailable)
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		} else {
			// the backend answered, just not with a status
			a.setMode(ModeOnline)
		}
	case user != nil:
		a.setMode(ModeOnline)
		a.banner.Info(ctx, fmt.Sprintf("Welcome back, %s!", user.Email))
	default:
		a.setMode(ModeOnline)
	}

	_ = a.List(ctx)
}

// Run starts the connectivity watcher and the REPL and blocks until the user
// exits. Resources are released before returning.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	printlnFn("Welcome to recipeshare (type 'help' for commands)")
	a.Startup(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, a.reader)

	cancel()
	wg.Wait()
	return nil
}

func (a *App) Close(ctx context.Context) error {
	a.banner.Dismiss()

	var errs []error
	if a.authService != nil {
		errs = append(errs, a.authService.Close(ctx))
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.store.LoggedIn()
}

// StartOnlineStatusWatcher pings the backend every interval and switches the
// mode shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 3 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
