package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"golang.org/x/sync/errgroup"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Restore: resume a persisted session, then CheckStatus.
//   - CheckStatus: ask the backend who is logged in and sync the store.
//   - Login/Register: authenticate, rebuild liked/saved sets, persist session.
//   - Logout: end the session; local state is reset only on success.
//   - RefreshStatuses: refetch liked and saved ids independently.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Restore(ctx context.Context) (*models.User, error)
	CheckStatus(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.AuthResponse, error)
	Register(ctx context.Context, email string, password []byte) (*models.AuthResponse, error)
	Logout(ctx context.Context) (string, error)
	RefreshStatuses(ctx context.Context)
	LastEmail(ctx context.Context) string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  *state.Store
	repos  *client.Repositories
	log    logging.Logger
}

// NewAuthService wires an AuthService. repos may be nil, in which case the
// session is not persisted between runs.
func NewAuthService(c client.Client, store *state.Store, repos *client.Repositories, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNop()
	}
	return &authService{client: c, store: store, repos: repos, log: log.With("service", "auth")}
}

func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	if a.repos != nil {
		if err := a.loadSession(ctx); err != nil {
			a.log.Warn(ctx, "restore session failed", "error", err)
		}
	}
	return a.CheckStatus(ctx)
}

func (a *authService) loadSession(ctx context.Context) error {
	server, err := a.repos.Metadata.GetString(ctx, metadata.KeyServerURL)
	if err != nil {
		return err
	}
	if server != a.client.BaseURL() {
		// the stored session belongs to another backend
		return nil
	}

	stored, err := a.repos.Sessions.List(ctx)
	if err != nil {
		return err
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		if !c.Expired(timeNow()) {
			cookies = append(cookies, c.HTTP())
		}
	}
	if len(cookies) > 0 {
		a.client.SetCookies(cookies)
		a.log.Debug(ctx, "session restored", "cookies", len(cookies))
	}
	return nil
}

// CheckStatus never leaves a stale user behind: a failed check logs the user
// out locally and returns the error.
func (a *authService) CheckStatus(ctx context.Context) (*models.User, error) {
	st, err := a.client.Status(ctx)
	if err != nil {
		a.store.Reset()
		return nil, err
	}
	if !st.LoggedIn {
		a.store.Reset()
		return nil, nil
	}

	u := models.User{ID: st.UserID, Email: st.UserEmail}
	a.store.SetCurrentUser(&u)
	a.RefreshStatuses(ctx)
	return &u, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.AuthResponse, error) {
	defer common.WipeByteArray(password)

	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	a.loggedIn(ctx, resp)
	return resp, nil
}

func (a *authService) Register(ctx context.Context, email string, password []byte) (*models.AuthResponse, error) {
	defer common.WipeByteArray(password)

	resp, err := a.client.Register(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	a.loggedIn(ctx, resp)
	return resp, nil
}

func (a *authService) loggedIn(ctx context.Context, resp *models.AuthResponse) {
	u := resp.User()
	a.store.SetCurrentUser(&u)
	a.RefreshStatuses(ctx)

	if err := a.saveSession(ctx, u.Email); err != nil {
		a.log.Warn(ctx, "persist session failed", "error", err)
	}
	a.log.Info(ctx, "logged in", "user_id", u.ID)
}

func (a *authService) saveSession(ctx context.Context, email string) error {
	if a.repos == nil {
		return nil
	}
	cookies := a.client.Cookies()
	stored := make([]models.SessionCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, models.SessionCookieFromHTTP(c))
	}

	return a.repos.WithTx(ctx, func(ctx context.Context, tx *client.Repositories) error {
		if err := tx.Sessions.ReplaceAll(ctx, stored); err != nil {
			return err
		}
		if err := tx.Metadata.SetString(ctx, metadata.KeyServerURL, a.client.BaseURL()); err != nil {
			return err
		}
		return tx.Metadata.SetString(ctx, metadata.KeyLastEmail, email)
	})
}

// Logout resets the store and forgets the stored session only when the
// backend confirmed the logout.
func (a *authService) Logout(ctx context.Context) (string, error) {
	msg, err := a.client.Logout(ctx)
	if err != nil {
		return "", err
	}

	a.store.Reset()
	if a.repos != nil {
		if err := a.repos.Sessions.Clear(ctx); err != nil {
			a.log.Warn(ctx, "clear stored session failed", "error", err)
		}
	}
	return msg, nil
}

// RefreshStatuses rebuilds the liked and saved sets. Each list is fetched on
// its own; a failed fetch is logged and leaves that set as it was.
func (a *authService) RefreshStatuses(ctx context.Context) {
	if !a.store.LoggedIn() {
		a.store.SetLikedIDs(nil)
		a.store.SetSavedIDs(nil)
		return
	}

	// A failed fetch leaves its set as it was; the other still applies.
	var g errgroup.Group
	g.Go(func() error {
		liked, err := a.client.LikedStatus(ctx)
		if err != nil {
			a.log.Error(ctx, "failed to fetch liked recipe status", "error", err)
			return nil
		}
		a.store.SetLikedIDs(liked)
		return nil
	})
	g.Go(func() error {
		saved, err := a.client.SavedStatus(ctx)
		if err != nil {
			a.log.Error(ctx, "failed to fetch saved recipe status", "error", err)
			return nil
		}
		a.store.SetSavedIDs(saved)
		return nil
	})
	_ = g.Wait()
}

func (a *authService) LastEmail(ctx context.Context) string {
	if a.repos == nil {
		return ""
	}
	email, err := a.repos.Metadata.GetString(ctx, metadata.KeyLastEmail)
	if err != nil {
		a.log.Debug(ctx, "read last email", "error", err)
		return ""
	}
	return email
}

func (a *authService) Ping(ctx context.Context) error {
	err := a.client.Ping(ctx)
	if err != nil && !errors.Is(err, client.ErrUnavailable) {
		// the server answered, so it is up
		return nil
	}
	return err
}

func (a *authService) Close(ctx context.Context) error {
	if err := a.client.Close(); err != nil {
		return fmt.Errorf("close client: %w", err)
	}
	return nil
}
