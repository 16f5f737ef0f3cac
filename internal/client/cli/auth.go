package cli

import (
	"context"

	"github.com/dmitrijs2005/recipeshare/internal/client/client"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/nav"
	"github.com/dmitrijs2005/recipeshare/internal/client/state"
	"github.com/dmitrijs2005/recipeshare/internal/common"
)

// getWithDefault and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getWithDefault = GetWithDefault
var getPassword = GetPassword

// Login prompts for credentials in login mode. The email prompt offers the
// address used last time.
func (a *App) Login(ctx context.Context) error {
	a.store.SetAuthMode(state.AuthModeLogin)
	return a.authenticate(ctx)
}

// Register prompts for an email and a password twice. The passwords must
// match before anything is sent; the new account is logged in right away.
func (a *App) Register(ctx context.Context) error {
	a.store.SetAuthMode(state.AuthModeRegister)
	return a.authenticate(ctx)
}

func (a *App) authenticate(ctx context.Context) error {
	a.nav.Show(nav.SectionAuth)
	printlnFn(a.authForm.Title())

	email, err := getWithDefault(a.reader, "Enter email", a.authService.LastEmail(ctx), a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if a.authForm.ConfirmRequired() {
		confirm, err := getPassword(a.out, "Confirm password")
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)

		if err := a.authForm.Check(string(password), string(confirm)); err != nil {
			a.banner.Error(ctx, nav.Message(err))
			return err
		}
	}

	var resp *models.AuthResponse
	if a.authForm.IsLogin() {
		resp, err = a.authService.Login(ctx, email, password)
	} else {
		resp, err = a.authService.Register(ctx, email, password)
	}
	if err != nil {
		a.log.Debug(ctx, "authentication failed", "mode", a.authForm.Mode(), "error", err)
		a.banner.Error(ctx, client.Describe("Authentication failed: ", err))
		return err
	}

	a.banner.Success(ctx, resp.Message)
	a.authForm.Reset()
	a.nav.Show(nav.SectionHome)
	return a.List(ctx)
}

// Logout ends the session. Local state is only cleared when the server
// confirms.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn(msgNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	msg, err := a.authService.Logout(ctx)
	if err != nil {
		a.banner.Error(ctx, client.Describe("Logout failed: ", err))
		return err
	}

	a.banner.Success(ctx, msg)
	a.nav.Show(nav.SectionHome)
	return a.List(ctx)
}

// Status asks the backend who is logged in and syncs local state with it.
func (a *App) Status(ctx context.Context) error {
	user, err := a.authService.CheckStatus(ctx)
	if err != nil {
		a.banner.Error(ctx, msgAuthUnavailable)
		return err
	}
	if user == nil {
		printlnFn(msgNotLoggedIn)
		return nil
	}
	printlnFn("Logged in as " + user.Email)
	return nil
}
