package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/recipeshare/internal/client/config"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
	"github.com/dmitrijs2005/recipeshare/internal/client/tui"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useApp(t *testing.T, a *App) {
	t.Helper()
	orig := appFactory
	appFactory = func(*config.Config, logging.Logger) (*App, error) { return a, nil }
	t.Cleanup(func() { appFactory = orig })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	cmd := NewRootCommand(cfg, logging.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_ListIgnoresConfigFlags(t *testing.T) {
	h := newHarness(t)
	owner := h.srv.AddUser("chef@x", "pw")
	h.srv.AddRecipe(owner, models.Recipe{Title: "Pancakes"})
	useApp(t, h.app)

	out, err := execute(t, "-a", "http://elsewhere:5000", "list", "-l", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "Pancakes")
}

func TestRootCommand_ListSavedNeedsLogin(t *testing.T) {
	h := newHarness(t)
	useApp(t, h.app)

	_, err := execute(t, "list", "--saved")
	require.Error(t, err)
	assert.Contains(t, h.out.String(), "Please log in to view your saved recipes.")
}

func TestRootCommand_Export(t *testing.T) {
	h := newHarness(t)
	owner := h.srv.AddUser("chef@x", "pw")
	h.srv.AddRecipe(owner, models.Recipe{Title: "Pancakes"})
	useApp(t, h.app)

	path := filepath.Join(t.TempDir(), "recipes.xlsx")
	_, err := execute(t, "export", "--out", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "export")
	require.EqualError(t, err, "--out is required")
}

func TestRootCommand_Browse(t *testing.T) {
	h := newHarness(t)
	useApp(t, h.app)

	var got tui.Options
	orig := runBrowse
	runBrowse = func(_ context.Context, opts tui.Options) error {
		got = opts
		return nil
	}
	t.Cleanup(func() { runBrowse = orig })

	_, err := execute(t, "browse")
	require.NoError(t, err)
	assert.NotNil(t, got.Recipes)
	assert.Same(t, h.store, got.Store)
}

func TestRootCommand_REPL(t *testing.T) {
	h := newHarness(t)
	useApp(t, h.app)
	h.answer("status", "exit")

	_, err := execute(t)
	require.NoError(t, err)
	out := h.out.String()
	assert.Contains(t, out, "Welcome to recipeshare")
	assert.Contains(t, out, msgNotLoggedIn)
	assert.Contains(t, out, "Bye!")
}

func TestRootCommand_AppError(t *testing.T) {
	orig := appFactory
	appFactory = func(*config.Config, logging.Logger) (*App, error) { return nil, errors.New("no database") }
	t.Cleanup(func() { appFactory = orig })

	_, err := execute(t, "list")
	require.EqualError(t, err, "no database")
}
