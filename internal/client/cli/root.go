package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recipeshare/internal/client/config"
	"github.com/dmitrijs2005/recipeshare/internal/client/tui"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/spf13/cobra"
)

// appFactory builds the App behind every command; tests replace it.
var appFactory = NewApp

// runBrowse starts the full-screen browser; tests replace it.
var runBrowse = tui.Run

// NewRootCommand builds the recipeshare command tree:
//
//	recipeshare                 interactive REPL
//	recipeshare browse          full-screen recipe browser
//	recipeshare list [--saved]  print recipes and exit
//	recipeshare export --out F  write recipes to F (.xlsx or .csv)
//
// Config flags (-a, -i, -t, -d, -l, -c) are parsed by the config package and
// ignored here.
func NewRootCommand(cfg *config.Config, log logging.Logger) *cobra.Command {
	// withApp opens the App for one command and closes it afterwards.
	withApp := func(cmd *cobra.Command, fn func(ctx context.Context, a *App) error) (err error) {
		a, err := appFactory(cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, a.Close(cmd.Context()))
		}()
		return fn(cmd.Context(), a)
	}

	root := &cobra.Command{
		Use:           "recipeshare",
		Short:         "Terminal client for the recipe sharing service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFactory(cfg, log)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	browse := &cobra.Command{
		Use:   "browse",
		Short: "Browse recipes in a full-screen view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				if _, err := a.authService.Restore(ctx); err != nil {
					a.log.Warn(ctx, "status check failed", "error", err)
				}
				_, recipes, store := a.Services()
				return runBrowse(ctx, tui.Options{
					Recipes:    recipes,
					Store:      store,
					Logger:     a.log,
					MessageTTL: a.config.MessageTTL,
				})
			})
		},
	}

	var saved bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Print all recipes, or the saved ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				a.out = cmd.OutOrStdout()
				if _, err := a.authService.Restore(ctx); err != nil && saved {
					return err
				}
				if saved {
					return a.Saved(ctx)
				}
				return a.List(ctx)
			})
		},
	}
	list.Flags().BoolVar(&saved, "saved", false, "list the saved recipes of the logged-in user")

	var (
		out         string
		exportSaved bool
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write recipes to an .xlsx or .csv file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			return withApp(cmd, func(ctx context.Context, a *App) error {
				if _, err := a.authService.Restore(ctx); err != nil && exportSaved {
					return err
				}
				return a.Export(ctx, out, exportSaved)
			})
		},
	}
	exportCmd.Flags().StringVar(&out, "out", "", "output file (.xlsx or .csv)")
	exportCmd.Flags().BoolVar(&exportSaved, "saved", false, "export only the saved recipes")

	for _, c := range []*cobra.Command{root, browse, list, exportCmd} {
		c.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}
	}
	root.AddCommand(browse, list, exportCmd)
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, cfg *config.Config, log logging.Logger, args []string) error {
	root := NewRootCommand(cfg, log)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
