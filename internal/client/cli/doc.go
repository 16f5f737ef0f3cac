// Package cli provides the interactive recipeshare terminal client.
//
// It wires configuration, local storage, the API client, and an interactive
// REPL. Typical flow: resume the stored session, list recipes, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Register / Logout
//   - List all recipes or the saved ones, show a single recipe
//   - Like and save recipes
//   - Add, edit and delete own recipes
//   - Export the list to xlsx/csv or an HTML fragment
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// NewRootCommand exposes the same client as a cobra command tree, including
// the full-screen "browse" mode. See App, StartOnlineStatusWatcher, and
// runREPL for details.
package cli
