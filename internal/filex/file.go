// Package filex holds filesystem helpers for local client files: the sqlite
// database, exports, and image uploads.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// EnsureParentDir creates the directory that will hold path, so that
// a database or export file can be created there. It returns the absolute
// path of that directory.
func EnsureParentDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Ext returns the lower-cased extension of path, including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// HasExt reports whether path ends in one of exts (compared case-insensitively).
func HasExt(path string, exts ...string) bool {
	return slices.Contains(exts, Ext(path))
}

// RegularFile checks that path exists and is not a directory.
func RegularFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
