// Package testutil provides testing utilities for the statsview project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EnvPrefix matches the prefix config.Load reads overrides from.
const EnvPrefix = "STATSVIEW_"

// SetupTestDir creates a temp directory, resolves symlinks (for macOS),
// changes to it and points HOME at it, so config lookup in "." and
// ~/.config/statsview only sees files the test writes. STATSVIEW_*
// variables from the caller's environment are cleared.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	t.Setenv("HOME", tmpDir)
	ClearEnv(t)

	return tmpDir
}

// ClearEnv unsets every STATSVIEW_* variable for the duration of the test.
func ClearEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		// Setenv registers the restore; the unset hides the variable from viper.
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}
