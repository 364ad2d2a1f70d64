package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/dexr/internal/model"
	"github.com/inovacc/dexr/internal/params"
)

// newLogger builds the command logger; debug level with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveCacheDir picks the cache directory: flag, then DEXR_CACHE_DIR,
// then the application data directory.
func resolveCacheDir(cfg model.Config) string {
	if flagCacheDir != "" {
		return flagCacheDir
	}

	if cfg.CacheDir != "" {
		return cfg.CacheDir
	}

	return params.AppdataDir
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete the cache? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}
