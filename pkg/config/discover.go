package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Discover returns the configuration file to use.
//
// An explicit path must exist. Otherwise FileName is searched for from
// startDir upwards, stopping at the home directory, at a directory
// containing .git, or at the filesystem root.
func Discover(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// Resolve discovers and loads the configuration, falling back to Default
// when no file is found. The returned path is empty in that case.
func Resolve(startDir, explicitPath string) (*Config, string, error) {
	path, err := Discover(startDir, explicitPath)
	switch {
	case errors.Is(err, ErrNotFound):
		return Default(), "", nil
	case err != nil:
		return nil, "", err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
