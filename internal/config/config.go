package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.reqtui)
	ConfigDir string

	// CollectionsDir is where collection files are looked up by default
	CollectionsDir string

	// SettingsFile holds user settings (YAML)
	SettingsFile string

	// KeybindsFile holds keybinding overrides (JSON with comments)
	KeybindsFile string

	// LogFile receives the application log while the TUI owns the terminal
	LogFile string
)

// Initialize sets up the configuration directories and files.
// It creates ~/.reqtui/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".reqtui"))
}

// InitializeAt is Initialize with an explicit configuration directory.
func InitializeAt(dir string) error {
	ConfigDir = dir
	CollectionsDir = filepath.Join(ConfigDir, "collections")
	SettingsFile = filepath.Join(ConfigDir, "settings.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "reqtui.log")

	for _, d := range []string{ConfigDir, CollectionsDir} {
		if err := os.MkdirAll(d, DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	if _, err := os.Stat(SettingsFile); errors.Is(err, fs.ErrNotExist) {
		if err := SaveSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// ResolveCollection turns a --collection argument into a file path.
// "~/" is expanded; bare names are looked up in CollectionsDir when they
// do not exist relative to the working directory.
func ResolveCollection(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no collection given")
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if filepath.IsAbs(path) {
		return path, nil
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if CollectionsDir != "" {
		candidate := filepath.Join(CollectionsDir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return path, nil
}
