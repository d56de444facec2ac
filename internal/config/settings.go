package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the user preferences read from settings.yaml
type Settings struct {
	// WrapWidth caps the body editor width; 0 means use the pane width
	WrapWidth      int           `yaml:"wrap_width"`
	LogLevel       string        `yaml:"log_level"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	DefaultMethod  string        `yaml:"default_method"`
	// Collection is opened when no --collection flag is given
	Collection string `yaml:"collection,omitempty"`
	// Clipboard disables system clipboard access when false
	Clipboard *bool `yaml:"clipboard,omitempty"`
	// Insecure skips TLS certificate verification
	Insecure bool `yaml:"insecure,omitempty"`
	// CAFile replaces the system roots with a PEM bundle
	CAFile string `yaml:"ca_file,omitempty"`
}

// DefaultSettings returns the settings used when the file is missing
func DefaultSettings() Settings {
	return Settings{
		LogLevel:       "info",
		RequestTimeout: 30 * time.Second,
		DefaultMethod:  "GET",
	}
}

// ClipboardEnabled reports whether the system clipboard may be used
func (s Settings) ClipboardEnabled() bool {
	return s.Clipboard == nil || *s.Clipboard
}

// LoadSettings reads path over the defaults. A missing file yields defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings.yaml: %w", err)
	}

	if settings.WrapWidth < 0 {
		settings.WrapWidth = 0
	}
	if settings.RequestTimeout <= 0 {
		settings.RequestTimeout = DefaultSettings().RequestTimeout
	}
	if settings.DefaultMethod == "" {
		settings.DefaultMethod = DefaultSettings().DefaultMethod
	}
	settings.DefaultMethod = strings.ToUpper(settings.DefaultMethod)

	return settings, nil
}

// SaveSettings writes settings as YAML
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, FilePermissions)
}

// ParseLevel maps a log level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// SetupLogging points the default slog logger at path. The returned
// function closes the file.
func SetupLogging(path string, level slog.Level) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, FilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	return f.Close, nil
}
