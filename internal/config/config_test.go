package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitializeAt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".reqtui")
	if err := InitializeAt(dir); err != nil {
		t.Fatalf("InitializeAt() error = %v", err)
	}

	for _, path := range []string{ConfigDir, CollectionsDir, SettingsFile} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s to exist: %v", path, err)
		}
	}
	if filepath.Dir(KeybindsFile) != dir || filepath.Dir(LogFile) != dir {
		t.Errorf("Expected keybinds and log files under %s", dir)
	}

	settings, err := LoadSettings(SettingsFile)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", settings)
	}
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s Settings)
		wantErr bool
	}{
		{
			name:    "overrides",
			content: "wrap_width: 72\nlog_level: debug\nrequest_timeout: 5s\ndefault_method: post\nclipboard: false\ninsecure: true\nca_file: /etc/ca.pem\n",
			check: func(t *testing.T, s Settings) {
				if s.WrapWidth != 72 || s.LogLevel != "debug" || s.RequestTimeout != 5*time.Second {
					t.Errorf("unexpected settings %+v", s)
				}
				if s.DefaultMethod != "POST" {
					t.Errorf("DefaultMethod = %q, want POST", s.DefaultMethod)
				}
				if s.ClipboardEnabled() {
					t.Error("Expected clipboard to be disabled")
				}
				if !s.Insecure || s.CAFile != "/etc/ca.pem" {
					t.Errorf("TLS settings = %v, %q", s.Insecure, s.CAFile)
				}
			},
		},
		{
			name:    "invalid values fall back",
			content: "wrap_width: -3\nrequest_timeout: 0s\n",
			check: func(t *testing.T, s Settings) {
				if s.WrapWidth != 0 {
					t.Errorf("WrapWidth = %d, want 0", s.WrapWidth)
				}
				if s.RequestTimeout != 30*time.Second {
					t.Errorf("RequestTimeout = %v, want 30s", s.RequestTimeout)
				}
				if !s.ClipboardEnabled() {
					t.Error("Expected clipboard enabled by default")
				}
			},
		},
		{
			name:    "malformed",
			content: "wrap_width: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tt.content), FilePermissions); err != nil {
				t.Fatal(err)
			}

			s, err := LoadSettings(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "reqtui.log")
	closeLog, err := SetupLogging(path, slog.LevelWarn)
	if err != nil {
		t.Fatalf("SetupLogging() error = %v", err)
	}

	slog.Info("hidden")
	slog.Warn("shown", "key", "value")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown key=value") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestResolveCollection(t *testing.T) {
	dir := t.TempDir()
	if err := InitializeAt(dir); err != nil {
		t.Fatal(err)
	}
	stored := filepath.Join(CollectionsDir, "api.yaml")
	if err := os.WriteFile(stored, []byte("[]"), FilePermissions); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveCollection("api.yaml")
	if err != nil || got != stored {
		t.Errorf("ResolveCollection(api.yaml) = %q, %v", got, err)
	}

	abs := filepath.Join(dir, "x.yaml")
	if got, _ := ResolveCollection(abs); got != abs {
		t.Errorf("ResolveCollection(abs) = %q", got)
	}

	if _, err := ResolveCollection(""); err == nil {
		t.Error("Expected error for empty path")
	}
}
