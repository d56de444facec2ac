package clipboard

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		wantText string
		wantOK   bool
	}{
		{"nil provider", nil, "", false},
		{"error", Static{Err: errors.New("no display")}, "", false},
		{"empty", Static{}, "", false},
		{"text", Static{Text: "hello"}, "hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := Read(tt.provider)
			if text != tt.wantText || ok != tt.wantOK {
				t.Errorf("Read() = (%q, %v), want (%q, %v)", text, ok, tt.wantText, tt.wantOK)
			}
		})
	}
}

func TestReadLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, ok := Read(Static{Err: errors.New("no display")}); ok {
		t.Fatal("Read() ok = true, want false")
	}

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "no display") {
		t.Errorf("log output = %q, want debug entry with the error", out)
	}
}
