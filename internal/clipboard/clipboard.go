package clipboard

import (
	"errors"
	"log/slog"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard backend is usable.
var ErrUnavailable = errors.New("clipboard unavailable")

// Provider supplies text for paste operations.
type Provider interface {
	GetText() (string, error)
}

// System reads the OS clipboard.
type System struct{}

// GetText returns the clipboard content.
func (System) GetText() (string, error) {
	if sysclip.Unsupported {
		return "", ErrUnavailable
	}
	return sysclip.ReadAll()
}

// Static is a fixed-content provider, used when the system clipboard is
// disabled and in tests.
type Static struct {
	Text string
	Err  error
}

// GetText returns the fixed text or error.
func (s Static) GetText() (string, error) {
	return s.Text, s.Err
}

// Read fetches text from p. A nil provider or any error counts as "no paste";
// errors are logged at debug.
func Read(p Provider) (string, bool) {
	if p == nil {
		slog.Debug("paste skipped", "error", ErrUnavailable)
		return "", false
	}
	text, err := p.GetText()
	if err != nil {
		slog.Debug("paste skipped", "error", err)
		return "", false
	}
	if text == "" {
		return "", false
	}
	return text, true
}
