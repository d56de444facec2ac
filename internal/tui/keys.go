package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/router"
)

// handleKeyPress routes one key message through the focus chain
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	ev := m.router.Normalize(msg)

	// Force quit works everywhere, popups included
	if action, ok := m.keys.Match(m.router.KeyContext(), ev.String()); ok && action == keybinds.ActionQuitForce {
		m.Cleanup()
		return tea.Quit
	}

	res := m.router.Dispatch(ev)
	switch res.Kind {
	case router.Completed:
		m.logger.Debug("dispatch completed", "key", ev.String(), "target", m.router.ActiveTarget(), "payload", res)
		return m.applyCompletion(res.Payload)
	case router.Consumed:
		// Any handled key clears a stale error
		m.errorMsg = ""
	}
	return nil
}
