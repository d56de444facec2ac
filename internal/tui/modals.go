package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
)

// renderModal renders the popup on top of the focus chain, centered
func (m Model) renderModal(d focus.Descriptor) string {
	var content, footer string
	get := m.keys.GetBindingString

	switch d.State {
	case focus.ConfirmPending:
		yes, no := "  Yes  ", "  No  "
		if d.Yes {
			yes = styleSelected.Render("[ Yes ]")
		} else {
			no = styleSelected.Render("[ No ]")
		}
		content = d.Title + "\n\n" + yes + "   " + no
		footer = fmt.Sprintf("[%s] switch [%s] choose [%s]es [%s]o",
			get(keybinds.ContextConfirm, keybinds.ActionToggleChoice),
			get(keybinds.ContextConfirm, keybinds.ActionChoose),
			get(keybinds.ContextConfirm, keybinds.ActionConfirm),
			get(keybinds.ContextConfirm, keybinds.ActionCancel))

	case focus.TextInputPending:
		content = "> " + addCursorAt(d.Text, d.Cursor)
		footer = fmt.Sprintf("[%s] submit [%s] cancel",
			get(keybinds.ContextTextInput, keybinds.ActionTextSubmit),
			get(keybinds.ContextTextInput, keybinds.ActionTextCancel))
	}

	title := d.Title
	if d.State == focus.ConfirmPending {
		title = "Confirm"
	}
	return m.renderModalWithFooter(title, content, footer, ModalWidth, ModalHeight)
}

// renderModalWithFooter renders a bordered popup centered on the screen
func (m Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	// For small terminals, use almost full screen
	maxWidth := m.width - ViewportPaddingHorizontal
	maxHeight := m.height - ModalHeightMarginSmall
	width = max(1, min(width, maxWidth))
	height = max(1, min(height, maxHeight))

	fullContent := styleTitle.Render(title) + "\n\n" + content
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	modalBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Padding(0, 1).
		Render(strings.TrimRight(fullContent, "\n"))

	// For small terminals, don't center - just render
	if width >= m.width-2 || height >= m.height-1 {
		return modalBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}
