package tui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/reqtui/internal/executor"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/pane"
)

// layout holds the content size of each pane for one frame
type layout struct {
	sidebarWidth, sidebarHeight int
	mainWidth                   int
	editorHeight                int
	responseHeight              int
}

func (m Model) computeLayout() layout {
	sidebarWidth := max(SidebarMinWidth, m.width*SidebarWidthPercent/100)
	if sidebarWidth > m.width/2 {
		sidebarWidth = m.width / 2
	}

	mainHeight := m.height - StatusBarHeight
	rest := mainHeight - (AddressBarHeight + ViewportBorderWidth)
	editorTotal := rest / 2

	return layout{
		sidebarWidth:   max(1, sidebarWidth-ViewportBorderWidth),
		sidebarHeight:  max(1, mainHeight-ViewportBorderWidth),
		mainWidth:      max(1, m.width-sidebarWidth-ViewportBorderWidth),
		editorHeight:   max(1, editorTotal-ViewportBorderWidth),
		responseHeight: max(1, rest-editorTotal-ViewportBorderWidth),
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if d, ok := m.router.ModalDescriptor(); ok {
		return m.renderModal(d)
	}

	return m.renderMain()
}

// renderMain renders the request list, address bar, editor and response
func (m Model) renderMain() string {
	l := m.computeLayout()
	focused := m.router.ActiveTarget()

	sidebar := m.box(focus.TargetRequestList, l.sidebarWidth, l.sidebarHeight,
		m.renderList(l.sidebarWidth, l.sidebarHeight, focused == focus.TargetRequestList))

	address := m.box(focus.TargetAddressBar, l.mainWidth, AddressBarHeight,
		renderFrame(m.address.View(l.mainWidth-CursorReserve, AddressBarHeight), focused == focus.TargetAddressBar))

	editorWidth := l.mainWidth - CursorReserve
	if m.settings.WrapWidth > 0 {
		editorWidth = min(editorWidth, m.settings.WrapWidth)
	}
	editor := m.box(focus.TargetRequestBody, l.mainWidth, l.editorHeight,
		renderFrame(m.editor.View(editorWidth, l.editorHeight), focused == focus.TargetRequestBody))

	response := m.box(focus.TargetResponseBody, l.mainWidth, l.responseHeight,
		m.renderResponse(l.mainWidth, l.responseHeight))

	right := lipgloss.JoinVertical(lipgloss.Left, address, editor, response)
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

// box draws a bordered pane, green when focused
func (m Model) box(target focus.Target, width, height int, content string) string {
	borderColor := colorGray
	if m.router.ActiveTarget() == target {
		borderColor = colorGreen
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height).
		MaxHeight(height + ViewportBorderWidth).
		Render(content)
}

func (m Model) renderList(width, height int, focused bool) string {
	title := styleTitle.Render("Requests")
	if q := m.list.Query(); q != "" {
		title += styleWarning.Render(" /" + q)
	}
	frame := m.list.View(width, max(0, height-1))
	return title + "\n" + renderFrame(frame, focused)
}

// renderResponse renders the response summary line and the visible body
func (m Model) renderResponse(width, height int) string {
	var summary string
	resp := m.response.Response()
	switch {
	case m.loading:
		summary = styleWarning.Render("Executing request...")
	case resp == nil:
		summary = styleSubtle.Render("Response")
	case resp.Error != "":
		summary = styleError.Render("Request failed")
	default:
		summary = fmt.Sprintf("%s  %s  %s",
			statusStyle(resp.Status).Render(resp.StatusText),
			executor.FormatDuration(resp.Duration),
			executor.FormatSize(resp.ResponseSize))
	}
	summary += styleSubtle.Render("  [" + m.response.Tab().String() + "]")
	if f := m.response.Filter(); f != "" {
		summary += styleWarning.Render("  filter: " + f)
	}

	frame := m.response.View(width, max(0, height-1))
	if resp != nil {
		summary += styleSubtle.Render(fmt.Sprintf("  %3.f%%", m.response.ScrollPercent()*100))
	}
	lines := frame.Lines
	if resp != nil && resp.Error == "" && m.response.Tab() == pane.ResponseTabBody && (resp.IsJSON() || m.response.Filter() != "") {
		lines = highlightLines(lines)
	}
	return summary + "\n" + strings.Join(lines, "\n")
}

func statusStyle(status int) lipgloss.Style {
	switch {
	case executor.IsSuccessStatus(status):
		return styleSuccess
	case executor.IsClientErrorStatus(status):
		return styleWarning
	case executor.IsServerErrorStatus(status):
		return styleError
	}
	return lipgloss.NewStyle()
}

// renderFrame draws a pane frame, with the cursor only when focused
func renderFrame(f pane.Frame, focused bool) string {
	lines := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		if focused && f.ShowCursor && i == f.Cursor.Row {
			line = addCursorAt(line, f.Cursor.Col)
		}
		if i == f.Highlight {
			line = styleSelected.Render(line)
		}
		lines[i] = line
	}
	if focused && f.ShowCursor && len(lines) == 0 {
		lines = append(lines, addCursorAt("", 0))
	}
	return strings.Join(lines, "\n")
}

// addCursorAt marks rune position pos, or appends a block past the end
func addCursorAt(s string, pos int) string {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos >= len(runes) {
		return s + "█"
	}
	return string(runes[:pos]) + styleCursor.Render(string(runes[pos])) + string(runes[pos+1:])
}

var (
	jsonLexer  = chroma.Coalesce(lexers.Get("json"))
	jsonStyle  = styles.Get("monokai")
	jsonFormat = formatters.Get("terminal256")
)

// highlightLines colors JSON rows. Rows are highlighted one at a time
// since wrapping may split tokens; on any error the row is left plain.
func highlightLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		it, err := jsonLexer.Tokenise(nil, line)
		if err != nil {
			continue
		}
		var sb strings.Builder
		if err := jsonFormat.Format(&sb, jsonStyle, it); err != nil {
			continue
		}
		out[i] = strings.TrimSuffix(sb.String(), "\n")
	}
	return out
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("%s %s", m.request.Method, m.request.Title())
	if m.current < 0 {
		left = "scratch"
	}

	right := ""
	if m.errorMsg != "" {
		right = styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		right = m.statusMsg
	} else {
		right = styleSubtle.Render(m.statusHint())
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + right
}

// statusHint lists the main keys of the focused pane
func (m Model) statusHint() string {
	ctx := m.router.KeyContext()
	var parts []string
	for _, action := range []keybinds.Action{keybinds.ActionFocusNext, keybinds.ActionSendRequest, keybinds.ActionQuitForce} {
		keys := m.keys.GetBinding(ctx, action)
		if len(keys) == 0 {
			continue
		}
		info := keybinds.GetActionInfo(action)
		parts = append(parts, strings.Join(keys, "/")+" "+strings.ToLower(info.Description))
	}
	return strings.Join(append(parts, string(ctx)), " | ")
}
