package pane

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tidwall/pretty"

	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/filter"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/router"
	"github.com/studiowebux/reqtui/internal/types"
	"github.com/studiowebux/reqtui/internal/wrap"
)

// ResponseTab selects what the response viewer shows.
type ResponseTab int

const (
	ResponseTabBody ResponseTab = iota
	ResponseTabHeaders
)

func (t ResponseTab) String() string {
	if t == ResponseTabHeaders {
		return "Headers"
	}
	return "Body"
}

// FilterCleared is completed when the active filter is dropped.
type FilterCleared struct{}

// ResponseView is the read-only, scrollable view of the last response.
type ResponseView struct {
	tab      ResponseTab
	response *types.Response

	filter   string
	filtered string

	vp    viewport.Model
	rows  []string
	width int
}

func NewResponseView() *ResponseView {
	return &ResponseView{vp: viewport.New(0, 0)}
}

// SetResponse shows resp and drops any filter.
func (v *ResponseView) SetResponse(resp *types.Response) {
	v.response = resp
	v.filter = ""
	v.filtered = ""
	v.refresh()
	v.vp.GotoTop()
}

func (v *ResponseView) Response() *types.Response {
	return v.response
}

func (v *ResponseView) Tab() ResponseTab {
	return v.tab
}

// Filter returns the active JMESPath expression.
func (v *ResponseView) Filter() string {
	return v.filter
}

// SetFilter applies a JMESPath expression to the body. On error the
// previous view is kept. An empty expression clears the filter.
func (v *ResponseView) SetFilter(expr string) error {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		v.ClearFilter()
		return nil
	}
	if v.response == nil {
		return fmt.Errorf("no response to filter")
	}
	if !filter.IsValidJMESPath(expr) {
		return fmt.Errorf("invalid JMESPath expression %q", expr)
	}

	out, err := filter.Apply(v.response.Body, expr)
	if err != nil {
		return err
	}
	v.filter = expr
	v.filtered = out
	v.tab = ResponseTabBody
	v.refresh()
	v.vp.GotoTop()
	return nil
}

func (v *ResponseView) ClearFilter() {
	v.filter = ""
	v.filtered = ""
	v.refresh()
}

// FilterTrigger opens the filter input seeded with the active expression.
// It declines when there is no JSON body.
func (v *ResponseView) FilterTrigger() (focus.Modal, bool) {
	if v.response == nil || v.response.Body == "" {
		return nil, false
	}
	return focus.NewTextInput(keybinds.ActionFilterResponse, "JMESPath filter", v.filter), true
}

func (v *ResponseView) KeyContext() keybinds.Context {
	return keybinds.ContextResponseBody
}

// Update scrolls and switches tabs. It returns SendRequest and
// FilterCleared completions.
func (v *ResponseView) Update(_ event.Event, action keybinds.Action) router.Result {
	switch action {
	case keybinds.ActionSendRequest:
		return router.Complete(SendRequest{})
	case keybinds.ActionClearFilter:
		if v.filter == "" {
			return router.Consume()
		}
		v.ClearFilter()
		return router.Complete(FilterCleared{})
	case keybinds.ActionNextTab:
		v.tab = (v.tab + 1) % 2
		v.refresh()
		v.vp.GotoTop()
	case keybinds.ActionNavigateUp:
		v.vp.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		v.vp.ScrollDown(1)
	case keybinds.ActionPageUp:
		v.vp.PageUp()
	case keybinds.ActionPageDown:
		v.vp.PageDown()
	case keybinds.ActionGoToTop:
		v.vp.GotoTop()
	case keybinds.ActionGoToBottom:
		v.vp.GotoBottom()
	default:
		return router.Pass()
	}
	return router.Consume()
}

// Lines returns the unwrapped content of the current tab.
func (v *ResponseView) Lines() []string {
	if v.response == nil {
		return []string{"No response yet. Press ctrl+r to send the request."}
	}

	if v.tab == ResponseTabHeaders {
		if len(v.response.Headers) == 0 {
			return []string{"(no headers)"}
		}
		lines := make([]string, 0, len(v.response.Headers))
		for _, h := range v.response.Headers {
			lines = append(lines, h.Key+": "+h.Value)
		}
		return lines
	}

	if v.response.Error != "" {
		return []string{"Error: " + v.response.Error}
	}
	body := v.response.Body
	switch {
	case v.filter != "":
		body = v.filtered
	case v.response.IsJSON():
		body = strings.TrimSuffix(string(pretty.Pretty([]byte(body))), "\n")
	}
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}

func (v *ResponseView) refresh() {
	rows := slices.Collect(wrap.Rows(v.Lines(), max(1, v.width)))
	v.rows = wrap.Texts(rows)
	v.vp.SetContent(strings.Join(v.rows, "\n"))
}

// ScrollPercent reports how far the view is scrolled, 0 to 1.
func (v *ResponseView) ScrollPercent() float64 {
	return v.vp.ScrollPercent()
}

// View renders the visible rows wrapped at width.
func (v *ResponseView) View(width, height int) Frame {
	width = max(1, width)
	height = max(0, height)
	if width != v.width || height != v.vp.Height {
		v.width = width
		v.vp.Width = width
		v.vp.Height = height
		v.refresh()
	}

	start := min(v.vp.YOffset, len(v.rows))
	end := min(start+height, len(v.rows))
	return Frame{Lines: slices.Clone(v.rows[start:end]), Highlight: -1}
}
