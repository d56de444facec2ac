package pane

import (
	"strings"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/router"
	"github.com/studiowebux/reqtui/internal/textbuf"
	"github.com/studiowebux/reqtui/internal/types"
)

// URLEdited is completed whenever the URL text changes.
type URLEdited struct {
	URL string
}

// MethodChanged is completed when the method selector moves.
type MethodChanged struct {
	Method string
}

// SendRequest asks the caller to execute the current request.
type SendRequest struct{}

// AddressBar is the method selector and the single-line URL field.
type AddressBar struct {
	method string
	url    *textbuf.Buffer
	clip   clipboard.Provider
}

func NewAddressBar(clip clipboard.Provider) *AddressBar {
	return &AddressBar{
		method: types.Methods[0],
		url:    textbuf.New(),
		clip:   clip,
	}
}

// Load shows method and url, cursor at the end of the URL.
func (a *AddressBar) Load(method, url string) {
	if method == "" {
		method = types.Methods[0]
	}
	a.method = strings.ToUpper(method)
	a.url.LoadAtEnd(flatten.Replace(url))
}

func (a *AddressBar) Method() string {
	return a.method
}

func (a *AddressBar) URL() string {
	return a.url.Text()
}

func (a *AddressBar) Buffer() *textbuf.Buffer {
	return a.url
}

func (a *AddressBar) KeyContext() keybinds.Context {
	return keybinds.ContextAddressBar
}

// Update returns SendRequest, MethodChanged or URLEdited completions.
func (a *AddressBar) Update(ev event.Event, action keybinds.Action) router.Result {
	switch action {
	case keybinds.ActionSendRequest:
		return router.Complete(SendRequest{})
	case keybinds.ActionCycleMethod:
		a.method = types.NextMethod(a.method)
		return router.Complete(MethodChanged{Method: a.method})
	}

	handled, changed := editText(a.url, ev, action, a.clip, false)
	switch {
	case changed:
		return router.Complete(URLEdited{URL: a.url.Text()})
	case handled:
		return router.Consume()
	}
	return router.Pass()
}

// View renders "METHOD url", continuation rows indented under the URL.
func (a *AddressBar) View(width, height int) Frame {
	label := a.method + " "
	indent := len(label)

	f := bufferFrame(a.url, width-indent, height, true)
	for i, line := range f.Lines {
		if i == 0 {
			f.Lines[i] = label + line
			continue
		}
		f.Lines[i] = strings.Repeat(" ", indent) + line
	}
	return f.offset(0, indent)
}
