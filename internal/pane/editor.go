package pane

import (
	"fmt"
	"slices"
	"strings"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/kvedit"
	"github.com/studiowebux/reqtui/internal/router"
	"github.com/studiowebux/reqtui/internal/textbuf"
	"github.com/studiowebux/reqtui/internal/types"
)

// Tab selects what the request editor shows.
type Tab int

const (
	TabBody Tab = iota
	TabHeaders
	TabParams
)

var tabNames = []string{"Body", "Headers", "Params"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "unknown"
	}
	return tabNames[t]
}

// BodyEdited is completed after every change to the body text. Offset is
// the cursor position in the flattened text.
type BodyEdited struct {
	Text   string
	Offset int
}

// FormatFailed is completed when prettifying the body fails. The message
// stays on the body buffer until the next successful format.
type FormatFailed struct {
	Err error
}

// PairCommitted is completed when a header or param is added or edited.
// Index is the position of the pair in its list.
type PairCommitted struct {
	Tab   Tab
	Index int
	Pair  types.Pair
}

// PairRejected is completed when a pair is submitted without a key. The
// pair editor stays open.
type PairRejected struct {
	Reason string
}

// RequestEditor edits the body, headers and params of the current request.
type RequestEditor struct {
	tab    Tab
	body   *textbuf.Buffer
	lists  [3][]types.Pair
	cursor [3]int
	scroll [3]int

	pair      *kvedit.Editor
	editing   bool
	editIndex int

	clip clipboard.Provider
}

func NewRequestEditor(clip clipboard.Provider) *RequestEditor {
	return &RequestEditor{
		body: textbuf.New(),
		pair: kvedit.New(),
		clip: clip,
	}
}

// Load replaces the editor content with req. The active tab is kept.
func (e *RequestEditor) Load(req *types.Request) {
	e.body.Load(req.Body)
	e.lists[TabHeaders] = slices.Clone(req.Headers)
	e.lists[TabParams] = slices.Clone(req.Params)
	e.cursor = [3]int{}
	e.scroll = [3]int{}
	e.closePair()
}

func (e *RequestEditor) Tab() Tab {
	return e.tab
}

// SetTab switches tabs, closing an open pair editor.
func (e *RequestEditor) SetTab(t Tab) {
	if t < TabBody || t > TabParams {
		return
	}
	e.tab = t
	e.closePair()
}

func (e *RequestEditor) Body() *textbuf.Buffer {
	return e.body
}

func (e *RequestEditor) Headers() []types.Pair {
	return slices.Clone(e.lists[TabHeaders])
}

func (e *RequestEditor) Params() []types.Pair {
	return slices.Clone(e.lists[TabParams])
}

// Editing reports whether the pair editor is open.
func (e *RequestEditor) Editing() bool {
	return e.editing
}

func (e *RequestEditor) Pair() *kvedit.Editor {
	return e.pair
}

// Selected returns the selected index on the current list tab.
func (e *RequestEditor) Selected() int {
	return e.cursor[e.tab]
}

func (e *RequestEditor) KeyContext() keybinds.Context {
	switch {
	case e.editing:
		return keybinds.ContextHeaderEdit
	case e.tab == TabBody:
		return keybinds.ContextRequestBody
	default:
		return keybinds.ContextHeaderList
	}
}

// Update returns BodyEdited, FormatFailed, PairCommitted, PairRejected or
// SendRequest completions.
func (e *RequestEditor) Update(ev event.Event, action keybinds.Action) router.Result {
	if action == keybinds.ActionSendRequest {
		return router.Complete(SendRequest{})
	}
	if e.editing {
		return e.updatePair(ev, action)
	}
	if action == keybinds.ActionNextTab {
		e.SetTab((e.tab + 1) % Tab(len(tabNames)))
		return router.Consume()
	}
	if e.tab == TabBody {
		return e.updateBody(ev, action)
	}
	return e.updateList(action)
}

func (e *RequestEditor) updateBody(ev event.Event, action keybinds.Action) router.Result {
	if action == keybinds.ActionPrettifyBody {
		if err := e.body.PrettifyJSON(); err != nil {
			return router.Complete(FormatFailed{Err: err})
		}
		return router.Complete(e.bodyEdited())
	}

	handled, changed := editText(e.body, ev, action, e.clip, true)
	switch {
	case changed:
		e.body.ClearFormatError()
		return router.Complete(e.bodyEdited())
	case handled:
		return router.Consume()
	}
	return router.Pass()
}

func (e *RequestEditor) bodyEdited() BodyEdited {
	return BodyEdited{Text: e.body.Text(), Offset: e.body.FlattenedOffset()}
}

func (e *RequestEditor) updateList(action keybinds.Action) router.Result {
	list := e.lists[e.tab]

	switch action {
	case keybinds.ActionNavigateUp:
		e.cursor[e.tab] = clampIndex(e.cursor[e.tab]-1, len(list))
	case keybinds.ActionNavigateDown:
		e.cursor[e.tab] = clampIndex(e.cursor[e.tab]+1, len(list))
	case keybinds.ActionHeaderAdd:
		e.pair.Reset()
		e.editing = true
		e.editIndex = -1
	case keybinds.ActionHeaderEdit:
		if len(list) == 0 {
			return router.Consume()
		}
		p := list[e.cursor[e.tab]]
		e.pair.Load(p.Key, p.Value)
		e.editing = true
		e.editIndex = e.cursor[e.tab]
	default:
		return router.Pass()
	}
	return router.Consume()
}

func (e *RequestEditor) updatePair(ev event.Event, action keybinds.Action) router.Result {
	switch action {
	case keybinds.ActionToggleField:
		e.pair.ToggleActive()
		return router.Consume()
	case keybinds.ActionTextCancel:
		e.closePair()
		return router.Consume()
	case keybinds.ActionTextSubmit:
		return e.commitPair()
	case keybinds.ActionTextPaste:
		e.pair.Paste(e.clip)
		return router.Consume()
	case "":
		if e.pair.FeedEvent(ev) {
			return router.Consume()
		}
		return router.Pass()
	}

	if handled, _ := editText(e.pair.ActiveBuffer(), ev, action, e.clip, false); handled {
		return router.Consume()
	}
	return router.Pass()
}

func (e *RequestEditor) commitPair() router.Result {
	key, value := e.pair.Commit()
	key = strings.TrimSpace(flatten.Replace(key))
	value = flatten.Replace(value)
	if key == "" {
		return router.Complete(PairRejected{Reason: fmt.Sprintf("%s name cannot be empty", e.itemName())})
	}

	p := types.Pair{Key: key, Value: value}
	list := e.lists[e.tab]
	index := e.editIndex
	if index < 0 || index >= len(list) {
		list = append(list, p)
		index = len(list) - 1
	} else {
		list[index] = p
	}
	e.lists[e.tab] = list
	e.cursor[e.tab] = index
	e.closePair()

	return router.Complete(PairCommitted{Tab: e.tab, Index: index, Pair: p})
}

func (e *RequestEditor) closePair() {
	e.pair.Reset()
	e.editing = false
	e.editIndex = -1
}

func (e *RequestEditor) itemName() string {
	if e.tab == TabParams {
		return "Param"
	}
	return "Header"
}

// DeleteTrigger opens a confirmation for deleting the selected pair. It
// declines on the body tab, while editing, or when the list is empty.
func (e *RequestEditor) DeleteTrigger() (focus.Modal, bool) {
	if e.tab == TabBody || e.editing || len(e.lists[e.tab]) == 0 {
		return nil, false
	}
	p := e.lists[e.tab][e.cursor[e.tab]]
	msg := fmt.Sprintf("Delete %s '%s'?", strings.ToLower(e.itemName()), p.Key)
	return focus.NewConfirm(keybinds.ActionHeaderDelete, msg), true
}

// DeleteSelected removes the selected pair of the current list tab.
func (e *RequestEditor) DeleteSelected() bool {
	if e.tab == TabBody {
		return false
	}
	list := e.lists[e.tab]
	i := e.cursor[e.tab]
	if i >= len(list) {
		return false
	}
	e.lists[e.tab] = slices.Delete(list, i, i+1)
	e.cursor[e.tab] = clampIndex(i, len(e.lists[e.tab]))
	return true
}

// View renders the tab bar followed by the body or the pair list.
func (e *RequestEditor) View(width, height int) Frame {
	header := e.tabBar()
	if height <= 1 {
		return Frame{Lines: []string{header}, Highlight: -1}
	}

	var f Frame
	if e.tab == TabBody {
		f = bufferFrame(e.body, width, height-1, true)
		if msg := e.body.FormatError(); msg != "" && len(f.Lines) < height-1 {
			f.Lines = append(f.Lines, "! "+msg)
		}
	} else {
		f = e.listFrame(height - 1)
	}

	f = f.offset(1, 0)
	f.Lines = append([]string{header}, f.Lines...)
	return f
}

func (e *RequestEditor) tabBar() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == e.tab {
			parts[i] = "[" + name + "]"
		} else {
			parts[i] = " " + name + " "
		}
	}
	return strings.Join(parts, " ")
}

func (e *RequestEditor) listFrame(height int) Frame {
	list := e.lists[e.tab]
	f := Frame{Highlight: -1}

	rows := height
	if e.editing {
		rows = max(0, height-3)
	}

	if len(list) == 0 {
		f.Lines = append(f.Lines, "  (none)")
	} else {
		start, end := listWindow(len(list), e.cursor[e.tab], e.scroll[e.tab], rows)
		e.scroll[e.tab] = start
		for i := start; i < end; i++ {
			prefix := "  "
			if i == e.cursor[e.tab] {
				prefix = "> "
				f.Highlight = len(f.Lines)
			}
			f.Lines = append(f.Lines, fmt.Sprintf("%s%s: %s", prefix, list[i].Key, list[i].Value))
		}
	}

	if !e.editing {
		return f
	}

	const keyLabel, valueLabel = "Name:  ", "Value: "
	// Shown as committed: line breaks from a paste are dropped.
	key := strings.Join(e.pair.Key().Lines(), "")
	value := strings.Join(e.pair.Value().Lines(), "")
	f.Lines = append(f.Lines, "", keyLabel+key, valueLabel+value)

	active := e.pair.ActiveBuffer()
	f.ShowCursor = true
	f.Cursor.Col = len(keyLabel) + active.FlattenedOffset() - active.Cursor().Row
	f.Cursor.Row = len(f.Lines) - 2
	if e.pair.Active() == kvedit.SideValue {
		f.Cursor.Row = len(f.Lines) - 1
	}
	return f
}
