package pane

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/router"
)

// SelectRequest is completed when a request is picked. Index refers to the
// unfiltered list.
type SelectRequest struct {
	Index int
}

// SearchCleared is completed when Esc drops an active search.
type SearchCleared struct{}

// RequestList is the navigable list of requests in the collection.
type RequestList struct {
	titles  []string
	visible []int // indexes into titles, in display order
	cursor  int
	scroll  int
	height  int
	query   string
}

func NewRequestList() *RequestList {
	return &RequestList{}
}

// SetTitles replaces the list content, keeping the search and the cursor
// when possible.
func (l *RequestList) SetTitles(titles []string) {
	l.titles = titles
	l.applySearch()
}

// Query returns the active search.
func (l *RequestList) Query() string {
	return l.query
}

// Search narrows the list to titles fuzzy-matching query, best match first.
func (l *RequestList) Search(query string) {
	l.query = query
	l.cursor = 0
	l.scroll = 0
	l.applySearch()
}

func (l *RequestList) applySearch() {
	l.visible = l.visible[:0]
	if l.query == "" {
		for i := range l.titles {
			l.visible = append(l.visible, i)
		}
	} else {
		for _, match := range fuzzy.Find(l.query, l.titles) {
			l.visible = append(l.visible, match.Index)
		}
	}
	l.cursor = clampIndex(l.cursor, len(l.visible))
}

// Len is the number of visible entries.
func (l *RequestList) Len() int {
	return len(l.visible)
}

// Selected returns the unfiltered index under the cursor.
func (l *RequestList) Selected() (int, bool) {
	if len(l.visible) == 0 {
		return 0, false
	}
	return l.visible[l.cursor], true
}

// Select moves the cursor to the entry for unfiltered index i, if visible.
func (l *RequestList) Select(i int) bool {
	for pos, idx := range l.visible {
		if idx == i {
			l.cursor = pos
			return true
		}
	}
	return false
}

func (l *RequestList) KeyContext() keybinds.Context {
	return keybinds.ContextRequestList
}

// Update moves the cursor. It returns SelectRequest, SearchCleared and
// SendRequest completions.
func (l *RequestList) Update(_ event.Event, action keybinds.Action) router.Result {
	page := max(1, l.height-1)

	switch action {
	case keybinds.ActionSendRequest:
		return router.Complete(SendRequest{})
	case keybinds.ActionSelectRequest:
		if i, ok := l.Selected(); ok {
			return router.Complete(SelectRequest{Index: i})
		}
	case keybinds.ActionClearSearch:
		if l.query == "" {
			return router.Pass()
		}
		l.Search("")
		return router.Complete(SearchCleared{})
	case keybinds.ActionNavigateUp:
		l.cursor = clampIndex(l.cursor-1, len(l.visible))
	case keybinds.ActionNavigateDown:
		l.cursor = clampIndex(l.cursor+1, len(l.visible))
	case keybinds.ActionPageUp:
		l.cursor = clampIndex(l.cursor-page, len(l.visible))
	case keybinds.ActionPageDown:
		l.cursor = clampIndex(l.cursor+page, len(l.visible))
	case keybinds.ActionGoToTop:
		l.cursor = 0
	case keybinds.ActionGoToBottom:
		l.cursor = clampIndex(len(l.visible)-1, len(l.visible))
	default:
		return router.Pass()
	}
	return router.Consume()
}

func (l *RequestList) selectedTitle() (string, bool) {
	i, ok := l.Selected()
	if !ok {
		return "", false
	}
	return l.titles[i], true
}

// DeleteTrigger asks to confirm deleting the selected request.
func (l *RequestList) DeleteTrigger() (focus.Modal, bool) {
	title, ok := l.selectedTitle()
	if !ok {
		return nil, false
	}
	return focus.NewConfirm(keybinds.ActionDeleteRequest, fmt.Sprintf("Delete request '%s'?", title)), true
}

// RenameTrigger opens an input seeded with the selected title.
func (l *RequestList) RenameTrigger() (focus.Modal, bool) {
	title, ok := l.selectedTitle()
	if !ok {
		return nil, false
	}
	return focus.NewTextInput(keybinds.ActionRenameRequest, "Rename request", title), true
}

// NewTrigger opens an input for the name of a new request.
func (l *RequestList) NewTrigger() (focus.Modal, bool) {
	return focus.NewTextInput(keybinds.ActionNewRequest, "New request name", ""), true
}

// SearchTrigger opens the search input seeded with the active query.
func (l *RequestList) SearchTrigger() (focus.Modal, bool) {
	return focus.NewTextInput(keybinds.ActionSearchRequests, "Search requests", l.query), true
}

// View renders visible titles, truncated to width cells.
func (l *RequestList) View(width, height int) Frame {
	l.height = height
	f := Frame{Highlight: -1}

	if len(l.visible) == 0 {
		msg := "(no requests)"
		if l.query != "" {
			msg = "(no matches)"
		}
		if height > 0 {
			f.Lines = []string{msg}
		}
		return f
	}

	start, end := listWindow(len(l.visible), l.cursor, l.scroll, height)
	l.scroll = start
	for pos := start; pos < end; pos++ {
		prefix := "  "
		if pos == l.cursor {
			prefix = "> "
			f.Highlight = len(f.Lines)
		}
		line := prefix + l.titles[l.visible[pos]]
		f.Lines = append(f.Lines, runewidth.Truncate(line, max(1, width), "…"))
	}
	return f
}
