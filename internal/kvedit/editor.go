// Package kvedit edits a key/value pair (a header or a query parameter)
// as two text buffers with one active side.
package kvedit

import (
	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/textbuf"
)

// Side selects which buffer receives input.
type Side int

const (
	SideKey Side = iota
	SideValue
)

func (s Side) String() string {
	if s == SideValue {
		return "value"
	}
	return "key"
}

// Editor holds the key and value buffers of one pair.
type Editor struct {
	key    *textbuf.Buffer
	value  *textbuf.Buffer
	active Side
}

// New returns an empty editor with the key side active.
func New() *Editor {
	return &Editor{
		key:   textbuf.New(),
		value: textbuf.New(),
	}
}

// Load seeds the editor with an existing pair. Cursors go to the end of
// each side and the key side becomes active.
func (e *Editor) Load(key, value string) {
	e.key.LoadAtEnd(key)
	e.value.LoadAtEnd(value)
	e.active = SideKey
}

// ToggleActive swaps the side that receives input.
func (e *Editor) ToggleActive() {
	if e.active == SideKey {
		e.active = SideValue
	} else {
		e.active = SideKey
	}
}

// Active returns the side currently receiving input.
func (e *Editor) Active() Side {
	return e.active
}

// ActiveBuffer returns the buffer of the active side.
func (e *Editor) ActiveBuffer() *textbuf.Buffer {
	if e.active == SideValue {
		return e.value
	}
	return e.key
}

// Key returns the key buffer.
func (e *Editor) Key() *textbuf.Buffer { return e.key }

// Value returns the value buffer.
func (e *Editor) Value() *textbuf.Buffer { return e.value }

// FeedChar inserts r at the active cursor.
func (e *Editor) FeedChar(r rune) {
	e.ActiveBuffer().InsertChar(r)
}

// FeedBackspace deletes backward on the active side.
func (e *Editor) FeedBackspace() {
	e.ActiveBuffer().DeleteBackward()
}

// FeedPaste inserts text at the active cursor. The first pasted line merges
// into the current line and each following line becomes a new line.
func (e *Editor) FeedPaste(text string) {
	e.ActiveBuffer().InsertString(text)
}

// Paste reads p and feeds its text to the active side. It reports whether
// anything was pasted; an unavailable clipboard leaves the editor as is.
func (e *Editor) Paste(p clipboard.Provider) bool {
	text, ok := clipboard.Read(p)
	if !ok {
		return false
	}
	e.FeedPaste(text)
	return true
}

// Commit returns the current key and value text without changing the editor.
func (e *Editor) Commit() (key, value string) {
	return e.key.Text(), e.value.Text()
}

// Reset clears both sides and activates the key side.
func (e *Editor) Reset() {
	e.key.Clear()
	e.value.Clear()
	e.active = SideKey
}

// FeedEvent applies an editing or cursor event to the active side and
// reports whether it was used. Tab, Enter and Esc are left to the caller.
func (e *Editor) FeedEvent(ev event.Event) bool {
	buf := e.ActiveBuffer()
	if ev.IsPrintable() {
		buf.InsertChar(ev.Printable())
		return true
	}
	if ev.Mod.Has(event.ModCtrl) && ev.Key == event.KeyChar {
		switch ev.Rune {
		case 'u':
			buf.ClearBeforeCursor()
		case 'k':
			buf.ClearAfterCursor()
		case 'a':
			buf.MoveHome()
		case 'e':
			buf.MoveEnd()
		default:
			return false
		}
		return true
	}
	switch ev.Key {
	case event.KeyBackspace:
		buf.DeleteBackward()
	case event.KeyDelete:
		buf.DeleteForward()
	case event.KeyLeft:
		buf.MoveLeft()
	case event.KeyRight:
		buf.MoveRight()
	case event.KeyUp:
		buf.MoveUp()
	case event.KeyDown:
		buf.MoveDown()
	case event.KeyHome:
		buf.MoveHome()
	case event.KeyEnd:
		buf.MoveEnd()
	case event.KeyPaste:
		buf.InsertString(ev.Text)
	default:
		return false
	}
	return true
}
