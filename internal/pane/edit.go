package pane

import (
	"strings"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/textbuf"
)

var flatten = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// editText applies a text action, or an unbound printable key or paste, to
// buf. handled reports whether the event was meant for the buffer; changed
// whether its text differs afterwards. Single-line buffers drop line breaks
// from pasted text and ignore text_newline.
func editText(buf *textbuf.Buffer, ev event.Event, action keybinds.Action, clip clipboard.Provider, multiline bool) (handled, changed bool) {
	before := buf.Text()

	switch action {
	case keybinds.ActionTextBackspace:
		buf.DeleteBackward()
	case keybinds.ActionTextDelete:
		buf.DeleteForward()
	case keybinds.ActionTextMoveLeft:
		buf.MoveLeft()
	case keybinds.ActionTextMoveRight:
		buf.MoveRight()
	case keybinds.ActionTextMoveUp:
		buf.MoveUp()
	case keybinds.ActionTextMoveDown:
		buf.MoveDown()
	case keybinds.ActionTextMoveHome:
		buf.MoveHome()
	case keybinds.ActionTextMoveEnd:
		buf.MoveEnd()
	case keybinds.ActionTextClearBefore:
		buf.ClearBeforeCursor()
	case keybinds.ActionTextClearAfter:
		buf.ClearAfterCursor()
	case keybinds.ActionTextNewline:
		if !multiline {
			return false, false
		}
		buf.SplitLine()
	case keybinds.ActionTextPaste:
		if text, ok := clipboard.Read(clip); ok {
			insertText(buf, text, multiline)
		}
	case "":
		switch {
		case ev.IsPrintable():
			buf.InsertChar(ev.Printable())
		case ev.Key == event.KeyPaste:
			insertText(buf, ev.Text, multiline)
		default:
			return false, false
		}
	default:
		return false, false
	}

	return true, buf.Text() != before
}

func insertText(buf *textbuf.Buffer, text string, multiline bool) {
	if !multiline {
		text = flatten.Replace(text)
	}
	buf.InsertString(text)
}
