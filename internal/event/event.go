// Package event defines the normalized key Event consumed by the router
// and converts raw Bubble Tea key messages into it.
package event

import (
	"unicode"
)

// Event is one normalized key press.
type Event struct {
	Key  Key
	Rune rune   // set for KeyChar
	Text string // set for KeyPaste
	Mod  Modifier
}

// Char builds a character event.
func Char(r rune) Event {
	return Event{Key: KeyChar, Rune: r}
}

// Ctrl builds a ctrl+<r> event.
func Ctrl(r rune) Event {
	return Event{Key: KeyChar, Rune: r, Mod: ModCtrl}
}

// Special builds an event for a non-character key.
func Special(k Key) Event {
	return Event{Key: k}
}

// Paste builds a paste event.
func Paste(text string) Event {
	return Event{Key: KeyPaste, Text: text}
}

// With returns a copy of e with mod added.
func (e Event) With(mod Modifier) Event {
	e.Mod |= mod
	return e
}

// IsNone reports whether e is the catch-all no-op event.
func (e Event) IsNone() bool {
	return e.Key == KeyNone
}

// IsPrintable reports whether e should insert its rune into a text field:
// a printable character without ctrl or alt held.
func (e Event) IsPrintable() bool {
	if e.Key == KeySpace && !e.Mod.Has(ModCtrl|ModAlt) {
		return true
	}
	return e.Key == KeyChar && !e.Mod.Has(ModCtrl|ModAlt) && unicode.IsPrint(e.Rune)
}

// Printable returns the rune a printable event inserts.
func (e Event) Printable() rune {
	if e.Key == KeySpace {
		return ' '
	}
	return e.Rune
}

// String returns the canonical binding string used by keybinds, in the
// same shape Bubble Tea uses: "a", "G", "ctrl+d", "shift+tab", "alt+enter".
// Shift is implied by the rune for character keys and is not printed.
func (e Event) String() string {
	switch e.Key {
	case KeyNone:
		return ""
	case KeyChar:
		mod := e.Mod &^ ModShift
		return mod.String() + string(e.Rune)
	case KeyPaste:
		return "paste"
	default:
		return e.Mod.String() + e.Key.String()
	}
}
