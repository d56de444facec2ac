package event

import (
	"fmt"
	"strings"
)

// Key identifies the semantic key of an Event.
// Character keys use KeyChar with the character in Event.Rune.
type Key uint8

const (
	// KeyNone is the catch-all for raw input that has no meaning here.
	KeyNone Key = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	// KeyPaste carries multi-rune input (bracketed paste) in Event.Text.
	KeyPaste
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyChar:      "char",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeySpace:     "space",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyPaste:     "paste",
}

// String returns the lowercase binding name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", k)
}

// Modifier is a set of held modifier keys. ModNone means no modifier.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String renders the modifiers as binding prefixes, e.g. "alt+ctrl+".
func (m Modifier) String() string {
	var sb strings.Builder
	if m.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if m.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if m.Has(ModShift) {
		sb.WriteString("shift+")
	}
	return sb.String()
}
