package event

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Event
	}{
		{"char", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, Char('a')},
		{"upper char", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, Char('G')},
		{"non-ascii char", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'é'}}, Char('é')},
		{"space rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, Special(KeySpace)},
		{"space key", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, Special(KeySpace)},
		{"multi rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}, Paste("abc")},
		{"bracketed paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Paste: true}, Paste("x")},
		{"empty runes", tea.KeyMsg{Type: tea.KeyRunes}, Event{}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, Special(KeyEnter)},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, Special(KeyBackspace)},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, Special(KeyTab)},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, Event{Key: KeyTab, Mod: ModShift}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, Special(KeyEsc)},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, Special(KeyUp)},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, Special(KeyDown)},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, Special(KeyLeft)},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, Special(KeyRight)},
		{"ctrl+left", tea.KeyMsg{Type: tea.KeyCtrlLeft}, Event{Key: KeyLeft, Mod: ModCtrl}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, Special(KeyDelete)},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, Special(KeyHome)},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, Special(KeyPgDown)},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, Ctrl('a')},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, Ctrl('d')},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, Ctrl('z')},
		{"alt+x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, Char('x').With(ModAlt)},
		{"alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, Special(KeyEnter).With(ModAlt)},
		{"unmapped function key", tea.KeyMsg{Type: tea.KeyF5}, Event{}},
		{"unmapped function key with alt", tea.KeyMsg{Type: tea.KeyF12, Alt: true}, Event{}},
		{"ctrl+backslash", tea.KeyMsg{Type: tea.KeyCtrlBackslash}, Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.msg))
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{}, ""},
		{Char('a'), "a"},
		{Char('G').With(ModShift), "G"},
		{Ctrl('d'), "ctrl+d"},
		{Char('x').With(ModAlt), "alt+x"},
		{Special(KeyEnter), "enter"},
		{Special(KeySpace), "space"},
		{Event{Key: KeyTab, Mod: ModShift}, "shift+tab"},
		{Special(KeyEnter).With(ModAlt), "alt+enter"},
		{Event{Key: KeyUp, Mod: ModCtrl | ModShift}, "ctrl+shift+up"},
		{Paste("hello"), "paste"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.String())
		})
	}
}

func TestIsPrintable(t *testing.T) {
	assert.True(t, Char('a').IsPrintable())
	assert.True(t, Char('ü').IsPrintable())
	assert.True(t, Special(KeySpace).IsPrintable())
	assert.Equal(t, ' ', Special(KeySpace).Printable())

	assert.False(t, Ctrl('a').IsPrintable())
	assert.False(t, Char('a').With(ModAlt).IsPrintable())
	assert.False(t, Char('\x07').IsPrintable())
	assert.False(t, Special(KeyEnter).IsPrintable())
	assert.False(t, Paste("x").IsPrintable())
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "pgup", KeyPgUp.String())
	assert.Equal(t, "key(200)", Key(200).String())
	assert.True(t, Event{}.IsNone())
	assert.Equal(t, "alt+ctrl+shift+", (ModShift | ModCtrl | ModAlt).String())
}
