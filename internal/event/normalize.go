package event

import (
	tea "github.com/charmbracelet/bubbletea"
)

// special maps Bubble Tea key types that have a direct semantic key.
var special = map[tea.KeyType]Event{
	tea.KeyEnter:      {Key: KeyEnter},
	tea.KeyBackspace:  {Key: KeyBackspace},
	tea.KeyTab:        {Key: KeyTab},
	tea.KeyShiftTab:   {Key: KeyTab, Mod: ModShift},
	tea.KeyEsc:        {Key: KeyEsc},
	tea.KeySpace:      {Key: KeySpace},
	tea.KeyUp:         {Key: KeyUp},
	tea.KeyDown:       {Key: KeyDown},
	tea.KeyLeft:       {Key: KeyLeft},
	tea.KeyRight:      {Key: KeyRight},
	tea.KeyShiftUp:    {Key: KeyUp, Mod: ModShift},
	tea.KeyShiftDown:  {Key: KeyDown, Mod: ModShift},
	tea.KeyShiftLeft:  {Key: KeyLeft, Mod: ModShift},
	tea.KeyShiftRight: {Key: KeyRight, Mod: ModShift},
	tea.KeyCtrlUp:     {Key: KeyUp, Mod: ModCtrl},
	tea.KeyCtrlDown:   {Key: KeyDown, Mod: ModCtrl},
	tea.KeyCtrlLeft:   {Key: KeyLeft, Mod: ModCtrl},
	tea.KeyCtrlRight:  {Key: KeyRight, Mod: ModCtrl},
	tea.KeyDelete:     {Key: KeyDelete},
	tea.KeyHome:       {Key: KeyHome},
	tea.KeyEnd:        {Key: KeyEnd},
	tea.KeyPgUp:       {Key: KeyPgUp},
	tea.KeyPgDown:     {Key: KeyPgDown},
	tea.KeyCtrlHome:   {Key: KeyHome, Mod: ModCtrl},
	tea.KeyCtrlEnd:    {Key: KeyEnd, Mod: ModCtrl},
	tea.KeyCtrlPgUp:   {Key: KeyPgUp, Mod: ModCtrl},
	tea.KeyCtrlPgDown: {Key: KeyPgDown, Mod: ModCtrl},
}

// Normalize converts a raw Bubble Tea key message into an Event.
//
// The mapping is total: control letters become KeyChar with ModCtrl,
// multi-rune input becomes KeyPaste, and any key type with no meaning
// for the editor becomes KeyNone. Alt adds ModAlt to whatever was decoded.
func Normalize(msg tea.KeyMsg) Event {
	ev := decode(msg)
	if msg.Alt && ev.Key != KeyNone {
		ev = ev.With(ModAlt)
	}
	return ev
}

func decode(msg tea.KeyMsg) Event {
	if msg.Type == tea.KeyRunes {
		switch {
		case len(msg.Runes) == 0:
			return Event{}
		case msg.Paste || len(msg.Runes) > 1:
			return Paste(string(msg.Runes))
		case msg.Runes[0] == ' ':
			return Special(KeySpace)
		default:
			return Char(msg.Runes[0])
		}
	}

	if ev, ok := special[msg.Type]; ok {
		return ev
	}

	// Tab, Enter and Backspace share codes with ctrl+i, ctrl+m and ctrl+?
	// and were matched above.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return Ctrl(rune('a' + int(msg.Type-tea.KeyCtrlA)))
	}

	return Event{}
}
