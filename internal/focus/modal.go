package focus

import (
	"strings"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/textbuf"
)

// ModalState is the state of the modal sub-machine.
type ModalState int

const (
	NoModal ModalState = iota
	ConfirmPending
	TextInputPending
)

func (s ModalState) String() string {
	switch s {
	case ConfirmPending:
		return "confirm"
	case TextInputPending:
		return "text_input"
	default:
		return "none"
	}
}

// Modal is a popup that owns all input while on top of the stack.
type Modal interface {
	State() ModalState
	// TriggeredBy is the action that opened the modal; it travels back with
	// the result so the caller knows what was confirmed or entered.
	TriggeredBy() keybinds.Action
	KeyContext() keybinds.Context
	Describe() Descriptor
}

// Descriptor is a read-only view of a modal for rendering.
type Descriptor struct {
	State   ModalState
	Trigger keybinds.Action
	Title   string
	// Text and Cursor (a rune offset) are set for text inputs.
	Text   string
	Cursor int
	// Yes reports whether Yes is highlighted in a confirmation.
	Yes bool
}

// Outcome is what a modal transition reports.
type Outcome struct {
	Done bool
	// Accepted is the confirmation answer.
	Accepted bool
	// Text is the committed text input; Cancelled is set on Esc.
	Text      string
	Cancelled bool
}

// Confirm asks a yes/no question. No is highlighted initially.
type Confirm struct {
	Trigger keybinds.Action
	Message string
	Yes     bool
}

// NewConfirm returns a confirmation with No highlighted.
func NewConfirm(trigger keybinds.Action, message string) *Confirm {
	return &Confirm{Trigger: trigger, Message: message}
}

func (c *Confirm) State() ModalState { return ConfirmPending }
func (c *Confirm) TriggeredBy() keybinds.Action { return c.Trigger }
func (c *Confirm) KeyContext() keybinds.Context { return keybinds.ContextConfirm }
func (c *Confirm) Describe() Descriptor {
	return Descriptor{State: ConfirmPending, Trigger: c.Trigger, Title: c.Message, Yes: c.Yes}
}

// TextInput collects one line of text.
type TextInput struct {
	Trigger   keybinds.Action
	Title     string
	Buffer    *textbuf.Buffer
	Clipboard clipboard.Provider
}

// NewTextInput creates an input seeded with text, cursor at the end.
func NewTextInput(trigger keybinds.Action, title, seed string) *TextInput {
	buf := textbuf.New()
	buf.LoadAtEnd(singleLine(seed))
	return &TextInput{Trigger: trigger, Title: title, Buffer: buf}
}

func (t *TextInput) State() ModalState { return TextInputPending }
func (t *TextInput) TriggeredBy() keybinds.Action { return t.Trigger }
func (t *TextInput) KeyContext() keybinds.Context { return keybinds.ContextTextInput }
func (t *TextInput) Describe() Descriptor {
	return Descriptor{
		State:   TextInputPending,
		Trigger: t.Trigger,
		Title:   t.Title,
		Text:    t.Buffer.Text(),
		Cursor:  t.Buffer.Cursor().Col,
	}
}

// transition is the pure state function of one modal kind.
type transition func(m Modal, ev event.Event, action keybinds.Action) Outcome

var transitions = map[ModalState]transition{
	ConfirmPending:   confirmTransition,
	TextInputPending: textInputTransition,
}

// Handle applies one event to m. action is the binding matched for the
// event in m's key context, or "" when none matched. Events a modal does
// not understand are swallowed with a pending outcome.
func Handle(m Modal, ev event.Event, action keybinds.Action) Outcome {
	t, ok := transitions[m.State()]
	if !ok {
		return Outcome{}
	}
	return t(m, ev, action)
}

func confirmTransition(m Modal, _ event.Event, action keybinds.Action) Outcome {
	c := m.(*Confirm)
	switch action {
	case keybinds.ActionToggleChoice:
		c.Yes = !c.Yes
	case keybinds.ActionChoose:
		return Outcome{Done: true, Accepted: c.Yes}
	case keybinds.ActionConfirm:
		return Outcome{Done: true, Accepted: true}
	case keybinds.ActionCancel:
		return Outcome{Done: true}
	}
	return Outcome{}
}

func textInputTransition(m Modal, ev event.Event, action keybinds.Action) Outcome {
	t := m.(*TextInput)
	buf := t.Buffer

	switch action {
	case keybinds.ActionTextSubmit:
		return Outcome{Done: true, Text: buf.Text()}
	case keybinds.ActionTextCancel:
		return Outcome{Done: true, Cancelled: true}
	case keybinds.ActionTextBackspace:
		buf.DeleteBackward()
	case keybinds.ActionTextDelete:
		buf.DeleteForward()
	case keybinds.ActionTextMoveLeft:
		buf.MoveLeft()
	case keybinds.ActionTextMoveRight:
		buf.MoveRight()
	case keybinds.ActionTextMoveHome:
		buf.MoveHome()
	case keybinds.ActionTextMoveEnd:
		buf.MoveEnd()
	case keybinds.ActionTextClearBefore:
		buf.ClearBeforeCursor()
	case keybinds.ActionTextClearAfter:
		buf.ClearAfterCursor()
	case keybinds.ActionTextPaste:
		if text, ok := clipboard.Read(t.Clipboard); ok {
			buf.InsertString(singleLine(text))
		}
	case "":
		switch {
		case ev.IsPrintable():
			buf.InsertChar(ev.Printable())
		case ev.Key == event.KeyPaste:
			buf.InsertString(singleLine(ev.Text))
		}
	}
	return Outcome{}
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
