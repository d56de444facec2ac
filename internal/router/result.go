package router

import (
	"fmt"

	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
)

// Kind says what happened to a dispatched event.
type Kind int

const (
	// Unhandled: nobody used the event.
	Unhandled Kind = iota
	// Consumed: state may have changed, nothing to report.
	Consumed
	// Completed: a handler or modal finished something; see Payload.
	Completed
)

func (k Kind) String() string {
	switch k {
	case Consumed:
		return "consumed"
	case Completed:
		return "completed"
	default:
		return "unhandled"
	}
}

// Completion is the typed payload of a Completed result. Each handler
// documents the concrete types it returns.
type Completion any

// Result is the outcome of one dispatch.
type Result struct {
	Kind    Kind
	Payload Completion
}

// Pass reports the event as unhandled.
func Pass() Result {
	return Result{Kind: Unhandled}
}

// Consume reports the event as handled with nothing to apply.
func Consume() Result {
	return Result{Kind: Consumed}
}

// Complete reports a finished gesture carrying payload.
func Complete(payload Completion) Result {
	return Result{Kind: Completed, Payload: payload}
}

func (r Result) String() string {
	if r.Kind == Completed {
		return fmt.Sprintf("completed(%T)", r.Payload)
	}
	return r.Kind.String()
}

// ConfirmResult is emitted when a confirmation popup resolves.
type ConfirmResult struct {
	Trigger  keybinds.Action
	Target   focus.Target
	Accepted bool
}

// TextResult is emitted when a text input popup closes.
type TextResult struct {
	Trigger   keybinds.Action
	Target    focus.Target
	Text      string
	Cancelled bool
}
