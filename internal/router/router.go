// Package router dispatches normalized key events to the focused region or
// to the popup on top of it.
package router

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
)

// Handler is a focusable region.
type Handler interface {
	// KeyContext names the bindings in effect; it may change with the
	// handler's own sub-mode (e.g. while a header pair is being edited).
	KeyContext() keybinds.Context
	// Update applies ev. action is the binding matched in KeyContext, or ""
	// when the key is unbound.
	Update(ev event.Event, action keybinds.Action) Result
}

// Trigger opens a popup for a bound action. It returns false to decline,
// for instance when there is nothing selected to delete.
type Trigger func() (focus.Modal, bool)

// Router owns dispatch for one focus chain.
type Router struct {
	chain    *focus.Chain
	keys     *keybinds.Registry
	handlers map[focus.Target]Handler
	triggers map[focus.Target]map[keybinds.Action]Trigger
	logger   *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for dispatch tracing at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// New returns a router dispatching over chain with keys.
func New(chain *focus.Chain, keys *keybinds.Registry, opts ...Option) *Router {
	r := &Router{
		chain:    chain,
		keys:     keys,
		handlers: make(map[focus.Target]Handler),
		triggers: make(map[focus.Target]map[keybinds.Action]Trigger),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register sets the handler of a ring target.
func (r *Router) Register(target focus.Target, h Handler) {
	r.handlers[target] = h
}

// Bind makes action, when matched while target is focused, open the popup
// built by trigger instead of reaching the handler.
func (r *Router) Bind(target focus.Target, action keybinds.Action, trigger Trigger) {
	if r.triggers[target] == nil {
		r.triggers[target] = make(map[keybinds.Action]Trigger)
	}
	r.triggers[target][action] = trigger
}

// Normalize converts a raw key message into an Event.
func (r *Router) Normalize(msg tea.KeyMsg) event.Event {
	return event.Normalize(msg)
}

// Dispatch routes ev and reports what happened.
//
// A popup on top of the stack takes every event and never yields Unhandled.
// Otherwise the event is matched in the focused handler's key context:
// focus gestures move the ring, bound triggers open popups, and everything
// else goes to the handler's Update.
func (r *Router) Dispatch(ev event.Event) Result {
	if m, ok := r.chain.Top(); ok {
		return r.dispatchModal(m, ev)
	}
	if ev.IsNone() {
		return Pass()
	}

	target := r.chain.Current()
	h, hasHandler := r.handlers[target]
	context := keybinds.ContextGlobal
	if hasHandler {
		context = h.KeyContext()
	}
	action, _ := r.keys.Match(context, ev.String())

	switch action {
	case keybinds.ActionFocusNext:
		r.chain.Advance()
		r.logger.Debug("focus moved", "from", target, "to", r.chain.Current())
		return Consume()
	case keybinds.ActionFocusPrev:
		r.chain.Retreat()
		r.logger.Debug("focus moved", "from", target, "to", r.chain.Current())
		return Consume()
	}

	if trigger, ok := r.triggers[target][action]; ok {
		m, open := trigger()
		if !open {
			r.logger.Debug("trigger declined", "target", target, "action", action)
			return Consume()
		}
		r.chain.Push(m)
		r.logger.Debug("modal opened", "target", target, "action", action, "state", m.State())
		return Consume()
	}

	if !hasHandler {
		return Pass()
	}
	res := h.Update(ev, action)
	if res.Kind == Completed {
		r.logger.Debug("completed", "target", target, "key", ev.String(), "payload", res)
	}
	return res
}

func (r *Router) dispatchModal(m focus.Modal, ev event.Event) Result {
	action, _ := r.keys.Match(m.KeyContext(), ev.String())
	out := focus.Handle(m, ev, action)
	if !out.Done {
		return Consume()
	}

	r.chain.Pop()
	// The ring cannot move while a popup is open, so the current target is
	// the one that opened it.
	target := r.chain.Current()
	r.logger.Debug("modal closed", "target", target, "trigger", m.TriggeredBy(), "state", m.State())

	switch m.State() {
	case focus.ConfirmPending:
		return Complete(ConfirmResult{
			Trigger:  m.TriggeredBy(),
			Target:   target,
			Accepted: out.Accepted,
		})
	default:
		return Complete(TextResult{
			Trigger:   m.TriggeredBy(),
			Target:    target,
			Text:      out.Text,
			Cancelled: out.Cancelled,
		})
	}
}

// ActiveTarget returns the focused ring target.
func (r *Router) ActiveTarget() focus.Target {
	return r.chain.Current()
}

// ModalDescriptor describes the popup on top, if any.
func (r *Router) ModalDescriptor() (focus.Descriptor, bool) {
	return r.chain.Descriptor()
}

// Handler returns the handler registered for target.
func (r *Router) Handler(target focus.Target) (Handler, bool) {
	h, ok := r.handlers[target]
	return h, ok
}

// KeyContext returns the bindings context in effect for the next event.
func (r *Router) KeyContext() keybinds.Context {
	if m, ok := r.chain.Top(); ok {
		return m.KeyContext()
	}
	if h, ok := r.handlers[r.chain.Current()]; ok {
		return h.KeyContext()
	}
	return keybinds.ContextGlobal
}

// Keys returns the registry used for matching.
func (r *Router) Keys() *keybinds.Registry {
	return r.keys
}
