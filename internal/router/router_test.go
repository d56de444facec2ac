package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiowebux/reqtui/internal/event"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
)

type call struct {
	ev     event.Event
	action keybinds.Action
}

// recorder is a handler that records what it receives.
type recorder struct {
	context keybinds.Context
	calls   []call
	reply   Result
}

func (h *recorder) KeyContext() keybinds.Context { return h.context }

func (h *recorder) Update(ev event.Event, action keybinds.Action) Result {
	h.calls = append(h.calls, call{ev, action})
	return h.reply
}

type fixture struct {
	router *Router
	chain  *focus.Chain
	list   *recorder
	bar    *recorder
	body   *recorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	chain, err := focus.NewChain(focus.TargetRequestList, focus.TargetAddressBar, focus.TargetRequestBody)
	require.NoError(t, err)

	f := fixture{
		chain: chain,
		list:  &recorder{context: keybinds.ContextRequestList, reply: Consume()},
		bar:   &recorder{context: keybinds.ContextAddressBar, reply: Consume()},
		body:  &recorder{context: keybinds.ContextRequestBody, reply: Consume()},
	}
	f.router = New(chain, keybinds.NewDefaultRegistry())
	f.router.Register(focus.TargetRequestList, f.list)
	f.router.Register(focus.TargetAddressBar, f.bar)
	f.router.Register(focus.TargetRequestBody, f.body)
	return f
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFocusGestures(t *testing.T) {
	f := newFixture(t)

	res := f.router.Dispatch(event.Special(event.KeyTab))
	assert.Equal(t, Consumed, res.Kind)
	assert.Equal(t, focus.TargetAddressBar, f.router.ActiveTarget())

	f.router.Dispatch(event.Special(event.KeyTab))
	f.router.Dispatch(event.Special(event.KeyTab))
	assert.Equal(t, focus.TargetRequestList, f.router.ActiveTarget())

	f.router.Dispatch(event.Special(event.KeyTab).With(event.ModShift))
	assert.Equal(t, focus.TargetRequestBody, f.router.ActiveTarget())

	assert.Empty(t, f.list.calls)
	assert.Empty(t, f.bar.calls)
	assert.Empty(t, f.body.calls)
}

func TestForwardsToFocusedHandler(t *testing.T) {
	f := newFixture(t)

	f.router.Dispatch(f.router.Normalize(keyMsg("j")))
	require.Len(t, f.list.calls, 1)
	assert.Equal(t, keybinds.ActionNavigateDown, f.list.calls[0].action)

	f.router.Dispatch(event.Special(event.KeyTab))
	f.router.Dispatch(event.Char('j'))
	require.Len(t, f.bar.calls, 1)
	assert.Equal(t, keybinds.Action(""), f.bar.calls[0].action, "unbound printable keys reach text regions as plain input")
	assert.Len(t, f.list.calls, 1)
}

func TestHandlerCompletionPassesThrough(t *testing.T) {
	f := newFixture(t)
	type selected struct{ index int }
	f.list.reply = Complete(selected{3})

	res := f.router.Dispatch(event.Special(event.KeyEnter))
	assert.Equal(t, Completed, res.Kind)
	assert.Equal(t, selected{3}, res.Payload)
	assert.Equal(t, keybinds.ActionSelectRequest, f.list.calls[0].action)
}

func TestNoneIsUnhandled(t *testing.T) {
	f := newFixture(t)
	res := f.router.Dispatch(f.router.Normalize(tea.KeyMsg{Type: tea.KeyF7}))
	assert.Equal(t, Unhandled, res.Kind)
	assert.Empty(t, f.list.calls)
}

func TestContextShadowsFocusKey(t *testing.T) {
	f := newFixture(t)
	f.router.Dispatch(event.Special(event.KeyTab))
	f.bar.context = keybinds.ContextHeaderEdit

	f.router.Dispatch(event.Special(event.KeyTab))
	assert.Equal(t, focus.TargetAddressBar, f.router.ActiveTarget())
	require.Len(t, f.bar.calls, 1)
	assert.Equal(t, keybinds.ActionToggleField, f.bar.calls[0].action)
}

func TestConfirmTriggerFlow(t *testing.T) {
	f := newFixture(t)
	f.router.Bind(focus.TargetRequestList, keybinds.ActionDeleteRequest, func() (focus.Modal, bool) {
		return focus.NewConfirm(keybinds.ActionDeleteRequest, "Delete request?"), true
	})

	res := f.router.Dispatch(event.Ctrl('d'))
	assert.Equal(t, Consumed, res.Kind)
	d, ok := f.router.ModalDescriptor()
	require.True(t, ok)
	assert.Equal(t, focus.ConfirmPending, d.State)
	assert.Equal(t, "Delete request?", d.Title)

	// tab toggles the choice while the popup is open, focus stays put
	res = f.router.Dispatch(event.Special(event.KeyTab))
	assert.Equal(t, Consumed, res.Kind)
	assert.Equal(t, focus.TargetRequestList, f.router.ActiveTarget())

	res = f.router.Dispatch(event.Special(event.KeyEnter))
	assert.Equal(t, Completed, res.Kind)
	assert.Equal(t, ConfirmResult{
		Trigger:  keybinds.ActionDeleteRequest,
		Target:   focus.TargetRequestList,
		Accepted: true,
	}, res.Payload)
	assert.Equal(t, focus.NoModal, f.chain.State())
	assert.Empty(t, f.list.calls)
}

func TestTextInputFlow(t *testing.T) {
	f := newFixture(t)
	f.router.Bind(focus.TargetRequestList, keybinds.ActionNewRequest, func() (focus.Modal, bool) {
		return focus.NewTextInput(keybinds.ActionNewRequest, "New request", ""), true
	})

	f.router.Dispatch(event.Char('n'))
	require.Equal(t, focus.TextInputPending, f.chain.State())

	assert.Equal(t, Consumed, f.router.Dispatch(event.Char('x')).Kind)
	assert.Equal(t, Consumed, f.router.Dispatch(event.Char('y')).Kind)

	res := f.router.Dispatch(event.Special(event.KeyEnter))
	assert.Equal(t, Completed, res.Kind)
	assert.Equal(t, TextResult{
		Trigger: keybinds.ActionNewRequest,
		Target:  focus.TargetRequestList,
		Text:    "xy",
	}, res.Payload)
	assert.Equal(t, focus.NoModal, f.chain.State())
	assert.Empty(t, f.list.calls)
}

func TestModalNeverUnhandled(t *testing.T) {
	f := newFixture(t)
	f.chain.Push(focus.NewTextInput(keybinds.ActionRenameRequest, "Rename", "a"))

	for _, ev := range []event.Event{{}, event.Special(event.KeyUp), event.Ctrl('r'), event.Special(event.KeyPgDown)} {
		assert.NotEqual(t, Unhandled, f.router.Dispatch(ev).Kind, ev.String())
	}

	res := f.router.Dispatch(event.Special(event.KeyEsc))
	assert.Equal(t, TextResult{
		Trigger:   keybinds.ActionRenameRequest,
		Target:    focus.TargetRequestList,
		Cancelled: true,
	}, res.Payload)
}

func TestDeclinedTrigger(t *testing.T) {
	f := newFixture(t)
	f.router.Bind(focus.TargetRequestList, keybinds.ActionDeleteRequest, func() (focus.Modal, bool) {
		return nil, false
	})

	res := f.router.Dispatch(event.Ctrl('d'))
	assert.Equal(t, Consumed, res.Kind)
	assert.Equal(t, 0, f.chain.Depth())
	assert.Empty(t, f.list.calls)
}

func TestTriggerBoundToOtherTarget(t *testing.T) {
	f := newFixture(t)
	f.router.Bind(focus.TargetRequestBody, keybinds.ActionDeleteRequest, func() (focus.Modal, bool) {
		return focus.NewConfirm(keybinds.ActionDeleteRequest, "?"), true
	})

	f.router.Dispatch(event.Ctrl('d'))
	assert.Equal(t, 0, f.chain.Depth())
	require.Len(t, f.list.calls, 1)
	assert.Equal(t, keybinds.ActionDeleteRequest, f.list.calls[0].action)
}

func TestUnregisteredTarget(t *testing.T) {
	chain, err := focus.NewChain(focus.TargetResponseBody)
	require.NoError(t, err)
	r := New(chain, keybinds.NewDefaultRegistry())

	assert.Equal(t, Unhandled, r.Dispatch(event.Char('j')).Kind)
	assert.Equal(t, keybinds.ContextGlobal, r.KeyContext())
}

func TestKeyContext(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, keybinds.ContextRequestList, f.router.KeyContext())

	f.chain.Push(focus.NewConfirm(keybinds.ActionDeleteRequest, "?"))
	assert.Equal(t, keybinds.ContextConfirm, f.router.KeyContext())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "unhandled", Pass().String())
	assert.Equal(t, "consumed", Consume().String())
	assert.Equal(t, "completed(router.TextResult)", Complete(TextResult{}).String())
}
