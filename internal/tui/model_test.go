package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/collection"
	"github.com/studiowebux/reqtui/internal/config"
	"github.com/studiowebux/reqtui/internal/executor"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/types"
)

// fakeExecutor records the last request and returns a canned response
type fakeExecutor struct {
	last     *types.Request
	opts     executor.Options
	response *types.Response
	err      error
}

func (f *fakeExecutor) execute(_ context.Context, req *types.Request, opts executor.Options) (*types.Response, error) {
	f.last = req
	f.opts = opts
	return f.response, f.err
}

// CreateTestModel builds a model over a two-request collection
func CreateTestModel(t *testing.T) (*Model, *fakeExecutor) {
	t.Helper()

	c := collection.New()
	c.Requests = []*types.Request{
		{Name: "List users", Method: "GET", URL: "http://api/users"},
		{Name: "Create user", Method: "POST", URL: "http://api/users", Body: `{"name":"ada"}`},
	}

	fake := &fakeExecutor{response: &types.Response{
		Status:      200,
		StatusText:  "200 OK",
		ContentType: "application/json",
		Body:        `{"ids":[1,2]}`,
	}}

	m, err := New(Options{
		Collection: c,
		Settings:   config.DefaultSettings(),
		Clipboard:  clipboard.Static{Text: "pasted"},
		Execute:    fake.execute,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, fake
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// send feeds messages to the model, running returned commands once
func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeString(m *Model, s string) {
	for _, r := range s {
		send(m, runes(string(r)))
	}
}

func AssertModelField(t *testing.T, name string, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNew_LoadsFirstRequest(t *testing.T) {
	m, _ := CreateTestModel(t)

	AssertModelField(t, "focused", m.Focused(), focus.TargetRequestList)
	AssertModelField(t, "current", m.current, 0)
	AssertModelField(t, "url", m.address.URL(), "http://api/users")
}

func TestNew_EmptyCollectionUsesScratch(t *testing.T) {
	m, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	AssertModelField(t, "current", m.current, -1)
	AssertModelField(t, "method", m.Request().Method, "GET")
}

func TestFocusCycle(t *testing.T) {
	m, _ := CreateTestModel(t)

	send(m, key(tea.KeyTab))
	AssertModelField(t, "after tab", m.Focused(), focus.TargetAddressBar)
	send(m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab))
	AssertModelField(t, "wrapped", m.Focused(), focus.TargetRequestList)
	send(m, key(tea.KeyShiftTab))
	AssertModelField(t, "after shift+tab", m.Focused(), focus.TargetResponseBody)
}

func TestQuit(t *testing.T) {
	m, _ := CreateTestModel(t)

	// Quit works even with a popup open
	send(m, runes("n"))
	if m.chain.Depth() != 1 {
		t.Fatalf("expected new-request popup, depth %d", m.chain.Depth())
	}

	cmd := send(m, key(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSelectRequest(t *testing.T) {
	m, _ := CreateTestModel(t)

	send(m, runes("j"), key(tea.KeyEnter))
	AssertModelField(t, "current", m.current, 1)
	AssertModelField(t, "method", m.address.Method(), "POST")
	AssertModelField(t, "body", m.editor.Body().Text(), `{"name":"ada"}`)
}

func TestAddressBarEditsRequest(t *testing.T) {
	m, _ := CreateTestModel(t)

	send(m, key(tea.KeyTab))
	typeString(m, "/1")
	AssertModelField(t, "url", m.Request().URL, "http://api/users/1")

	send(m, key(tea.KeyCtrlT))
	AssertModelField(t, "method", m.Request().Method, "POST")

	send(m, key(tea.KeyCtrlV))
	AssertModelField(t, "pasted url", m.Request().URL, "http://api/users/1pasted")
}

func TestBodyEditAndPrettify(t *testing.T) {
	m, _ := CreateTestModel(t)
	send(m, runes("j"), key(tea.KeyEnter))
	send(m, key(tea.KeyTab), key(tea.KeyTab))
	AssertModelField(t, "focused", m.Focused(), focus.TargetRequestBody)

	send(m, key(tea.KeyCtrlF))
	AssertModelField(t, "body", m.Request().Body, "{\n  \"name\": \"ada\"\n}")

	send(m, key(tea.KeyBackspace))
	send(m, key(tea.KeyCtrlF))
	if m.errorMsg == "" {
		t.Error("expected format error in status bar")
	}
	AssertModelField(t, "body kept", m.Request().Body, "{\n  \"name\": \"ada\"\n")
}

func TestHeaderAddAndDelete(t *testing.T) {
	m, _ := CreateTestModel(t)
	send(m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyCtrlT))

	send(m, runes("a"))
	typeString(m, "Accept")
	send(m, key(tea.KeyTab))
	AssertModelField(t, "focus held by pair editor", m.Focused(), focus.TargetRequestBody)
	typeString(m, "json")
	send(m, key(tea.KeyEnter))

	headers := m.Request().Headers
	if len(headers) != 1 || headers[0] != (types.Pair{Key: "Accept", Value: "json"}) {
		t.Fatalf("Headers = %v", headers)
	}

	send(m, key(tea.KeyCtrlD))
	AssertModelField(t, "confirm open", m.chain.State(), focus.ConfirmPending)
	send(m, key(tea.KeyEnter))
	AssertModelField(t, "No is the default", len(m.Request().Headers), 1)

	send(m, key(tea.KeyCtrlD), key(tea.KeyTab), key(tea.KeyEnter))
	AssertModelField(t, "deleted", len(m.Request().Headers), 0)
}

func TestRequestListPopups(t *testing.T) {
	m, _ := CreateTestModel(t)

	// New request
	send(m, runes("n"))
	typeString(m, "Ping")
	send(m, key(tea.KeyEnter))
	AssertModelField(t, "count", m.collection.Len(), 3)
	AssertModelField(t, "current", m.current, 2)
	AssertModelField(t, "name", m.Request().Name, "Ping")

	// Rename, seeded with the current name
	send(m, runes("R"), key(tea.KeyCtrlU))
	typeString(m, "Pong")
	send(m, key(tea.KeyEnter))
	AssertModelField(t, "renamed", m.collection.Get(2).Name, "Pong")

	// Cancelled rename keeps the name
	send(m, runes("R"), runes("x"), key(tea.KeyEsc))
	AssertModelField(t, "unchanged", m.collection.Get(2).Name, "Pong")

	// Delete the current request
	send(m, key(tea.KeyCtrlD), runes("y"))
	AssertModelField(t, "count after delete", m.collection.Len(), 2)
	AssertModelField(t, "current after delete", m.current, 1)

	// Delete a request above the current one
	send(m, runes("k"), key(tea.KeyCtrlD), runes("y"))
	AssertModelField(t, "count after delete above", m.collection.Len(), 1)
	AssertModelField(t, "current shifted", m.current, 0)
	AssertModelField(t, "current kept", m.Request().Name, "Create user")
}

func TestSearch(t *testing.T) {
	m, _ := CreateTestModel(t)

	send(m, runes("/"))
	typeString(m, "create")
	send(m, key(tea.KeyEnter))
	AssertModelField(t, "matches", m.list.Len(), 1)

	send(m, key(tea.KeyEnter))
	AssertModelField(t, "selected", m.current, 1)

	send(m, key(tea.KeyEsc))
	AssertModelField(t, "cleared", m.list.Len(), 2)
}

func TestSendRequestAndFilter(t *testing.T) {
	m, fake := CreateTestModel(t)
	m.settings.Insecure = true
	m.settings.CAFile = "ca.pem"

	cmd := send(m, key(tea.KeyCtrlR))
	if cmd == nil {
		t.Fatal("expected execute command")
	}
	if !m.loading {
		t.Error("expected loading")
	}
	send(m, cmd())

	AssertModelField(t, "loading", m.loading, false)
	AssertModelField(t, "sent url", fake.last.URL, "http://api/users")
	AssertModelField(t, "timeout", fake.opts.Timeout, m.settings.RequestTimeout)
	AssertModelField(t, "insecure", fake.opts.Insecure, true)
	AssertModelField(t, "ca file", fake.opts.CAFile, "ca.pem")
	if m.response.Response() == nil {
		t.Fatal("response not shown")
	}
	if view := m.View(); !strings.Contains(view, "100%") {
		t.Error("expected scroll position in the response summary")
	}

	send(m, key(tea.KeyShiftTab))
	send(m, runes("J"))
	typeString(m, "ids")
	send(m, key(tea.KeyEnter))
	AssertModelField(t, "filter", m.response.Filter(), "ids")

	send(m, runes("J"), key(tea.KeyCtrlU))
	typeString(m, "ids[")
	send(m, key(tea.KeyEnter))
	if m.errorMsg == "" {
		t.Error("expected filter error")
	}
	AssertModelField(t, "filter kept", m.response.Filter(), "ids")
}

func TestSendRequestErrors(t *testing.T) {
	m, fake := CreateTestModel(t)
	fake.err = errors.New("invalid URL")

	cmd := send(m, key(tea.KeyCtrlR))
	if again := send(m, key(tea.KeyCtrlR)); again == nil {
		t.Error("expected in-progress error command")
	} else if msg, ok := again().(errorMsg); !ok || string(msg) != "Request already in progress" {
		t.Errorf("unexpected message %v", msg)
	}

	send(m, cmd())
	AssertModelField(t, "error", m.errorMsg, "invalid URL")

	m.request.URL = " "
	if cmd := send(m, key(tea.KeyCtrlR)); cmd != nil {
		t.Error("empty URL should not execute")
	}
}

func TestView(t *testing.T) {
	m, _ := CreateTestModel(t)

	view := m.View()
	for _, want := range []string{"Requests", "List users", "GET http://api/users", "[Body]", "Response", "tab next region", "ctrl+c force quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	send(m, key(tea.KeyCtrlD))
	view = m.View()
	if !strings.Contains(view, "Delete request 'List users'?") {
		t.Error("confirm popup not rendered")
	}
}

func TestTruncateMessage(t *testing.T) {
	if got := truncateMessage("short"); got != "short" {
		t.Errorf("truncateMessage() = %q", got)
	}

	got := truncateMessage(strings.Repeat("é", StatusMaxLength+20))
	if !utf8.ValidString(got) {
		t.Errorf("truncateMessage() split a rune: %q", got)
	}
	if !strings.HasSuffix(got, "...") || runewidth.StringWidth(got) > StatusMaxLength {
		t.Errorf("truncateMessage() = %q (width %d)", got, runewidth.StringWidth(got))
	}
}

func TestAddCursorAt(t *testing.T) {
	if got := addCursorAt("ab", 5); got != "ab█" {
		t.Errorf("addCursorAt past end = %q", got)
	}
	if got := addCursorAt("", 0); got != "█" {
		t.Errorf("addCursorAt empty = %q", got)
	}
}
