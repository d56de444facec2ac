package tui

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/reqtui/internal/clipboard"
	"github.com/studiowebux/reqtui/internal/collection"
	"github.com/studiowebux/reqtui/internal/config"
	"github.com/studiowebux/reqtui/internal/executor"
	"github.com/studiowebux/reqtui/internal/focus"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/pane"
	"github.com/studiowebux/reqtui/internal/router"
	"github.com/studiowebux/reqtui/internal/types"
)

// ExecuteFunc performs an HTTP request. executor.Execute is the default.
type ExecuteFunc func(ctx context.Context, req *types.Request, opts executor.Options) (*types.Response, error)

// Options configure a Model. Zero values fall back to defaults.
type Options struct {
	Collection *collection.Collection
	Keys       *keybinds.Registry
	Settings   config.Settings
	Clipboard  clipboard.Provider
	Logger     *slog.Logger
	Execute    ExecuteFunc
}

// Model represents the TUI state
type Model struct {
	// Core state
	chain  *focus.Chain
	router *router.Router
	keys   *keybinds.Registry

	// Panes
	address  *pane.AddressBar
	editor   *pane.RequestEditor
	response *pane.ResponseView
	list     *pane.RequestList

	// Request being composed. It points into the collection when current
	// is a valid index, otherwise it is a scratch request.
	collection *collection.Collection
	request    *types.Request
	current    int

	// Request execution
	execute           ExecuteFunc
	loading           bool
	requestCancelFunc context.CancelFunc

	settings config.Settings
	logger   *slog.Logger

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
}

// requestExecutedMsg carries the result of an HTTP request back to Update
type requestExecutedMsg struct {
	response *types.Response
	err      error
}

type errorMsg string

// New creates a new TUI model
func New(opts Options) (*Model, error) {
	chain, err := focus.NewChain(focus.DefaultRing...)
	if err != nil {
		return nil, err
	}

	if opts.Keys == nil {
		opts.Keys = keybinds.NewDefaultRegistry()
	}
	if opts.Collection == nil {
		opts.Collection = collection.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Execute == nil {
		opts.Execute = executor.Execute
	}
	if opts.Settings.DefaultMethod == "" {
		opts.Settings = config.DefaultSettings()
	}

	m := &Model{
		chain:      chain,
		router:     router.New(chain, opts.Keys, router.WithLogger(opts.Logger)),
		keys:       opts.Keys,
		address:    pane.NewAddressBar(opts.Clipboard),
		editor:     pane.NewRequestEditor(opts.Clipboard),
		response:   pane.NewResponseView(),
		list:       pane.NewRequestList(),
		collection: opts.Collection,
		current:    -1,
		execute:    opts.Execute,
		settings:   opts.Settings,
		logger:     opts.Logger,
	}

	m.router.Register(focus.TargetAddressBar, m.address)
	m.router.Register(focus.TargetRequestBody, m.editor)
	m.router.Register(focus.TargetResponseBody, m.response)
	m.router.Register(focus.TargetRequestList, m.list)

	m.router.Bind(focus.TargetRequestBody, keybinds.ActionHeaderDelete, m.editor.DeleteTrigger)
	m.router.Bind(focus.TargetResponseBody, keybinds.ActionFilterResponse, m.response.FilterTrigger)
	m.router.Bind(focus.TargetRequestList, keybinds.ActionDeleteRequest, m.list.DeleteTrigger)
	m.router.Bind(focus.TargetRequestList, keybinds.ActionRenameRequest, m.list.RenameTrigger)
	m.router.Bind(focus.TargetRequestList, keybinds.ActionNewRequest, m.list.NewTrigger)
	m.router.Bind(focus.TargetRequestList, keybinds.ActionSearchRequests, m.list.SearchTrigger)

	m.refreshTitles()
	if m.collection.Len() > 0 {
		m.loadRequest(0)
	} else {
		m.loadScratch()
	}

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup cancels an in-flight request
func (m *Model) Cleanup() {
	if m.requestCancelFunc != nil {
		m.requestCancelFunc()
		m.requestCancelFunc = nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case requestExecutedMsg:
		m.loading = false
		m.requestCancelFunc = nil
		if msg.err != nil {
			m.logger.Error("request failed", "error", msg.err)
			m.setErrorMessage(msg.err.Error())
			break
		}
		m.response.SetResponse(msg.response)
		if msg.response.Error != "" {
			m.logger.Warn("request error", "error", msg.response.Error)
			m.setErrorMessage(msg.response.Error)
			break
		}
		m.errorMsg = ""
		m.setStatusMessage("Request completed: " + msg.response.StatusText)

	case errorMsg:
		m.setErrorMessage(string(msg))
	}

	return m, cmd
}

// Request returns the request being composed.
func (m *Model) Request() *types.Request {
	return m.request
}

// Focused returns the focused ring target.
func (m *Model) Focused() focus.Target {
	return m.router.ActiveTarget()
}

func (m *Model) setStatusMessage(msg string) {
	m.statusMsg = truncateMessage(msg)
}

func (m *Model) setErrorMessage(msg string) {
	m.errorMsg = truncateMessage(msg)
}

// truncateMessage shortens messages for footer display
func truncateMessage(msg string) string {
	return runewidth.Truncate(msg, StatusMaxLength, "...")
}
