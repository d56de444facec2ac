package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/reqtui/internal/executor"
	"github.com/studiowebux/reqtui/internal/keybinds"
	"github.com/studiowebux/reqtui/internal/pane"
	"github.com/studiowebux/reqtui/internal/router"
	"github.com/studiowebux/reqtui/internal/types"
)

// applyCompletion applies a completed result to the request or collection
func (m *Model) applyCompletion(payload router.Completion) tea.Cmd {
	switch p := payload.(type) {
	case pane.SendRequest:
		return m.executeRequest()

	case pane.URLEdited:
		m.request.URL = p.URL
		m.refreshTitles()

	case pane.MethodChanged:
		m.request.Method = p.Method
		m.refreshTitles()
		m.setStatusMessage("Method: " + p.Method)

	case pane.BodyEdited:
		m.request.Body = p.Text
		m.logger.Debug("body edited", "length", len(p.Text), "offset", p.Offset)

	case pane.FormatFailed:
		m.setErrorMessage(p.Err.Error())

	case pane.PairCommitted:
		m.syncPairs()
		m.setStatusMessage(fmt.Sprintf("%s saved: %s", strings.TrimSuffix(p.Tab.String(), "s"), p.Pair.Key))

	case pane.PairRejected:
		m.setErrorMessage(p.Reason)

	case pane.FilterCleared:
		m.setStatusMessage("Filter cleared")

	case pane.SelectRequest:
		m.loadRequest(p.Index)
		m.setStatusMessage("Loaded " + m.request.Title())

	case pane.SearchCleared:
		m.statusMsg = ""

	case router.ConfirmResult:
		m.applyConfirm(p)

	case router.TextResult:
		m.applyText(p)

	default:
		m.logger.Warn("unhandled completion", "payload", fmt.Sprintf("%T", payload))
	}
	return nil
}

func (m *Model) applyConfirm(res router.ConfirmResult) {
	if !res.Accepted {
		return
	}

	switch res.Trigger {
	case keybinds.ActionHeaderDelete:
		if m.editor.DeleteSelected() {
			m.syncPairs()
			m.setStatusMessage("Deleted")
		}

	case keybinds.ActionDeleteRequest:
		i, ok := m.list.Selected()
		if !ok {
			return
		}
		title := m.collection.Get(i).Title()
		m.collection.Remove(i)
		m.refreshTitles()

		switch {
		case i == m.current && m.collection.Len() > 0:
			m.loadRequest(min(i, m.collection.Len()-1))
		case i == m.current:
			m.loadScratch()
		case i < m.current:
			m.current--
		}
		m.setStatusMessage("Deleted " + title)
	}
}

func (m *Model) applyText(res router.TextResult) {
	if res.Cancelled {
		return
	}
	text := strings.TrimSpace(res.Text)

	switch res.Trigger {
	case keybinds.ActionFilterResponse:
		if err := m.response.SetFilter(text); err != nil {
			m.setErrorMessage(err.Error())
			return
		}
		if text != "" {
			m.setStatusMessage("Filter: " + text)
		}

	case keybinds.ActionSearchRequests:
		m.list.Search(text)
		if text != "" {
			m.setStatusMessage(fmt.Sprintf("Search: %d match(es)", m.list.Len()))
		}

	case keybinds.ActionRenameRequest:
		i, ok := m.list.Selected()
		if !ok || text == "" {
			return
		}
		m.collection.Rename(i, text)
		m.refreshTitles()
		m.setStatusMessage("Renamed to " + text)

	case keybinds.ActionNewRequest:
		if text == "" {
			m.setErrorMessage("Request name cannot be empty")
			return
		}
		i := m.collection.Add(text, m.settings.DefaultMethod)
		m.list.Search("")
		m.refreshTitles()
		m.loadRequest(i)
		m.setStatusMessage("Created " + text)
	}
}

// loadRequest makes collection entry i the request being composed
func (m *Model) loadRequest(i int) {
	req := m.collection.Get(i)
	if req == nil {
		return
	}
	m.current = i
	m.request = req
	m.address.Load(req.Method, req.URL)
	m.editor.Load(req)
	m.list.Select(i)
	m.logger.Debug("request loaded", "index", i, "title", req.Title())
}

// loadScratch starts an empty request that is not part of the collection
func (m *Model) loadScratch() {
	m.current = -1
	m.request = &types.Request{Method: m.settings.DefaultMethod}
	m.address.Load(m.request.Method, "")
	m.editor.Load(m.request)
}

func (m *Model) refreshTitles() {
	m.list.SetTitles(m.collection.Titles())
}

// syncPairs copies the editor's header and param lists into the request
func (m *Model) syncPairs() {
	m.request.Headers = m.editor.Headers()
	m.request.Params = m.editor.Params()
}

// executeRequest runs the current request in the background
func (m *Model) executeRequest() tea.Cmd {
	// Prevent concurrent requests
	if m.loading {
		return func() tea.Msg {
			return errorMsg("Request already in progress")
		}
	}

	if strings.TrimSpace(m.request.URL) == "" {
		m.setErrorMessage("URL is empty")
		return nil
	}

	m.loading = true
	m.errorMsg = ""
	m.setStatusMessage("Executing request...")

	req := m.request.Clone()
	opts := executor.Options{
		Timeout:  m.settings.RequestTimeout,
		Insecure: m.settings.Insecure,
		CAFile:   m.settings.CAFile,
	}
	execute := m.execute

	ctx, cancel := context.WithCancel(context.Background())
	m.requestCancelFunc = cancel

	m.logger.Info("executing request", "method", req.Method, "url", req.URL)
	return func() tea.Msg {
		defer cancel()
		resp, err := execute(ctx, req, opts)
		return requestExecutedMsg{response: resp, err: err}
	}
}
