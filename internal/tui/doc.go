/*
Package tui implements the terminal user interface for reqtui.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: owns the focus chain, the router, the four panes and the
    request being composed
  - Update: normalizes key messages, dispatches them through the router and
    applies the completed results to the request or the collection
  - View: lays out the panes with lipgloss and draws the popup on top

# Key Components

  - model.go: Model struct, options and the Update loop
  - keys.go: key handling, quit check and dispatch
  - actions.go: completion handling and side effects (HTTP execution)
  - render.go: main layout, pane frames and status bar
  - modals.go: confirmation and text input popups

# Threading Model

Everything runs in Bubble Tea's event loop except HTTP execution, which
runs in a tea.Cmd and reports back as a requestExecutedMsg.
*/
package tui
