// Package pane implements the regions of the main screen that take part in
// the focus ring: the address bar, the request editor, the response viewer
// and the request list.
//
// Each pane is a router.Handler. Panes own their editing state and report
// domain changes to the caller as Completed results; they never touch the
// request being composed directly.
package pane
