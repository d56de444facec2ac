package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerAddressBarBindings(r)
	registerRequestBodyBindings(r)
	registerHeaderListBindings(r)
	registerHeaderEditBindings(r)
	registerResponseBindings(r)
	registerRequestListBindings(r)
	registerConfirmBindings(r)
	registerTextInputBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all regions.
// Only non-printable keys belong here: text regions fall back to global.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "tab", ActionFocusNext)
	r.Register(ContextGlobal, "shift+tab", ActionFocusPrev)
	r.Register(ContextGlobal, "ctrl+r", ActionSendRequest)
}

// registerLineEditing sets up single-line editing keys shared by text regions
func registerLineEditing(r *Registry, context Context) {
	r.Register(context, "backspace", ActionTextBackspace)
	r.Register(context, "delete", ActionTextDelete)
	r.Register(context, "left", ActionTextMoveLeft)
	r.Register(context, "right", ActionTextMoveRight)
	r.RegisterMultiple(context, []string{"home", "ctrl+a"}, ActionTextMoveHome)
	r.RegisterMultiple(context, []string{"end", "ctrl+e"}, ActionTextMoveEnd)
	r.Register(context, "ctrl+v", ActionTextPaste)
	r.Register(context, "ctrl+u", ActionTextClearBefore)
	r.Register(context, "ctrl+k", ActionTextClearAfter)
}

func registerAddressBarBindings(r *Registry) {
	registerLineEditing(r, ContextAddressBar)
	r.Register(ContextAddressBar, "enter", ActionSendRequest)
	r.Register(ContextAddressBar, "ctrl+t", ActionCycleMethod)
}

func registerRequestBodyBindings(r *Registry) {
	registerLineEditing(r, ContextRequestBody)
	r.Register(ContextRequestBody, "up", ActionTextMoveUp)
	r.Register(ContextRequestBody, "down", ActionTextMoveDown)
	r.Register(ContextRequestBody, "enter", ActionTextNewline)
	r.Register(ContextRequestBody, "ctrl+f", ActionPrettifyBody)
	r.Register(ContextRequestBody, "ctrl+t", ActionNextTab)
}

func registerHeaderListBindings(r *Registry) {
	r.RegisterMultiple(ContextHeaderList, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHeaderList, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHeaderList, "a", ActionHeaderAdd)
	r.RegisterMultiple(ContextHeaderList, []string{"enter", "e"}, ActionHeaderEdit)
	r.Register(ContextHeaderList, "ctrl+d", ActionHeaderDelete)
	r.Register(ContextHeaderList, "ctrl+t", ActionNextTab)
}

// registerHeaderEditBindings binds tab to the field toggle, shadowing focus_next
// while a pair is open.
func registerHeaderEditBindings(r *Registry) {
	registerLineEditing(r, ContextHeaderEdit)
	r.Register(ContextHeaderEdit, "tab", ActionToggleField)
	r.Register(ContextHeaderEdit, "shift+tab", ActionToggleField)
	r.Register(ContextHeaderEdit, "enter", ActionTextSubmit)
	r.Register(ContextHeaderEdit, "esc", ActionTextCancel)
}

func registerResponseBindings(r *Registry) {
	r.RegisterMultiple(ContextResponseBody, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextResponseBody, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextResponseBody, "pgup", ActionPageUp)
	r.Register(ContextResponseBody, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextResponseBody, []string{"g", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextResponseBody, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ContextResponseBody, "ctrl+t", ActionNextTab)
	r.Register(ContextResponseBody, "J", ActionFilterResponse)
	r.Register(ContextResponseBody, "x", ActionClearFilter)
}

func registerRequestListBindings(r *Registry) {
	r.RegisterMultiple(ContextRequestList, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextRequestList, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextRequestList, "pgup", ActionPageUp)
	r.Register(ContextRequestList, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextRequestList, []string{"g", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextRequestList, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ContextRequestList, "enter", ActionSelectRequest)
	r.Register(ContextRequestList, "ctrl+d", ActionDeleteRequest)
	r.Register(ContextRequestList, "R", ActionRenameRequest)
	r.Register(ContextRequestList, "n", ActionNewRequest)
	r.Register(ContextRequestList, "/", ActionSearchRequests)
	r.Register(ContextRequestList, "esc", ActionClearSearch)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"tab", "left", "right", "shift+tab"}, ActionToggleChoice)
	r.Register(ContextConfirm, "enter", ActionChoose)
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}

func registerTextInputBindings(r *Registry) {
	registerLineEditing(r, ContextTextInput)
	r.Register(ContextTextInput, "enter", ActionTextSubmit)
	r.Register(ContextTextInput, "esc", ActionTextCancel)
}
