package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal       Context = "global"        // Available everywhere
	ContextAddressBar   Context = "address_bar"   // URL and method line
	ContextRequestBody  Context = "request_body"  // Request body editor
	ContextHeaderList   Context = "header_list"   // Headers / params tab of the request editor
	ContextHeaderEdit   Context = "header_edit"   // Key/value pair being edited
	ContextResponseBody Context = "response_body" // Response viewer
	ContextRequestList  Context = "request_list"  // Request list
	ContextConfirm      Context = "confirm"       // Confirmation dialogs
	ContextTextInput    Context = "text_input"    // Text input popups
)

const (
	// Global actions
	ActionQuitForce   Action = "quit_force"   // Force quit (ctrl+c)
	ActionFocusNext   Action = "focus_next"   // Focus next region
	ActionFocusPrev   Action = "focus_prev"   // Focus previous region
	ActionSendRequest Action = "send_request" // Execute the current request

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move up one item
	ActionNavigateDown Action = "navigate_down" // Move down one item
	ActionPageUp       Action = "page_up"       // Move up one page
	ActionPageDown     Action = "page_down"     // Move down one page
	ActionGoToTop      Action = "go_to_top"     // Go to top
	ActionGoToBottom   Action = "go_to_bottom"  // Go to bottom

	// Text input actions
	ActionTextBackspace   Action = "text_backspace"    // Delete char before cursor
	ActionTextDelete      Action = "text_delete"       // Delete char at cursor
	ActionTextMoveLeft    Action = "text_move_left"    // Move cursor left
	ActionTextMoveRight   Action = "text_move_right"   // Move cursor right
	ActionTextMoveUp      Action = "text_move_up"      // Move cursor up one line
	ActionTextMoveDown    Action = "text_move_down"    // Move cursor down one line
	ActionTextMoveHome    Action = "text_move_home"    // Move cursor to start
	ActionTextMoveEnd     Action = "text_move_end"     // Move cursor to end
	ActionTextPaste       Action = "text_paste"        // Paste from clipboard
	ActionTextClearBefore Action = "text_clear_before" // Clear before cursor
	ActionTextClearAfter  Action = "text_clear_after"  // Clear after cursor
	ActionTextNewline     Action = "text_newline"      // Split the line
	ActionTextSubmit      Action = "text_submit"       // Submit text input
	ActionTextCancel      Action = "text_cancel"       // Cancel text input

	// Address bar
	ActionCycleMethod Action = "cycle_method" // Next HTTP method

	// Request editor
	ActionNextTab      Action = "next_tab"      // Switch editor / viewer tab
	ActionPrettifyBody Action = "prettify_body" // Reformat body as JSON
	ActionHeaderAdd    Action = "header_add"    // Add header or param
	ActionHeaderEdit   Action = "header_edit"   // Edit selected header or param
	ActionHeaderDelete Action = "header_delete" // Delete selected header or param
	ActionToggleField  Action = "toggle_field"  // Switch between key and value

	// Response viewer
	ActionFilterResponse Action = "filter_response" // Filter response with JMESPath
	ActionClearFilter    Action = "clear_filter"    // Drop the active filter

	// Request list
	ActionSelectRequest  Action = "select_request"  // Load request into the editor
	ActionDeleteRequest  Action = "delete_request"  // Delete request (with confirm)
	ActionRenameRequest  Action = "rename_request"  // Rename request
	ActionNewRequest     Action = "new_request"     // Create request
	ActionSearchRequests Action = "search_requests" // Fuzzy search
	ActionClearSearch    Action = "clear_search"    // Drop the search

	// Confirmation dialogs
	ActionToggleChoice Action = "toggle_choice" // Toggle Yes / No
	ActionChoose       Action = "choose"        // Resolve to the highlighted choice
	ActionConfirm      Action = "confirm"       // Resolve to Yes
	ActionCancel       Action = "cancel"        // Resolve to No
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuitForce:       {ActionQuitForce, "Force quit", "Global"},
	ActionFocusNext:       {ActionFocusNext, "Next region", "Global"},
	ActionFocusPrev:       {ActionFocusPrev, "Previous region", "Global"},
	ActionSendRequest:     {ActionSendRequest, "Send request", "Global"},
	ActionNavigateUp:      {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:    {ActionNavigateDown, "Move down", "Navigation"},
	ActionPageUp:          {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:        {ActionPageDown, "Page down", "Navigation"},
	ActionGoToTop:         {ActionGoToTop, "Go to top", "Navigation"},
	ActionGoToBottom:      {ActionGoToBottom, "Go to bottom", "Navigation"},
	ActionTextBackspace:   {ActionTextBackspace, "Delete before cursor", "Text"},
	ActionTextDelete:      {ActionTextDelete, "Delete at cursor", "Text"},
	ActionTextMoveLeft:    {ActionTextMoveLeft, "Cursor left", "Text"},
	ActionTextMoveRight:   {ActionTextMoveRight, "Cursor right", "Text"},
	ActionTextMoveUp:      {ActionTextMoveUp, "Cursor up", "Text"},
	ActionTextMoveDown:    {ActionTextMoveDown, "Cursor down", "Text"},
	ActionTextMoveHome:    {ActionTextMoveHome, "Line start", "Text"},
	ActionTextMoveEnd:     {ActionTextMoveEnd, "Line end", "Text"},
	ActionTextPaste:       {ActionTextPaste, "Paste", "Text"},
	ActionTextClearBefore: {ActionTextClearBefore, "Clear before cursor", "Text"},
	ActionTextClearAfter:  {ActionTextClearAfter, "Clear after cursor", "Text"},
	ActionTextNewline:     {ActionTextNewline, "New line", "Text"},
	ActionTextSubmit:      {ActionTextSubmit, "Submit", "Text"},
	ActionTextCancel:      {ActionTextCancel, "Cancel", "Text"},
	ActionCycleMethod:     {ActionCycleMethod, "Cycle method", "Request"},
	ActionNextTab:         {ActionNextTab, "Next tab", "Request"},
	ActionPrettifyBody:    {ActionPrettifyBody, "Format JSON", "Request"},
	ActionHeaderAdd:       {ActionHeaderAdd, "Add", "Request"},
	ActionHeaderEdit:      {ActionHeaderEdit, "Edit", "Request"},
	ActionHeaderDelete:    {ActionHeaderDelete, "Delete", "Request"},
	ActionToggleField:     {ActionToggleField, "Key / value", "Request"},
	ActionFilterResponse:  {ActionFilterResponse, "Filter", "Response"},
	ActionClearFilter:     {ActionClearFilter, "Clear filter", "Response"},
	ActionSelectRequest:   {ActionSelectRequest, "Open", "Requests"},
	ActionDeleteRequest:   {ActionDeleteRequest, "Delete", "Requests"},
	ActionRenameRequest:   {ActionRenameRequest, "Rename", "Requests"},
	ActionNewRequest:      {ActionNewRequest, "New", "Requests"},
	ActionSearchRequests:  {ActionSearchRequests, "Search", "Requests"},
	ActionClearSearch:     {ActionClearSearch, "Clear search", "Requests"},
	ActionToggleChoice:    {ActionToggleChoice, "Toggle", "Confirm"},
	ActionChoose:          {ActionChoose, "Choose", "Confirm"},
	ActionConfirm:         {ActionConfirm, "Yes", "Confirm"},
	ActionCancel:          {ActionCancel, "No", "Confirm"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one the application handles
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}
