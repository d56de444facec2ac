package keybinds

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name       string
		context    Context
		key        string
		wantAction Action
		wantOK     bool
	}{
		{"context binding", ContextRequestList, "R", ActionRenameRequest, true},
		{"global fallback", ContextRequestList, "tab", ActionFocusNext, true},
		{"shadowed global", ContextHeaderEdit, "tab", ActionToggleField, true},
		{"printable unbound in text region", ContextAddressBar, "R", "", false},
		{"enter in body", ContextRequestBody, "enter", ActionTextNewline, true},
		{"enter in address bar", ContextAddressBar, "enter", ActionSendRequest, true},
		{"ctrl+c everywhere", ContextTextInput, "ctrl+c", ActionQuitForce, true},
		{"empty key", ContextGlobal, "", "", false},
		{"unknown context", Context("nope"), "ctrl+r", ActionSendRequest, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := r.Match(tt.context, tt.key)
			if action != tt.wantAction || ok != tt.wantOK {
				t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)",
					tt.context, tt.key, action, ok, tt.wantAction, tt.wantOK)
			}
		})
	}
}

func TestGetBinding(t *testing.T) {
	r := NewDefaultRegistry()

	got := r.GetBinding(ContextRequestList, ActionNavigateDown)
	if !reflect.DeepEqual(got, []string{"down", "j"}) {
		t.Errorf("GetBinding() = %v", got)
	}

	// falls back to global
	if got := r.GetBindingString(ContextRequestList, ActionSendRequest); got != "ctrl+r" {
		t.Errorf("GetBindingString() = %q, want ctrl+r", got)
	}

	if got := r.GetBindingString(ContextConfirm, ActionPrettifyBody); got != "unbound" {
		t.Errorf("GetBindingString() = %q, want unbound", got)
	}
}

func TestUnregisterAndMerge(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unregister(ContextRequestList, "R")
	if _, ok := r.Match(ContextRequestList, "R"); ok {
		t.Error("Expected R to be unbound")
	}

	user := NewRegistry()
	user.Register(ContextRequestList, "r", ActionRenameRequest)
	r.Merge(user)

	if action, _ := r.Match(ContextRequestList, "r"); action != ActionRenameRequest {
		t.Errorf("Expected merged binding, got %q", action)
	}
}

func TestListBindingsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextConfirm, "y", ActionConfirm)
	r.Register(ContextConfirm, "enter", ActionChoose)
	r.Register(ContextConfirm, "n", ActionCancel)

	var keys []string
	for _, b := range r.ListBindings(ContextConfirm) {
		keys = append(keys, b.Key)
	}
	if !reflect.DeepEqual(keys, []string{"enter", "n", "y"}) {
		t.Errorf("ListBindings() keys = %v", keys)
	}
}

func TestParseConfigWithComments(t *testing.T) {
	data := []byte(`{
	  "version": "1.0",
	  // swap send key
	  "global": {
	    "ctrl+s": "send_request",
	    "ctrl+r": "",
	  },
	  /* list tweaks */
	  "request_list": {"x": "delete_request"}
	}`)

	config, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	r := NewDefaultRegistry()
	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}

	if action, _ := r.Match(ContextAddressBar, "ctrl+s"); action != ActionSendRequest {
		t.Errorf("ctrl+s = %q, want send_request", action)
	}
	if _, ok := r.Match(ContextRequestList, "ctrl+r"); ok {
		t.Error("Expected ctrl+r to be unbound")
	}
	if action, _ := r.Match(ContextRequestList, "x"); action != ActionDeleteRequest {
		t.Errorf("x = %q, want delete_request", action)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"global": [}`)); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	r, err := LoadOrDefault(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault() missing file error = %v", err)
	}
	if _, ok := r.Match(ContextGlobal, "tab"); !ok {
		t.Error("Expected defaults when file is missing")
	}

	path := filepath.Join(dir, "keybinds.json")
	if err := os.WriteFile(path, []byte(`{"request_list": {"d": "delete_request"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	r, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if action, _ := r.Match(ContextRequestList, "d"); action != ActionDeleteRequest {
		t.Errorf("d = %q, want delete_request", action)
	}

	if err := os.WriteFile(path, []byte(`{"global": {"ctrl+": "send_request"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Error("Expected error for bare modifier key")
	}
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keybinds.json")
	if err := SaveConfig(ExportDefaults(), path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	r := NewRegistry()
	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}

	defaults := NewDefaultRegistry()
	for _, context := range defaults.Contexts() {
		if !reflect.DeepEqual(r.ListBindings(context), defaults.ListBindings(context)) {
			t.Errorf("context %s differs after export", context)
		}
	}
}
