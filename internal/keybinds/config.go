package keybinds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration.
// Each section maps a key string to an action name.
type Config struct {
	Version      string            `json:"version"`
	Global       map[string]string `json:"global,omitempty"`
	AddressBar   map[string]string `json:"address_bar,omitempty"`
	RequestBody  map[string]string `json:"request_body,omitempty"`
	HeaderList   map[string]string `json:"header_list,omitempty"`
	HeaderEdit   map[string]string `json:"header_edit,omitempty"`
	ResponseBody map[string]string `json:"response_body,omitempty"`
	RequestList  map[string]string `json:"request_list,omitempty"`
	Confirm      map[string]string `json:"confirm,omitempty"`
	TextInput    map[string]string `json:"text_input,omitempty"`
}

// sections maps each context to its config section
func (c *Config) sections() map[Context]*map[string]string {
	return map[Context]*map[string]string{
		ContextGlobal:       &c.Global,
		ContextAddressBar:   &c.AddressBar,
		ContextRequestBody:  &c.RequestBody,
		ContextHeaderList:   &c.HeaderList,
		ContextHeaderEdit:   &c.HeaderEdit,
		ContextResponseBody: &c.ResponseBody,
		ContextRequestList:  &c.RequestList,
		ContextConfirm:      &c.Confirm,
		ContextTextInput:    &c.TextInput,
	}
}

// ParseConfig decodes a keybinds.json document. Comments and trailing
// commas are allowed.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}
	return &config, nil
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings; an empty action unbinds the key.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		for key, actionStr := range *section {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("context %s: %w", context, err)
			}
			if actionStr == "" {
				registry.Unregister(context, key)
				continue
			}
			registry.Register(context, key, Action(actionStr))
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()
	if configPath == "" {
		return registry, nil
	}

	config, err := LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return registry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	return registry, nil
}

// ExportConfig converts every binding of a registry into a Config
func ExportConfig(registry *Registry) *Config {
	config := &Config{Version: "1.0"}
	for context, section := range config.sections() {
		bindings := registry.ListBindings(context)
		if len(bindings) == 0 {
			continue
		}
		*section = make(map[string]string, len(bindings))
		for _, b := range bindings {
			(*section)[b.Key] = string(b.Action)
		}
	}
	return config
}

// ExportDefaults exports default keybindings as a config file
// Useful for users to see what can be customized
func ExportDefaults() *Config {
	return ExportConfig(NewDefaultRegistry())
}
