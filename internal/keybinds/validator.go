package keybinds

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound, with the action they keep
	reservedKeys map[string]Action

	// focusKeys are the global keys that move focus between regions
	focusKeys map[string]bool
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
		focusKeys: map[string]bool{
			"tab":       true,
			"shift+tab": true,
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkFocusReachable(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// ValidateConfig validates a configuration applied over the defaults
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		return &ValidationResult{
			Errors: []ValidationError{{
				Type:    "invalid",
				Message: err.Error(),
			}},
			Warnings: []ValidationError{},
		}
	}

	return v.ValidateRegistry(registry)
}

// checkActions reports bindings to actions the application does not handle
func (v *Validator) checkActions(registry *Registry, result *ValidationResult) {
	for _, context := range registry.Contexts() {
		for _, b := range registry.ListBindings(context) {
			if !IsKnownAction(b.Action) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     b.Key,
					Message: fmt.Sprintf("unknown action %q", b.Action),
				})
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, context := range registry.Contexts() {
		for _, b := range registry.ListBindings(context) {
			want, reserved := v.reservedKeys[b.Key]
			if reserved && b.Action != want {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     b.Key,
					Message: "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkFocusReachable makes sure focus can still leave every region
func (v *Validator) checkFocusReachable(registry *Registry, result *ValidationResult) {
	if len(registry.GetBinding(ContextGlobal, ActionFocusNext)) == 0 &&
		len(registry.GetBinding(ContextGlobal, ActionFocusPrev)) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Context: ContextGlobal,
			Message: "no key moves focus between regions",
		})
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings.
// Shadowing a focus key is only a warning: the region owns that key while focused.
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	global := registry.ListBindings(ContextGlobal)
	if len(global) == 0 {
		return
	}

	for _, context := range registry.Contexts() {
		if context == ContextGlobal {
			continue
		}
		for _, b := range registry.ListBindings(context) {
			i := slices.IndexFunc(global, func(g Binding) bool { return g.Key == b.Key })
			if i < 0 || global[i].Action == b.Action {
				continue
			}
			msg := fmt.Sprintf("shadows global binding (%s -> %s)", global[i].Action, b.Action)
			if v.focusKeys[b.Key] {
				msg += "; focus cannot leave this region with this key"
			}
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Key:     b.Key,
				Message: msg,
			})
		}
	}
}

// FindConflicts lists every validation error of a config
func FindConflicts(config *Config) []string {
	result := NewValidator().ValidateConfig(config)

	var conflicts []string
	for _, err := range result.Errors {
		conflicts = append(conflicts, err.Error())
	}
	return conflicts
}

var validModifiers = []string{"ctrl+", "alt+", "shift+"}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	rest := key
	for {
		i := slices.IndexFunc(validModifiers, func(mod string) bool {
			return strings.HasPrefix(rest, mod)
		})
		if i < 0 {
			break
		}
		rest = strings.TrimPrefix(rest, validModifiers[i])
	}
	if rest == "" {
		return fmt.Errorf("modifier without key: %s", key)
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action: %s", actionStr)
	}
	return nil
}
