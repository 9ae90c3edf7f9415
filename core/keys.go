package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding names one action reachable in a set of screen scopes. The
// handheld has a keypad only, so each binding lists every physical alias
// (terminal arrows, WASD, space) that produces the action. An empty scope
// list means everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions. Bindings are indexed per
// scope at construction; a scope-specific binding wins over a "*" one, and
// the first binding registered for a key in a scope keeps it.
type KeyRegistry struct {
	bindings []KeyBinding
	byScope  map[string]map[string]string
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{
		bindings: slices.Clone(bindings),
		byScope:  make(map[string]map[string]string),
	}
	for _, b := range r.bindings {
		scopes := b.Scopes
		if len(scopes) == 0 {
			scopes = []string{"*"}
		}
		for _, scope := range scopes {
			index := r.byScope[scope]
			if index == nil {
				index = make(map[string]string)
				r.byScope[scope] = index
			}
			for _, k := range b.Keys {
				k = normalizeKey(k)
				if _, taken := index[k]; !taken {
					index[k] = b.Action
				}
			}
		}
	}
	return r
}

// ActionFor resolves a pressed key in a scope, or "" when nothing is bound.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	k := normalizeKey(msg.String())
	if action, ok := r.byScope[scope][k]; ok {
		return action
	}
	return r.byScope["*"][k]
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.ActionFor(msg, scope) == action
}

// BindingsForScope returns the bindings active in scope in registration
// order, for the hint footer.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// normalizeKey canonicalizes a raw key string; the keypad's space bar
// arrives from bubbletea as " ".
func normalizeKey(k string) string {
	k = strings.ToLower(k)
	if k == " " {
		return "space"
	}
	return k
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
