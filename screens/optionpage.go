package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/internal/config"
)

// Option is one choice on a generic option page.
type Option struct {
	ID    string
	Label string
}

// NewOptionPage builds a page of mutually exclusive choices. Picking one
// runs the effect synchronously and closes, so the owner shows the new
// state immediately.
func NewOptionPage(deps Deps, title, scope string, options []Option, initialFocus string, pick func(id string) tea.Cmd) *ListScreen {
	items := make([]Item, 0, len(options))
	for _, opt := range options {
		id := opt.ID
		items = append(items, Item{
			ID:    id,
			Label: opt.Label,
			Action: core.InvokeClose(func() tea.Cmd {
				return pick(id)
			}),
		})
	}
	menu := NewMenu(items, initialFocus)
	return NewListScreen(title, scope, deps.Keys, menu)
}

// NewShowSecondsPage toggles the clock's seconds display. Initial focus sits
// on the currently active choice.
func NewShowSecondsPage(deps Deps) *ListScreen {
	current := "off"
	if deps.Cfg.Prefs().ShowSeconds {
		current = "on"
	}
	options := []Option{{ID: "on", Label: "On"}, {ID: "off", Label: "Off"}}
	return NewOptionPage(deps, "Second Display", "screen:option", options, current, func(id string) tea.Cmd {
		return savePrefs(deps, func(p *config.Prefs) {
			p.ShowSeconds = id == "on"
		})
	})
}

// NewHourFormatPage toggles 12/24-hour clock format.
func NewHourFormatPage(deps Deps) *ListScreen {
	current := "12h"
	if deps.Cfg.Prefs().Is24Hour {
		current = "24h"
	}
	options := []Option{{ID: "24h", Label: "24 Hour"}, {ID: "12h", Label: "12 Hour"}}
	return NewOptionPage(deps, "Time Format", "screen:option", options, current, func(id string) tea.Cmd {
		return savePrefs(deps, func(p *config.Prefs) {
			p.Is24Hour = id == "24h"
		})
	})
}

// savePrefs mutates and persists the preferences before the page pops; the
// clock label reads the store on the next render.
func savePrefs(deps Deps, mutate func(*config.Prefs)) tea.Cmd {
	p := deps.Cfg.Prefs()
	mutate(&p)
	if err := deps.Cfg.SetPrefs(p); err != nil {
		if deps.Log != nil {
			deps.Log.Error("save preferences", "err", err)
		}
		return core.StatusCmd("Could not save preferences")
	}
	if deps.Log != nil {
		deps.Log.Info("preferences saved", "show_seconds", p.ShowSeconds, "is_24_hour", p.Is24Hour)
	}
	return core.StatusCmd("Preferences saved")
}
