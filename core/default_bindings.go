package core

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"up", "w", "k"}, Action: "up", Description: "up", Scopes: []string{"*"}},
		{Keys: []string{"down", "s", "j"}, Action: "down", Description: "down", Scopes: []string{"*"}},
		{Keys: []string{"left", "a", "h"}, Action: "left", Description: "left", Scopes: []string{"screen:timesetter", "screen:confirm"}},
		{Keys: []string{"right", "d", "l"}, Action: "right", Description: "right", Scopes: []string{"screen:timesetter", "screen:confirm"}},
		{Keys: []string{"enter", "space"}, Action: "select", Description: "select", Scopes: []string{"*"}},
		{Keys: []string{"esc", "backspace"}, Action: "back", Description: "back", Scopes: []string{
			"screen:settings", "screen:timesettings", "screen:option", "screen:timesetter",
			"screen:about", "screen:ota", "screen:browser", "screen:confirm",
		}},
		{Keys: []string{"/"}, Action: "filter", Description: "filter", Scopes: []string{"screen:browser"}},
	}
}
