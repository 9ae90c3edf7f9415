package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
)

func NewSettings(deps Deps) *ListScreen {
	items := []Item{
		{ID: "time", Label: "Time Settings", Action: core.Navigate(
			func() core.Screen { return NewTimeSettings(deps) },
		)},
		{ID: "ota", Label: "OTA Update", Action: core.NavigateInvoke(
			func() core.Screen { return NewOTA(deps) },
			func() tea.Cmd {
				deps.Launcher.Spawn(deps.Cfg.Config().Commands.OTAStart)
				return core.StatusCmd("OTA server starting")
			},
		)},
		{ID: "back", Label: "Back", Action: core.Close()},
	}
	menu := NewMenu(items, "time")
	return NewListScreen("Settings", "screen:settings", deps.Keys, menu)
}

func NewTimeSettings(deps Deps) *ListScreen {
	items := []Item{
		{ID: "set-time", Label: "Set time", Action: core.Navigate(
			func() core.Screen { return NewTimeSetter(deps) },
		)},
		{ID: "seconds", Label: "Second display", Action: core.Navigate(
			func() core.Screen { return NewShowSecondsPage(deps) },
		)},
		{ID: "format", Label: "12/24 Hour format", Action: core.Navigate(
			func() core.Screen { return NewHourFormatPage(deps) },
		)},
		{ID: "back", Label: "Back", Action: core.Close()},
	}
	menu := NewMenu(items, "set-time")
	return NewListScreen("Time Settings", "screen:timesettings", deps.Keys, menu)
}
