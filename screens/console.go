package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
)

// NewConsole is the screen shown while fbterm owns the display: a black
// panel with a single Exit item. Exit stops the console service and pops
// back to the main menu, whose cursor is still on Console.
func NewConsole(deps Deps) *ListScreen {
	items := []Item{
		{ID: "exit", Label: "Exit", Action: core.Close()},
	}
	menu := NewMenu(items, "exit")
	return NewListScreen("Console", "screen:console", deps.Keys, menu).
		WithoutBack().
		WithOnClose(func() tea.Cmd {
			deps.Launcher.Spawn(deps.Cfg.Config().Commands.ConsoleStop)
			return core.StatusCmd("Console stopped")
		})
}
