package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
)

// frameFlushDelay gives the UI one rendered frame (a blank transition
// screen) before a fullscreen child takes over the display.
const frameFlushDelay = 16 * time.Millisecond

// NewMainMenu builds the root screen. It sits at the bottom of the stack for
// the life of the process and has no back path.
func NewMainMenu(deps Deps) *ListScreen {
	cmds := deps.Cfg.Config().Commands
	items := []Item{
		{ID: "start-game", Label: "Start Game", Action: core.NavigateInvoke(
			func() core.Screen { return NewTransition(deps) },
			func() tea.Cmd { return spawnAfterFlush(deps, cmds.Game, "game handoff") },
		)},
		{ID: "console", Label: "Console", Action: core.NavigateInvoke(
			func() core.Screen { return NewConsole(deps) },
			func() tea.Cmd { return spawnAfterFlush(deps, cmds.ConsoleStart, "console started") },
		)},
		{ID: "nes", Label: "NES Emulator", Action: core.Navigate(
			func() core.Screen { return NewBrowser(deps) },
		)},
		{ID: "settings", Label: "Settings", Action: core.Navigate(
			func() core.Screen { return NewSettings(deps) },
		)},
		{ID: "about", Label: "About", Action: core.Navigate(
			func() core.Screen { return NewAbout(deps) },
		)},
		{ID: "reboot", Label: "Reboot", Action: core.Navigate(
			func() core.Screen { return NewRebootConfirm(deps) },
		)},
	}
	menu := NewMenu(items, "start-game")
	return NewListScreen("Main Menu", "screen:main", deps.Keys, menu).WithoutBack()
}

// spawnAfterFlush defers the spawn by one frame so the transition screen is
// on the display before the child grabs it.
func spawnAfterFlush(deps Deps, command, status string) tea.Cmd {
	return tea.Tick(frameFlushDelay, func(time.Time) tea.Msg {
		deps.Launcher.Spawn(command)
		return core.StatusMsg{Text: status}
	})
}
