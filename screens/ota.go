package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
)

// NewOTA shows the upload instructions while the HTTP update server runs.
// The server was started by the navigate action that pushed this screen;
// every way out, the Back item or the back key, stops it again.
func NewOTA(deps Deps) *ListScreen {
	cfg := deps.Cfg.Config()
	body := fmt.Sprintf(
		"OTA update server is running.\n\nConnect to the device over USB network\nand open %s\nto upload a firmware package.",
		cfg.OTAURL,
	)
	items := []Item{
		{ID: "back", Label: "Back", Action: core.Close()},
	}
	menu := NewMenu(items, "back")
	return NewListScreen("OTA Update", "screen:ota", deps.Keys, menu).
		WithBody(body).
		WithOnClose(func() tea.Cmd {
			deps.Launcher.Spawn(cfg.Commands.OTAStop)
			return core.StatusCmd("OTA server stopped")
		})
}
