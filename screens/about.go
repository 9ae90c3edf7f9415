package screens

import (
	"fmt"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/internal/system"
)

// NewAbout builds the system information screen. Every read degrades to an
// inline error string; the screen itself always comes up.
func NewAbout(deps Deps) *ListScreen {
	cfg := deps.Cfg.Config()

	memory := "Error: Cannot read memory info"
	if totalKB, availableKB, err := system.MemTotals(); err == nil {
		memory = fmt.Sprintf("%d MB / %d MB Available", totalKB/1024, availableKB/1024)
	}

	body := fmt.Sprintf(
		"Device: %s\nMemory: %s\n\nPackage Version:\n%s\n\nDeveloper: Snowmiku\ngithub.com/18650official",
		cfg.DeviceName,
		memory,
		system.ReadTextFile(cfg.Paths.InfoFile),
	)

	items := []Item{{ID: "back", Label: "Back", Action: core.Close()}}
	menu := NewMenu(items, "back")
	return NewListScreen("About", "screen:about", deps.Keys, menu).WithBody(body)
}
