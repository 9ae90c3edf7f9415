package screens

import (
	"github.com/charmbracelet/log"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/internal/config"
	"github.com/snowmiku/picomenu/internal/history"
	"github.com/snowmiku/picomenu/internal/system"
)

// Deps bundles the collaborators every screen constructor draws from.
// History may be nil when the play database failed to open; screens degrade
// to zero counts.
type Deps struct {
	Keys     *core.KeyRegistry
	Cfg      *config.Store
	Launcher *system.Launcher
	History  *history.Store
	Log      *log.Logger
}
