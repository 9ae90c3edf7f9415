package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/internal/clock"
	"github.com/snowmiku/picomenu/internal/config"
	"github.com/snowmiku/picomenu/internal/history"
	"github.com/snowmiku/picomenu/internal/system"
	"github.com/snowmiku/picomenu/screens"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := openLogger(cfg.Config().Paths.LogFile)

	// Play history is best-effort: a broken database means no play counts,
	// never a refusal to boot.
	var plays *history.Store
	if db, err := openHistory(cfg.Config().Paths); err != nil {
		logger.Warn("play history unavailable", "err", err)
	} else {
		defer db.Close()
		plays = history.NewStore(db)
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())

	deps := screens.Deps{
		Keys:     keys,
		Cfg:      cfg,
		Launcher: system.NewLauncher(logger),
		History:  plays,
		Log:      logger,
	}

	src := clock.NewSource(func() (bool, bool) {
		p := cfg.Prefs()
		return p.ShowSeconds, p.Is24Hour
	})

	model := core.NewModel(screens.NewMainMenu(deps), keys, src)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("ui exited", "err", err)
		os.Exit(1)
	}
}

// openLogger logs to the configured file, falling back to stderr when the
// file cannot be opened. The UI owns the terminal, so stderr is a last
// resort, not the normal path.
func openLogger(path string) *log.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	return log.NewWithOptions(f, log.Options{ReportTimestamp: true})
}

func openHistory(paths config.Paths) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(paths.HistoryDB), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir history dir: %w", err)
	}
	if err := history.RunMigrations(paths.HistoryDB, paths.MigrationsDir); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return history.Open(paths.HistoryDB)
}
