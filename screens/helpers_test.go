package screens

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/internal/config"
	"github.com/snowmiku/picomenu/internal/system"
)

// testDeps builds screen dependencies around a throwaway config whose shell
// commands are all empty, so nothing actually spawns under test.
func testDeps(t *testing.T, romDir string) Deps {
	t.Helper()
	conf := filepath.Join(t.TempDir(), "prefs.conf")
	content := "SHOW_SECONDS=1\n" +
		"IS_24_HOUR=1\n" +
		"ROM_DIR=" + romDir + "\n" +
		"REBOOT_CMD=\n" +
		"GAME_CMD=\n" +
		"CONSOLE_START_CMD=\n" +
		"CONSOLE_STOP_CMD=\n" +
		"OTA_START_CMD=\n" +
		"OTA_STOP_CMD=\n" +
		"ROM_LAUNCH_CMD=\n"
	if err := os.WriteFile(conf, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(conf)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return Deps{
		Keys:     core.NewKeyRegistry(core.DefaultKeyBindings()),
		Cfg:      cfg,
		Launcher: system.NewLauncher(nil),
	}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// deliver executes a command tree and feeds the resulting messages back into
// the model, the way the bubbletea runtime would.
func deliver(m tea.Model, cmd tea.Cmd) tea.Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = deliver(m, c)
		}
		return m
	}
	m, next := m.Update(msg)
	return deliver(m, next)
}

func press(m tea.Model, msg tea.Msg) tea.Model {
	m, cmd := m.Update(msg)
	return deliver(m, cmd)
}
