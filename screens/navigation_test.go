package screens

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/internal/clock"
)

func newTestApp(t *testing.T) (tea.Model, *ListScreen, Deps) {
	t.Helper()
	deps := testDeps(t, t.TempDir())
	main := NewMainMenu(deps)
	src := clock.NewSource(func() (bool, bool) {
		p := deps.Cfg.Prefs()
		return p.ShowSeconds, p.Is24Hour
	})
	return core.NewModel(main, deps.Keys, src), main, deps
}

func activeScope(t *testing.T, m tea.Model) string {
	t.Helper()
	return m.(core.Model).ActiveScope()
}

func TestBackRestoresOwnerCursor(t *testing.T) {
	m, main, _ := newTestApp(t)

	// start-game -> console -> nes -> settings
	for i := 0; i < 3; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := main.Menu().FocusID(); got != "settings" {
		t.Fatalf("cursor = %q, want settings", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := activeScope(t, m); got != "screen:settings" {
		t.Fatalf("active scope = %q, want screen:settings", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := activeScope(t, m); got != "screen:main" {
		t.Fatalf("active scope after back = %q, want screen:main", got)
	}
	if got := main.Menu().FocusID(); got != "settings" {
		t.Fatalf("cursor after back = %q, want settings still focused", got)
	}
}

func TestDeepNavigationAndUnwind(t *testing.T) {
	m, main, _ := newTestApp(t)

	// main -> settings -> time settings -> seconds option page
	for i := 0; i < 3; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}) // time settings
	if got := activeScope(t, m); got != "screen:timesettings" {
		t.Fatalf("scope = %q, want screen:timesettings", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}) // seconds page
	if got := activeScope(t, m); got != "screen:option" {
		t.Fatalf("scope = %q, want screen:option", got)
	}

	// unwind one level at a time
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := activeScope(t, m); got != "screen:timesettings" {
		t.Fatalf("scope = %q, want screen:timesettings", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := activeScope(t, m); got != "screen:settings" {
		t.Fatalf("scope = %q, want screen:settings", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := activeScope(t, m); got != "screen:main" {
		t.Fatalf("scope = %q, want screen:main", got)
	}
	if got := main.Menu().FocusID(); got != "settings" {
		t.Fatalf("cursor = %q, want settings", got)
	}
}

func TestBackItemClosesLikeBackKey(t *testing.T) {
	deps := testDeps(t, t.TempDir())
	s := NewSettings(deps)

	// move to the Back item: time -> ota -> back
	s.Menu().Focus("back")
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("back item should pop")
	}
	if cmd != nil {
		t.Fatal("settings has no close effect")
	}
}

func TestConsoleIgnoresBackKeyExitStops(t *testing.T) {
	deps := testDeps(t, t.TempDir())
	s := NewConsole(deps)

	_, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if pop {
		t.Fatal("console must not close on the back key")
	}

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("exit item should pop")
	}
	if cmd == nil {
		t.Fatal("exit must carry the stop effect")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || msg.Text != "Console stopped" {
		t.Fatalf("close cmd = %v, want console stopped status", msg)
	}
}

func TestOTAStopRunsOnEveryClosePath(t *testing.T) {
	deps := testDeps(t, t.TempDir())

	// back key
	s := NewOTA(deps)
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || cmd == nil {
		t.Fatalf("back key: pop=%v cmd=%v", pop, cmd)
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || msg.Text != "OTA server stopped" {
		t.Fatalf("back key close cmd = %v", msg)
	}

	// back item
	s = NewOTA(deps)
	_, cmd, pop = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("back item: pop=%v cmd=%v", pop, cmd)
	}
}

func TestConfirmDefaultsToCancel(t *testing.T) {
	deps := testDeps(t, t.TempDir())
	c := NewRebootConfirm(deps)

	_, cmd, pop := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("cancel should pop")
	}
	if cmd != nil {
		t.Fatal("cancel must not carry the confirm effect")
	}
}

func TestConfirmArrowTogglesThenConfirms(t *testing.T) {
	deps := testDeps(t, t.TempDir())
	c := NewRebootConfirm(deps)

	c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, cmd, pop := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("confirm should pop")
	}
	if cmd == nil {
		t.Fatal("confirm should carry the reboot effect")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || msg.Text != "Rebooting..." {
		t.Fatalf("confirm cmd = %v", msg)
	}
}

func TestTimeSetterWrapsFields(t *testing.T) {
	deps := testDeps(t, t.TempDir())
	s := NewTimeSetter(deps)
	s.hour, s.minute, s.focus = 23, 59, 0

	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	if s.hour != 0 {
		t.Fatalf("hour = %d, want wrap to 0", s.hour)
	}
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if s.hour != 23 {
		t.Fatalf("hour = %d, want wrap back to 23", s.hour)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyRight}) // focus minute
	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	if s.minute != 0 {
		t.Fatalf("minute = %d, want wrap to 0", s.minute)
	}

	// focus cycles hour -> minute -> save -> back -> hour
	s.focus = 3
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	if s.focus != 0 {
		t.Fatalf("focus = %d, want wrap to hour", s.focus)
	}
	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if s.focus != 3 {
		t.Fatalf("focus = %d, want wrap to back button", s.focus)
	}
}

func TestTimeSetterBackButtonPops(t *testing.T) {
	deps := testDeps(t, t.TempDir())
	s := NewTimeSetter(deps)
	s.focus = 3
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd != nil {
		t.Fatalf("back button: pop=%v cmd=%v", pop, cmd)
	}
}

func TestOptionPageFocusMatchesCurrentPref(t *testing.T) {
	deps := testDeps(t, t.TempDir())

	s := NewShowSecondsPage(deps)
	if got := s.Menu().FocusID(); got != "on" {
		t.Fatalf("seconds page focus = %q, want on", got)
	}

	s = NewHourFormatPage(deps)
	if got := s.Menu().FocusID(); got != "24h" {
		t.Fatalf("format page focus = %q, want 24h", got)
	}
}

func TestOptionPickPersistsBeforePop(t *testing.T) {
	deps := testDeps(t, t.TempDir())
	s := NewShowSecondsPage(deps)

	s.Menu().Focus("off")
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("picking an option should close the page")
	}
	if deps.Cfg.Prefs().ShowSeconds {
		t.Fatal("preference not applied at dispatch time")
	}
	if cmd == nil {
		t.Fatal("pick should report a status")
	}

	// clock reflects the change on the next render
	src := clock.NewSource(func() (bool, bool) {
		p := deps.Cfg.Prefs()
		return p.ShowSeconds, p.Is24Hour
	})
	at := time.Date(2024, 5, 1, 13, 5, 9, 0, time.UTC)
	if got := src.ClockText(at); got != "13:05" {
		t.Fatalf("clock = %q, want 13:05", got)
	}
}
