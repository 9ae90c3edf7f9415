package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snowmiku/picomenu/core"
)

// TimeSetter edits the system clock: two spinner fields plus Save/Back.
// Left/right moves focus, up/down adjusts the focused field, Save hands the
// new value to date/hwclock and closes.
type TimeSetter struct {
	deps   Deps
	hour   int
	minute int
	focus  int // 0 hour, 1 minute, 2 save, 3 back
}

func NewTimeSetter(deps Deps) *TimeSetter {
	now := time.Now()
	return &TimeSetter{deps: deps, hour: now.Hour(), minute: now.Minute()}
}

func (s *TimeSetter) Title() string { return "Set Time" }
func (s *TimeSetter) Scope() string { return "screen:timesetter" }

func (s *TimeSetter) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keys := s.deps.Keys
	switch {
	case keys.IsAction(key, "back", s.Scope()):
		return s, nil, true
	case keys.IsAction(key, "left", s.Scope()):
		s.focus = (s.focus + 3) % 4
	case keys.IsAction(key, "right", s.Scope()):
		s.focus = (s.focus + 1) % 4
	case keys.IsAction(key, "up", s.Scope()):
		s.adjust(1)
	case keys.IsAction(key, "down", s.Scope()):
		s.adjust(-1)
	case keys.IsAction(key, "select", s.Scope()):
		switch s.focus {
		case 2:
			return s, s.save(), true
		case 3:
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *TimeSetter) adjust(delta int) {
	switch s.focus {
	case 0:
		s.hour = (s.hour + delta + 24) % 24
	case 1:
		s.minute = (s.minute + delta + 60) % 60
	}
}

// save pushes the edited time to the OS clock and the hardware clock.
func (s *TimeSetter) save() tea.Cmd {
	cmd := fmt.Sprintf("date -s %q && hwclock -w", fmt.Sprintf("%02d:%02d:00", s.hour, s.minute))
	s.deps.Launcher.Spawn(cmd)
	return core.StatusCmd(fmt.Sprintf("Time set to %02d:%02d", s.hour, s.minute))
}

func (s *TimeSetter) View(width, height int) string {
	hour := spinnerCell(fmt.Sprintf("%02d", s.hour), s.focus == 0)
	minute := spinnerCell(fmt.Sprintf("%02d", s.minute), s.focus == 1)
	sep := bodyStyle.Render(" : ")
	row := lipgloss.JoinHorizontal(lipgloss.Center, hour, sep, minute)

	save := buttonCell("Save", s.focus == 2)
	back := buttonCell("Back", s.focus == 3)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, save, "   ", back)

	content := strings.Join([]string{
		menuTitleStyle.Render("Set Time"),
		"",
		row,
		"",
		buttons,
	}, "\n")
	return centered(content, width, height)
}

func spinnerCell(text string, focused bool) string {
	style := menuItemStyle.Padding(1, 3)
	if focused {
		style = menuItemFocusedStyle.Padding(1, 3)
	}
	return style.Render(text)
}

func buttonCell(text string, focused bool) string {
	if focused {
		return menuItemFocusedStyle.Render(text)
	}
	return menuItemStyle.Render(text)
}
