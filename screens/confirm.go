package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snowmiku/picomenu/core"
)

// Confirm is a two-button message box rendered as a popup over its owner.
type Confirm struct {
	deps      Deps
	title     string
	text      string
	onConfirm func() tea.Cmd
	cursor    int // 0 confirm, 1 cancel
}

func NewConfirm(deps Deps, title, text string, onConfirm func() tea.Cmd) *Confirm {
	return &Confirm{deps: deps, title: title, text: text, onConfirm: onConfirm, cursor: 1}
}

// NewRebootConfirm is the reboot message box; Confirm hands off to the
// reboot command and pops, Cancel just pops.
func NewRebootConfirm(deps Deps) *Confirm {
	return NewConfirm(deps, "Reboot", "Are you sure you want to reboot?", func() tea.Cmd {
		deps.Launcher.Spawn(deps.Cfg.Config().Commands.Reboot)
		return core.StatusCmd("Rebooting...")
	})
}

func (s *Confirm) Title() string { return s.title }
func (s *Confirm) Scope() string { return "screen:confirm" }
func (s *Confirm) Popup() bool   { return true }

func (s *Confirm) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keys := s.deps.Keys
	switch {
	case keys.IsAction(key, "back", s.Scope()):
		return s, nil, true
	case keys.IsAction(key, "left", s.Scope()), keys.IsAction(key, "right", s.Scope()),
		keys.IsAction(key, "up", s.Scope()), keys.IsAction(key, "down", s.Scope()):
		s.cursor = 1 - s.cursor
	case keys.IsAction(key, "select", s.Scope()):
		if s.cursor == 0 && s.onConfirm != nil {
			return s, s.onConfirm(), true
		}
		return s, nil, true
	}
	return s, nil, false
}

func (s *Confirm) View(width, height int) string {
	confirm := buttonCell("Confirm", s.cursor == 0)
	cancel := buttonCell("Cancel", s.cursor == 1)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirm, "   ", cancel)
	return strings.Join([]string{
		menuTitleStyle.Render(s.title),
		"",
		bodyStyle.Render(s.text),
		"",
		buttons,
	}, "\n")
}
