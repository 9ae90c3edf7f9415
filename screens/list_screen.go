package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/widgets"
)

// ListScreen is the shared shape of every menu panel: an optional body text
// above a focus-group menu. Screens that close with a side effect (stopping
// the OTA server) set onClose; it runs on every pop path, item or back key.
type ListScreen struct {
	title   string
	scope   string
	body    string
	menu    *Menu
	keys    *core.KeyRegistry
	onClose func() tea.Cmd
	canBack bool
}

func NewListScreen(title, scope string, keys *core.KeyRegistry, menu *Menu) *ListScreen {
	return &ListScreen{title: title, scope: scope, keys: keys, menu: menu, canBack: true}
}

func (s *ListScreen) WithBody(body string) *ListScreen {
	s.body = body
	return s
}

func (s *ListScreen) WithOnClose(fn func() tea.Cmd) *ListScreen {
	s.onClose = fn
	return s
}

// WithoutBack disables the back key; the root menu and the console screen
// have no implicit way out.
func (s *ListScreen) WithoutBack() *ListScreen {
	s.canBack = false
	return s
}

func (s *ListScreen) Title() string { return s.title }
func (s *ListScreen) Scope() string { return s.scope }
func (s *ListScreen) Menu() *Menu   { return s.menu }

func (s *ListScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	if s.canBack && s.keys.IsAction(key, "back", s.scope) {
		return s, s.closeCmd(nil), true
	}
	cmd, pop, handled := s.menu.HandleKey(key, s.keys, s.scope)
	if !handled {
		return s, nil, false
	}
	if pop {
		return s, s.closeCmd(cmd), true
	}
	return s, cmd, false
}

// closeCmd runs the close hook ahead of any dispatch command so owner-screen
// state reflects the effect when it is revealed.
func (s *ListScreen) closeCmd(cmd tea.Cmd) tea.Cmd {
	if s.onClose == nil {
		return cmd
	}
	closing := s.onClose()
	if cmd == nil {
		return closing
	}
	if closing == nil {
		return cmd
	}
	return tea.Batch(closing, cmd)
}

// View stacks an optional framed body panel above the menu. Screens with a
// body carry the title on the panel instead of the menu header.
func (s *ListScreen) View(width, height int) string {
	if s.body == "" {
		return centered(s.menu.View(s.title, width), width, height)
	}
	inner := min(max(24, width-8), 48)
	panel := widgets.Box{Title: s.title, Content: bodyStyle.Render(s.body)}.
		Render(inner, lipgloss.Height(s.body)+2)
	content := panel + "\n\n" + s.menu.View("", width)
	return centered(content, width, height)
}
