package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
)

// Transition is a blank panel pushed before handing the display to an
// external program. It swallows every key so nothing leaks into the menu
// while the child owns the framebuffer; the child never returns control,
// so there is no way out of it.
type Transition struct{}

func NewTransition(Deps) *Transition { return &Transition{} }

func (t *Transition) Title() string { return "" }
func (t *Transition) Scope() string { return "screen:transition" }

func (t *Transition) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	return t, nil, false
}

func (t *Transition) View(width, height int) string {
	return ""
}
