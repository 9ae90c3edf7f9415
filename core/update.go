package core

import tea "github.com/charmbracelet/bubbletea"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case ClockTickMsg:
		m.now = msg.Now
		return m, clockTick()
	case StatusMsg:
		m.status = msg.Text
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case ReplaceScreenMsg:
		m.screens.Replace(msg.Screen)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.routeToTop(msg)
	}
	return m.routeToTop(msg)
}

func (m Model) routeToTop(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	if top == nil {
		return m, nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		m.popScreen()
		return m, cmd
	}
	if next != nil {
		m.screens.Replace(next)
	}
	return m, cmd
}

// popScreen removes the top screen. The root never pops: no action on the
// root carries a close effect, and the stack guard keeps misuse a no-op.
func (m *Model) popScreen() {
	if m.screens.Len() <= 1 {
		return
	}
	m.screens.Pop()
}
