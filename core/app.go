package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one panel of the kiosk UI. Update returns the replacement
// screen, a command, and whether the screen wants to be popped.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Popup screens render as a dialog over the screen beneath them instead of
// taking the whole body.
type Popup interface {
	Popup() bool
}

// ClockSource feeds the header clock. It is re-read on every 1-second tick
// so preference toggles show up on the next render.
type ClockSource interface {
	ClockText(now time.Time) string
}

type Model struct {
	width    int
	height   int
	screens  ScreenStack
	keys     *KeyRegistry
	clock    ClockSource
	now      time.Time
	status   string
	quitting bool
}

// NewModel builds the root model. root is the main menu; it stays at the
// bottom of the stack for the life of the process.
func NewModel(root Screen, keys *KeyRegistry, clock ClockSource) Model {
	m := Model{
		keys:   keys,
		clock:  clock,
		now:    time.Now(),
		width:  80,
		height: 24,
	}
	m.screens.Push(root)
	return m
}

func (m Model) Init() tea.Cmd {
	return clockTick()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg{Now: t}
	})
}
