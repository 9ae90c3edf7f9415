package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type StatusMsg struct {
	Text string
}

type ClockTickMsg struct {
	Now time.Time
}

type PushScreenMsg struct {
	Screen Screen
}

type ReplaceScreenMsg struct {
	Screen Screen
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func PushScreenCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

func ReplaceScreenCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}
