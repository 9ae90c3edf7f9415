package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorBg)

	headerBarStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorText)
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBright).
			Bold(true).
			Background(colorSurface)
	clockStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorBg)

	footerStyle = lipgloss.NewStyle().Background(colorSurface)
)
