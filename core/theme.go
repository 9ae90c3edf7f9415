package core

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the device theme: dark surfaces, blue focus highlight.
var (
	colorBg      lipgloss.Color = "#1e1e1e"
	colorSurface lipgloss.Color = "#2d2d2d"
	colorItem    lipgloss.Color = "#404040"
	colorFocus   lipgloss.Color = "#5070a0"
	colorText    lipgloss.Color = "#e0e0e0"
	colorBright  lipgloss.Color = "#ffffff"
	colorMuted   lipgloss.Color = "#909090"
	colorError   lipgloss.Color = "#d08080"
)
