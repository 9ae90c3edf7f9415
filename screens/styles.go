package screens

import "github.com/charmbracelet/lipgloss"

// Same device palette as the core chrome.
var (
	colorSurface lipgloss.Color = "#2d2d2d"
	colorItem    lipgloss.Color = "#404040"
	colorFocus   lipgloss.Color = "#5070a0"
	colorText    lipgloss.Color = "#e0e0e0"
	colorBright  lipgloss.Color = "#ffffff"
	colorMuted   lipgloss.Color = "#909090"

	menuTitleStyle = lipgloss.NewStyle().
			Foreground(colorBright).
			Bold(true).
			Background(colorSurface).
			Padding(0, 1)
	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorBright).
			Background(colorItem).
			Padding(0, 1)
	menuItemFocusedStyle = lipgloss.NewStyle().
				Foreground(colorBright).
				Background(colorFocus).
				Bold(true).
				Padding(0, 1)
	menuTextStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurface).
			Padding(0, 1)
	bodyStyle = lipgloss.NewStyle().
			Foreground(colorText)
)
