package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/snowmiku/picomenu/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	body := renderBody(m, max(1, m.width), available)
	body = fitHeight(body, available)
	main := strings.TrimSuffix(strings.Join([]string{header, status, body}, "\n"), "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+available)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// renderBody draws the active screen. Popup screens (the reboot dialog)
// render centered over the still-visible owner; everything else takes the
// body outright, with the owner retained but hidden.
func renderBody(m Model, width, height int) string {
	top := m.screens.Top()
	if top == nil || height <= 0 {
		return ""
	}
	if p, ok := top.(Popup); ok && p.Popup() {
		base := ""
		if under := m.screens.Under(); under != nil {
			base = under.View(width, height)
		}
		return widgets.RenderPopup(base, top.View(max(20, width-12), max(6, height-4)), width, height)
	}
	return top.View(width, height)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(" picomenu ")
	right := ""
	if m.clock != nil {
		right = clockStyle.Render(m.clock.ClockText(m.now) + " ")
	}
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
