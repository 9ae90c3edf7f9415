package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/snowmiku/picomenu/core"
)

// Item is one row of a menu. Dispatch identity is the ID and the Action
// kind, never the display label. Text rows (placeholder errors) render but
// never take focus.
type Item struct {
	ID     string
	Label  string
	Note   string
	Text   bool
	Action core.Action
}

// Menu is the focus group of one screen: an ordered item list with a single
// cursor. Initial focus is an explicit item ID, never a positional index,
// because item counts vary with directory contents and feature wiring.
type Menu struct {
	items  []Item
	cursor int
}

func NewMenu(items []Item, initialFocus string) *Menu {
	m := &Menu{items: items, cursor: -1}
	if !m.Focus(initialFocus) {
		m.cursor = m.firstFocusable()
	}
	return m
}

func (m *Menu) firstFocusable() int {
	for i, it := range m.items {
		if !it.Text {
			return i
		}
	}
	return -1
}

// Focus moves the cursor to the item with the given ID. Focus on a text row
// or an unknown ID is refused.
func (m *Menu) Focus(id string) bool {
	for i, it := range m.items {
		if it.ID == id && !it.Text {
			m.cursor = i
			return true
		}
	}
	return false
}

// FocusID reports the focused item's ID, or "" when nothing is focusable.
func (m *Menu) FocusID() string {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return ""
	}
	return m.items[m.cursor].ID
}

func (m *Menu) Items() []Item {
	return m.items
}

// SetItems swaps the item list, keeping focus on the same ID when it
// survives the swap.
func (m *Menu) SetItems(items []Item, fallbackFocus string) {
	keep := m.FocusID()
	m.items = items
	m.cursor = -1
	if keep != "" && m.Focus(keep) {
		return
	}
	if !m.Focus(fallbackFocus) {
		m.cursor = m.firstFocusable()
	}
}

func (m *Menu) MoveUp()   { m.move(-1) }
func (m *Menu) MoveDown() { m.move(1) }

// move advances the cursor over focusable rows, wrapping at either end.
func (m *Menu) move(delta int) {
	n := len(m.items)
	if n == 0 || m.cursor < 0 {
		return
	}
	i := m.cursor
	for step := 0; step < n; step++ {
		i = (i + delta + n) % n
		if !m.items[i].Text {
			m.cursor = i
			return
		}
	}
}

// HandleKey interprets a key through the registry for the given scope.
// It returns the dispatch command, the pop signal, and whether the key was
// consumed.
func (m *Menu) HandleKey(msg tea.KeyMsg, keys *core.KeyRegistry, scope string) (tea.Cmd, bool, bool) {
	switch {
	case keys.IsAction(msg, "up", scope):
		m.MoveUp()
		return nil, false, true
	case keys.IsAction(msg, "down", scope):
		m.MoveDown()
		return nil, false, true
	case keys.IsAction(msg, "select", scope):
		if m.cursor < 0 || m.cursor >= len(m.items) {
			return nil, false, true
		}
		cmd, pop := core.Dispatch(m.items[m.cursor].Action)
		return cmd, pop, true
	}
	return nil, false, false
}

// View renders the menu as a centered block of rows.
func (m *Menu) View(title string, width int) string {
	inner := min(max(24, width-8), 48)
	var b strings.Builder
	if title != "" {
		b.WriteString(menuTitleStyle.Width(inner).Render(title))
		b.WriteString("\n")
	}
	for i, it := range m.items {
		line := it.Label
		if it.Note != "" {
			// Keep the note inside the row style so the focus highlight
			// covers the whole line.
			pad := inner - 2 - ansi.StringWidth(it.Label) - ansi.StringWidth(it.Note)
			if pad > 1 {
				line += strings.Repeat(" ", pad) + it.Note
			} else {
				line += " " + it.Note
			}
		}
		switch {
		case it.Text:
			b.WriteString(menuTextStyle.Width(inner).Render(line))
		case i == m.cursor:
			b.WriteString(menuItemFocusedStyle.Width(inner).Render(line))
		default:
			b.WriteString(menuItemStyle.Width(inner).Render(line))
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func centered(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
