package screens

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snowmiku/picomenu/core"
	"github.com/snowmiku/picomenu/internal/system"
)

// Browser lists the ROM directory. Back is always the first row and holds
// initial focus; an unreadable directory degrades to a placeholder row
// instead of an error exit, so the screen always opens. "/" enters a filter
// that re-ranks the list as you type.
type Browser struct {
	deps      Deps
	menu      *Menu
	roms      []string
	counts    map[string]int
	last      map[string]time.Time
	filter    textinput.Model
	filtering bool
	dirErr    bool
}

func NewBrowser(deps Deps) *Browser {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"
	ti.CharLimit = 32

	b := &Browser{deps: deps, filter: ti}
	b.roms, b.dirErr = b.loadDir()
	b.counts, b.last = b.loadHistory()
	b.menu = NewMenu(b.buildItems(""), "back")
	return b
}

func (b *Browser) loadDir() ([]string, bool) {
	dir := b.deps.Cfg.Config().Paths.ROMDir
	names, err := system.ListRegularFiles(dir)
	if err != nil {
		if b.deps.Log != nil {
			b.deps.Log.Warn("rom dir unreadable", "dir", dir, "err", err)
		}
		return nil, true
	}
	return names, false
}

// loadHistory is best-effort: without a history store, or on query error,
// the browser just shows plain rows.
func (b *Browser) loadHistory() (map[string]int, map[string]time.Time) {
	if b.deps.History == nil {
		return nil, nil
	}
	ctx := context.Background()
	counts, err := b.deps.History.Counts(ctx)
	if err != nil {
		if b.deps.Log != nil {
			b.deps.Log.Warn("play counts unavailable", "err", err)
		}
		return nil, nil
	}
	last, err := b.deps.History.LastPlayed(ctx)
	if err != nil {
		if b.deps.Log != nil {
			b.deps.Log.Warn("last played unavailable", "err", err)
		}
		last = nil
	}
	return counts, last
}

func (b *Browser) buildItems(query string) []Item {
	items := []Item{
		{ID: "back", Label: "Back", Action: core.Close()},
	}
	if b.dirErr {
		dir := b.deps.Cfg.Config().Paths.ROMDir
		items = append(items, Item{
			ID:    "dir-error",
			Text:  true,
			Label: fmt.Sprintf("Error: Cannot open %s", dir),
		})
		return items
	}
	for _, name := range rankRoms(b.roms, query) {
		rom := name
		var note string
		if n := b.counts[rom]; n > 0 {
			note = fmt.Sprintf("x%d", n)
			if at, ok := b.last[rom]; ok {
				note += " " + sinceLabel(at)
			}
		}
		items = append(items, Item{
			ID:    "rom:" + rom,
			Label: rom,
			Note:  note,
			Action: core.NavigateInvoke(
				func() core.Screen { return NewTransition(b.deps) },
				func() tea.Cmd { return b.launchAfterFlush(rom) },
			),
		})
	}
	return items
}

// rankRoms orders names by match quality against query: substring matches
// first, then by edit distance, ties by name. An empty query keeps the
// directory order.
func rankRoms(names []string, query string) []string {
	if query == "" {
		return names
	}
	q := strings.ToLower(query)
	ranked := make([]string, len(names))
	copy(ranked, names)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := strings.ToLower(ranked[i]), strings.ToLower(ranked[j])
		ac, bc := strings.Contains(a, q), strings.Contains(b, q)
		if ac != bc {
			return ac
		}
		da := levenshtein.ComputeDistance(q, a)
		db := levenshtein.ComputeDistance(q, b)
		if da != db {
			return da < db
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// sinceLabel compresses a last-played time into a short row note.
func sinceLabel(at time.Time) string {
	days := int(time.Since(at).Hours() / 24)
	if days <= 0 {
		return "today"
	}
	return fmt.Sprintf("%dd", days)
}

// launchAfterFlush defers the handoff by one frame so the transition screen
// is on the display first, then records the play and spawns the emulator.
func (b *Browser) launchAfterFlush(rom string) tea.Cmd {
	cfg := b.deps.Cfg.Config()
	path := filepath.Join(cfg.Paths.ROMDir, rom)
	return tea.Tick(frameFlushDelay, func(time.Time) tea.Msg {
		if b.deps.History != nil {
			if err := b.deps.History.RecordLaunch(context.Background(), rom); err != nil && b.deps.Log != nil {
				b.deps.Log.Warn("record launch failed", "rom", rom, "err", err)
			}
		}
		b.deps.Launcher.SpawnQuoted(cfg.Commands.ROMLaunch, path)
		return core.StatusMsg{Text: "Launching " + rom}
	})
}

func (b *Browser) Title() string { return "NES Emulator" }
func (b *Browser) Scope() string { return "screen:browser" }
func (b *Browser) Menu() *Menu   { return b.menu }

func (b *Browser) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil, false
	}

	if b.filtering {
		switch key.String() {
		case "enter":
			b.filtering = false
			b.filter.Blur()
		case "esc":
			b.filtering = false
			b.filter.Blur()
			b.filter.SetValue("")
			b.menu.SetItems(b.buildItems(""), "back")
		default:
			var cmd tea.Cmd
			b.filter, cmd = b.filter.Update(msg)
			b.menu.SetItems(b.buildItems(b.filter.Value()), "back")
			return b, cmd, false
		}
		return b, nil, false
	}

	if b.deps.Keys.IsAction(key, "back", b.Scope()) {
		return b, nil, true
	}
	if !b.dirErr && b.deps.Keys.IsAction(key, "filter", b.Scope()) {
		b.filtering = true
		return b, b.filter.Focus(), false
	}
	cmd, pop, _ := b.menu.HandleKey(key, b.deps.Keys, b.Scope())
	return b, cmd, pop
}

func (b *Browser) View(width, height int) string {
	content := b.menu.View(b.Title(), width)
	if b.filtering || b.filter.Value() != "" {
		content += "\n\n" + bodyStyle.Render(b.filter.View())
	}
	return centered(content, width, height)
}
