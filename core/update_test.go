package core

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fixedClock struct{ text string }

func (f fixedClock) ClockText(time.Time) string { return f.text }

func TestModelRootNeverPops(t *testing.T) {
	root := &stubScreen{title: "root", pop: true}
	m := NewModel(root, NewKeyRegistry(DefaultKeyBindings()), fixedClock{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(Model)
	if got.screens.Len() != 1 {
		t.Fatalf("stack len = %d, want 1", got.screens.Len())
	}
	if got.screens.Top() != root {
		t.Fatal("root screen was replaced")
	}
}

func TestModelPushAndPop(t *testing.T) {
	root := &stubScreen{title: "root"}
	child := &stubScreen{title: "child", pop: true}
	m := NewModel(root, NewKeyRegistry(DefaultKeyBindings()), fixedClock{})

	next, _ := m.Update(PushScreenMsg{Screen: child})
	m = next.(Model)
	if m.screens.Len() != 2 || m.screens.Top() != child {
		t.Fatalf("push failed: len=%d top=%v", m.screens.Len(), m.screens.Top())
	}

	// child reports pop on the next key; root is revealed untouched
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.screens.Len() != 1 || m.screens.Top() != root {
		t.Fatalf("pop failed: len=%d top=%v", m.screens.Len(), m.screens.Top())
	}
}

func TestModelReplaceMessage(t *testing.T) {
	root := &stubScreen{title: "root"}
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	m := NewModel(root, NewKeyRegistry(DefaultKeyBindings()), fixedClock{})

	next, _ := m.Update(PushScreenMsg{Screen: first})
	m = next.(Model)
	next, _ = m.Update(ReplaceScreenMsg{Screen: second})
	m = next.(Model)

	if m.screens.Len() != 2 {
		t.Fatalf("stack len = %d, want 2", m.screens.Len())
	}
	if m.screens.Top() != second {
		t.Fatal("replace did not swap the top screen")
	}
	if m.screens.Under() != root {
		t.Fatal("replace must keep the owner underneath")
	}
}

func TestModelClockTickReschedules(t *testing.T) {
	m := NewModel(&stubScreen{title: "root"}, NewKeyRegistry(nil), fixedClock{})

	at := time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)
	next, cmd := m.Update(ClockTickMsg{Now: at})
	m = next.(Model)
	if !m.now.Equal(at) {
		t.Fatalf("now = %v, want %v", m.now, at)
	}
	if cmd == nil {
		t.Fatal("clock tick must reschedule itself")
	}
}

func TestModelStatusMessage(t *testing.T) {
	m := NewModel(&stubScreen{title: "root"}, NewKeyRegistry(nil), fixedClock{})
	next, _ := m.Update(StatusMsg{Text: "Launching game"})
	m = next.(Model)
	if m.status != "Launching game" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := NewModel(&stubScreen{title: "root"}, NewKeyRegistry(nil), fixedClock{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c command is not quit")
	}
}
