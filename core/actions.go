package core

import tea "github.com/charmbracelet/bubbletea"

// ActionKind is the closed effect vocabulary of an activated menu item.
// Dispatch is by kind, never by comparing display labels.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionNavigate pushes the screen built by Screen.
	ActionNavigate
	// ActionReplace swaps the current screen for the one built by Screen,
	// keeping the same owner underneath.
	ActionReplace
	// ActionInvoke runs Invoke with no navigation change.
	ActionInvoke
	// ActionInvokeClose runs Invoke first, then pops, so the owner renders
	// the new state the moment it is back.
	ActionInvokeClose
	// ActionClose pops the current screen.
	ActionClose
)

// Action couples an effect kind with its payload. Screen is consulted for
// Navigate/Replace, Invoke for Invoke/InvokeClose; Navigate may also carry
// an Invoke for open-side effects (starting the OTA server, spawning a
// console).
type Action struct {
	Kind   ActionKind
	Screen func() Screen
	Invoke func() tea.Cmd
}

func Navigate(factory func() Screen) Action {
	return Action{Kind: ActionNavigate, Screen: factory}
}

func NavigateInvoke(factory func() Screen, invoke func() tea.Cmd) Action {
	return Action{Kind: ActionNavigate, Screen: factory, Invoke: invoke}
}

func Replace(factory func() Screen) Action {
	return Action{Kind: ActionReplace, Screen: factory}
}

func Invoke(invoke func() tea.Cmd) Action {
	return Action{Kind: ActionInvoke, Invoke: invoke}
}

func InvokeClose(invoke func() tea.Cmd) Action {
	return Action{Kind: ActionInvokeClose, Invoke: invoke}
}

func Close() Action {
	return Action{Kind: ActionClose}
}

// Dispatch translates an action into a command plus a pop signal. Unknown
// kinds are a no-op.
func Dispatch(a Action) (tea.Cmd, bool) {
	switch a.Kind {
	case ActionNavigate:
		var cmds []tea.Cmd
		if a.Screen != nil {
			cmds = append(cmds, PushScreenCmd(a.Screen()))
		}
		if a.Invoke != nil {
			cmds = append(cmds, a.Invoke())
		}
		return tea.Batch(cmds...), false
	case ActionReplace:
		if a.Screen == nil {
			return nil, false
		}
		return ReplaceScreenCmd(a.Screen()), false
	case ActionInvoke:
		if a.Invoke == nil {
			return nil, false
		}
		return a.Invoke(), false
	case ActionInvokeClose:
		var cmd tea.Cmd
		if a.Invoke != nil {
			cmd = a.Invoke()
		}
		return cmd, true
	case ActionClose:
		return nil, true
	}
	return nil, false
}
