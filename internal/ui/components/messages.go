package components

import tea "github.com/charmbracelet/bubbletea"

// ToggledMsg reports an accordion item changing state.
type ToggledMsg struct {
	ID    string
	Index int
	Open  bool
}

// PressedMsg reports a button activation.
type PressedMsg struct {
	ID string
}

// CheckedMsg reports a checkbox change.
type CheckedMsg struct {
	ID      string
	Checked bool
}

// ValueChangedMsg reports a slider moving to a new value.
type ValueChangedMsg struct {
	ID    string
	Value float64
}

// SelectedMsg reports a select choosing an option.
type SelectedMsg struct {
	ID     string
	Index  int
	Option string
}

// DialogMsg reports a dialog opening or closing.
type DialogMsg struct {
	ID   string
	Open bool
}

// PopoverMsg reports a popover opening or closing.
type PopoverMsg struct {
	ID   string
	Open bool
}

// DismissedMsg reports an alert being closed.
type DismissedMsg struct {
	ID string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
