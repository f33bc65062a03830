package components

import (
	"github.com/alexisbeaulieu97/prism/internal/ui/motion"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyHome  = tea.KeyMsg{Type: tea.KeyHome}
	keyEnd   = tea.KeyMsg{Type: tea.KeyEnd}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyX     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
)

// messages runs cmd and flattens batches into the resulting messages.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, messages(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func firstOf[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// frames counts the animation frames cmd schedules.
func frames(cmd tea.Cmd) int {
	n := 0
	for _, msg := range messages(cmd) {
		if _, ok := msg.(motion.FrameMsg); ok {
			n++
		}
	}
	return n
}
