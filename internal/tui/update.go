package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.follow = true
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		}
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case components.ToggledMsg, components.PressedMsg, components.CheckedMsg,
		components.ValueChangedMsg, components.SelectedMsg, components.DialogMsg,
		components.PopoverMsg, components.DismissedMsg:
		m.record(msg)
	default:
		cmd = m.gallery.Broadcast(msg)
	}

	m.refresh()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if d, ok := m.openDialog(); ok {
		if msg.Type == tea.KeyEsc && d.CloseOnEscape() {
			return m, d.Close()
		}
		return m, d.Update(msg)
	}

	target, focused := m.target()

	switch {
	case key.Matches(msg, m.keys.Next):
		cmd := m.cycleFocus(1)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.cycleFocus(-1)
		return m, cmd
	}

	if focused && isTextEntry(target) {
		if msg.Type == tea.KeyEsc {
			cmd := m.setFocus(-1)
			return m, cmd
		}
		return m, target.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Variant):
		m.cycleVariant()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height/2)
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height/2)
		return m, nil
	}

	if focused {
		return m, target.Update(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.log.Debug("showcase closed")
	return m, tea.Quit
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	n := len(m.focusables)
	if n == 0 {
		return nil
	}
	next := 0
	if m.focus >= 0 {
		next = ((m.focus+delta)%n + n) % n
	} else if delta < 0 {
		next = n - 1
	}
	return m.setFocus(next)
}

// cycleVariant walks none, default, bordered ... 3d, none.
func (m *Model) cycleVariant() {
	variants := components.Variants()
	switch {
	case !m.overriding:
		m.override = variants[0]
		m.overriding = true
	case m.override == variants[len(variants)-1]:
		m.overriding = false
	default:
		m.override = m.override.Next()
	}

	label := "declared"
	if m.overriding {
		label = m.override.String()
	}
	m.status = "variant: " + label
	m.log.WithFields(map[string]any{"variant": label}).Debug("variant override changed")
}

func (m *Model) toggleTheme() {
	m.dark = !m.dark
	if m.dark {
		m.theme = components.DarkTheme()
	} else {
		m.theme = components.LightTheme()
	}
	m.styles = newChrome(m.theme)
	m.status = "theme: " + m.ThemeName()
	m.log.WithFields(map[string]any{"theme": m.ThemeName()}).Debug("theme changed")
}

// record turns a component event into the status line and a debug entry.
func (m *Model) record(msg tea.Msg) {
	var kind, id, text string
	switch msg := msg.(type) {
	case components.ToggledMsg:
		kind, id = "accordion", msg.ID
		text = fmt.Sprintf("item %d %s", msg.Index, openWord(msg.Open))
	case components.PressedMsg:
		kind, id, text = "button", msg.ID, "pressed"
	case components.CheckedMsg:
		kind, id = "checkbox", msg.ID
		text = fmt.Sprintf("checked=%t", msg.Checked)
	case components.ValueChangedMsg:
		kind, id = "slider", msg.ID
		text = fmt.Sprintf("value=%g", msg.Value)
	case components.SelectedMsg:
		kind, id = "select", msg.ID
		text = fmt.Sprintf("selected %q", msg.Option)
	case components.DialogMsg:
		kind, id, text = "dialog", msg.ID, openWord(msg.Open)
	case components.PopoverMsg:
		kind, id, text = "popover", msg.ID, openWord(msg.Open)
	case components.DismissedMsg:
		kind, id, text = "alert", msg.ID, "dismissed"
	default:
		return
	}

	m.status = fmt.Sprintf("%s: %s", id, text)
	m.log.WithComponent(kind, id).Debug(text)
}

func openWord(open bool) string {
	if open {
		return "opened"
	}
	return "closed"
}
