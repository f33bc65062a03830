package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	body := m.viewport.View()
	if d, ok := m.openDialog(); ok {
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center,
			d.ViewWithContext(m.renderContext()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, m.footer())
}

func (m Model) header() string {
	title := m.styles.title.Render("prism · " + m.gallery.Name)

	parts := []string{"theme " + m.ThemeName()}
	if m.overriding {
		parts = append(parts, "variant "+m.override.String())
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.status.Render(strings.Join(parts, " · ")))
}

func (m Model) footer() string {
	return m.styles.footer.Width(m.width).Render(m.help.View(m.keys))
}

// page renders every section and records where focusable ones start and end.
func (m *Model) page() string {
	ctx := m.renderContext()
	focusedID := m.Focused()

	var lines []string
	if m.gallery.Description != "" {
		lines = append(lines, components.DescriptionText(m.gallery.Description).ViewWithContext(ctx), "")
	}

	m.offsets = make([]span, len(m.focusables))
	next := 0
	for _, section := range m.gallery.Sections() {
		style := m.styles.blur
		if section.ID == focusedID {
			style = m.styles.focus
		}
		block := style.Render(m.gallery.RenderSection(ctx, section))

		start := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		if next < len(m.focusables) && m.focusables[next].ID == section.ID {
			m.offsets[next] = span{start: start, end: len(lines) - 1}
			next++
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// refresh re-renders the page into the viewport. After a focus change or a
// resize it scrolls the focused section into view; otherwise the offset set by
// paging is kept.
func (m *Model) refresh() {
	if !m.ready {
		return
	}

	height := m.height - lipgloss.Height(m.header()) - lipgloss.Height(m.footer())
	if height < 1 {
		height = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = height
	m.viewport.SetContent(m.page())

	if !m.follow || m.focus < 0 || m.focus >= len(m.offsets) {
		return
	}
	m.follow = false
	s := m.offsets[m.focus]
	switch {
	case s.start < m.viewport.YOffset:
		m.viewport.SetYOffset(s.start)
	case s.end >= m.viewport.YOffset+height:
		offset := s.end - height + 1
		if offset > s.start {
			offset = s.start
		}
		m.viewport.SetYOffset(offset)
	}
}
