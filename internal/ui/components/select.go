package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSelectPlaceholder is shown while nothing is chosen.
const DefaultSelectPlaceholder = "Select an option"

// Select picks one option from a drop-down list.
type Select struct {
	BaseComponent
	id          string
	label       string
	placeholder string
	options     []string
	selected    int
	cursor      int
	open        bool
	focused     bool
}

// NewSelect creates a select with nothing chosen.
func NewSelect(label string, options ...string) *Select {
	return &Select{
		BaseComponent: NewBaseComponent(),
		label:         label,
		placeholder:   DefaultSelectPlaceholder,
		options:       append([]string(nil), options...),
		selected:      -1,
	}
}

// View renders the select.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the current choice and the open list.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	look, metrics := s.look(ctx)
	theme := ctx.Theme
	width := innerWidth(ctx, metrics, 2+2*metrics.PaddingX)

	value := s.placeholder
	valueStyle := apply(look.Muted, lipgloss.NewStyle(), theme)
	if option, ok := s.Selected(); ok {
		value = option
		valueStyle = apply(look.Content, lipgloss.NewStyle(), theme)
	}
	marker := chevronClosed
	if s.open {
		marker = chevronOpen
	}

	field := apply(look.Frame, s.ComputeStyle(theme), theme).
		Padding(0, metrics.PaddingX).
		Width(width + 2*metrics.PaddingX)
	if s.focused {
		field = BorderColour(PalettePrimary)(field, theme)
	}
	fieldLine := valueStyle.Render(value)
	gap := width - lipgloss.Width(fieldLine) - lipgloss.Width(marker)
	fieldLine += lipgloss.NewStyle().Width(max(gap, 1)).Render("") + marker

	parts := []string{}
	if s.label != "" {
		parts = append(parts, apply(look.Content, theme.Typography.Label, theme).Render(s.label))
	}
	parts = append(parts, field.Render(fieldLine))

	if s.open {
		rows := make([]string, len(s.options))
		for i, option := range s.options {
			prefix := "  "
			if i == s.selected {
				prefix = "✓ "
			}
			style := apply(look.Content, lipgloss.NewStyle(), theme)
			if i == s.cursor {
				style = apply(look.Accent, style, theme)
			}
			rows[i] = style.Render(prefix + option)
		}
		list := lipgloss.NewStyle().Border(theme.Borders.Normal).
			BorderForeground(theme.Palette.Neutral.Muted).
			Padding(0, 1)
		parts = append(parts, list.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Update opens the list, moves the cursor and chooses with enter or space.
func (s *Select) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.options) == 0 {
		return nil
	}
	if !s.open {
		if keyMatches(keyMsg, keys.Activate, keys.Down) {
			s.open = true
			if s.selected >= 0 {
				s.cursor = s.selected
			}
		}
		return nil
	}
	switch {
	case keyMatches(keyMsg, keys.Close):
		s.open = false
	case keyMatches(keyMsg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case keyMatches(keyMsg, keys.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case keyMatches(keyMsg, keys.Activate):
		s.open = false
		s.selected = s.cursor
		return emit(SelectedMsg{ID: s.id, Index: s.selected, Option: s.options[s.selected]})
	}
	return nil
}

// Selected returns the chosen option.
func (s *Select) Selected() (string, bool) {
	if s.selected < 0 || s.selected >= len(s.options) {
		return "", false
	}
	return s.options[s.selected], true
}

// IsOpen reports whether the list is shown.
func (s *Select) IsOpen() bool {
	return s.open
}

// Focus gives the select keyboard focus.
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus and closes the list.
func (s *Select) Blur() {
	s.focused = false
	s.open = false
}

// Focused reports whether the select has focus.
func (s *Select) Focused() bool {
	return s.focused
}

// WithID sets the identifier reported in SelectedMsg.
func (s *Select) WithID(id string) *Select {
	s.id = id
	return s
}

// WithPlaceholder replaces the empty-state text.
func (s *Select) WithPlaceholder(placeholder string) *Select {
	if placeholder != "" {
		s.placeholder = placeholder
	}
	return s
}

// WithSelected chooses an option by value. Unknown values are ignored.
func (s *Select) WithSelected(option string) *Select {
	for i, candidate := range s.options {
		if candidate == option {
			s.selected = i
			s.cursor = i
			break
		}
	}
	return s
}

// WithVariant sets the select variant.
func (s *Select) WithVariant(variant Variant) *Select {
	s.SetVariant(variant)
	return s
}

// WithSize sets the select size.
func (s *Select) WithSize(size Size) *Select {
	s.SetSize(size)
	return s
}
