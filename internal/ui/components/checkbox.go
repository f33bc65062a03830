package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Checkbox is a labelled boolean toggle with optional helper and error lines.
type Checkbox struct {
	BaseComponent
	id       string
	label    string
	helper   string
	errText  string
	checked  bool
	disabled bool
	focused  bool
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box, label and any helper or error line.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	look, _ := c.look(ctx)
	theme := ctx.Theme

	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	markStyle := apply(look.Content, lipgloss.NewStyle(), theme)
	if c.checked || c.focused {
		markStyle = apply(look.Accent, markStyle, theme)
	}
	labelStyle := apply(look.Content, c.ComputeStyle(theme), theme)
	if c.focused {
		labelStyle = labelStyle.Underline(true)
	}
	if c.disabled {
		markStyle = markStyle.Faint(true)
		labelStyle = labelStyle.Faint(true)
	}

	lines := []string{markStyle.Render(mark) + " " + labelStyle.Render(c.label)}
	switch {
	case c.errText != "":
		lines = append(lines, theme.Typography.Error.PaddingLeft(4).Render(c.errText))
	case c.helper != "":
		lines = append(lines, apply(look.Muted, theme.Typography.Helper, theme).PaddingLeft(4).Render(c.helper))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Update flips the checkbox on enter or space.
func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused || c.disabled {
		return nil
	}
	if keyMatches(keyMsg, keys.Activate) {
		c.checked = !c.checked
		return emit(CheckedMsg{ID: c.id, Checked: c.checked})
	}
	return nil
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// Focus gives the checkbox keyboard focus.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes keyboard focus.
func (c *Checkbox) Blur() {
	c.focused = false
}

// Focused reports whether the checkbox has focus.
func (c *Checkbox) Focused() bool {
	return c.focused
}

// WithID sets the identifier reported in CheckedMsg.
func (c *Checkbox) WithID(id string) *Checkbox {
	c.id = id
	return c
}

// WithChecked sets the initial state.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.checked = checked
	return c
}

// WithHelper sets the helper line.
func (c *Checkbox) WithHelper(helper string) *Checkbox {
	c.helper = helper
	return c
}

// WithError sets the error line, which replaces the helper.
func (c *Checkbox) WithError(errText string) *Checkbox {
	c.errText = errText
	return c
}

// WithDisabled blocks toggling.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// WithVariant sets the checkbox variant.
func (c *Checkbox) WithVariant(variant Variant) *Checkbox {
	c.SetVariant(variant)
	return c
}

// WithSize sets the checkbox size.
func (c *Checkbox) WithSize(size Size) *Checkbox {
	c.SetSize(size)
	return c
}
