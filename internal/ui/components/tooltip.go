package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Side places floating content relative to its anchor.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide resolves top, right, bottom or left. Empty selects SideTop.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "top":
		return SideTop, nil
	case "right":
		return SideRight, nil
	case "bottom":
		return SideBottom, nil
	case "left":
		return SideLeft, nil
	default:
		return SideTop, fmt.Errorf("unknown side %q", value)
	}
}

// Tooltip shows a hint next to its anchor while the anchor has focus.
type Tooltip struct {
	BaseComponent
	anchor  string
	content string
	side    Side
	focused bool
	pinned  bool
}

// NewTooltip creates a tooltip shown above the anchor.
func NewTooltip(anchor, content string) *Tooltip {
	return &Tooltip{
		BaseComponent: NewBaseComponent(),
		anchor:        anchor,
		content:       content,
	}
}

// View renders the tooltip.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the anchor and, when visible, the bubble on its side.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	look, _ := t.look(ctx)
	theme := ctx.Theme

	anchorStyle := apply(look.Trigger, lipgloss.NewStyle(), theme).Padding(0, 1)
	if t.focused {
		anchorStyle = anchorStyle.Underline(true)
	}
	anchor := anchorStyle.Render(t.anchor)
	if !t.Visible() {
		return anchor
	}

	bubble := apply(look.Frame, t.ComputeStyle(theme), theme)
	text := apply(look.Content, bubble, theme).Padding(0, 1).Render(t.content)

	switch t.side {
	case SideBottom:
		return lipgloss.JoinVertical(lipgloss.Left, anchor, text)
	case SideLeft:
		return lipgloss.JoinHorizontal(lipgloss.Center, text, " ", anchor)
	case SideRight:
		return lipgloss.JoinHorizontal(lipgloss.Center, anchor, " ", text)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, text, anchor)
	}
}

// Update does nothing; visibility follows focus.
func (t *Tooltip) Update(tea.Msg) tea.Cmd {
	return nil
}

// Visible reports whether the bubble is drawn.
func (t *Tooltip) Visible() bool {
	return t.focused || t.pinned
}

// Focus shows the bubble.
func (t *Tooltip) Focus() tea.Cmd {
	t.focused = true
	return nil
}

// Blur hides the bubble unless pinned.
func (t *Tooltip) Blur() {
	t.focused = false
}

// Focused reports whether the anchor has focus.
func (t *Tooltip) Focused() bool {
	return t.focused
}

// WithSide sets where the bubble is placed.
func (t *Tooltip) WithSide(side Side) *Tooltip {
	t.side = side
	return t
}

// WithPinned keeps the bubble visible without focus, as in static renders.
func (t *Tooltip) WithPinned(pinned bool) *Tooltip {
	t.pinned = pinned
	return t
}

// WithVariant sets the tooltip variant.
func (t *Tooltip) WithVariant(variant Variant) *Tooltip {
	t.SetVariant(variant)
	return t
}
