package components

import (
	"github.com/alexisbeaulieu97/prism/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Card groups a title, description, body and an optional action button in a frame.
type Card struct {
	BaseComponent
	title       string
	description string
	body        ui.Renderable
	action      *Button
}

// NewCard creates a card with the given title.
func NewCard(title string) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card inside its variant frame.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	look, metrics := c.look(ctx)
	theme := ctx.Theme
	width := innerWidth(ctx, metrics, 2+2*metrics.PaddingX)
	inner := ctx.WithWidth(width)

	parts := make([]string, 0, 4)
	if c.title != "" {
		parts = append(parts, apply(look.Accent, theme.Typography.Title, theme).Render(c.title))
	}
	if c.description != "" {
		parts = append(parts, apply(look.Muted, theme.Typography.Description, theme).Width(width).Render(c.description))
	}
	if body := renderChild(inner, c.body); body != "" {
		parts = append(parts, "", apply(look.Content, lipgloss.NewStyle(), theme).Render(body))
	}
	if c.action != nil {
		parts = append(parts, "", c.action.ViewWithContext(inner))
	}

	frame := apply(look.Frame, c.ComputeStyle(theme), theme).
		Padding(metrics.PaddingY, metrics.PaddingX).
		Width(width + 2*metrics.PaddingX)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// WithDescription sets the secondary line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithBody sets the card content.
func (c *Card) WithBody(body ui.Renderable) *Card {
	c.body = body
	return c
}

// WithAction adds a button under the body.
func (c *Card) WithAction(action *Button) *Card {
	c.action = action
	return c
}

// WithVariant sets the card variant.
func (c *Card) WithVariant(variant Variant) *Card {
	c.SetVariant(variant)
	return c
}

// WithSize sets the card size.
func (c *Card) WithSize(size Size) *Card {
	c.SetSize(size)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// Action returns the card's action button, if any.
func (c *Card) Action() *Button {
	return c.action
}
