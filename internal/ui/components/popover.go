package components

import (
	"github.com/alexisbeaulieu97/prism/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Popover toggles a content panel under its trigger.
type Popover struct {
	BaseComponent
	id      string
	trigger string
	content ui.Renderable
	open    bool
	focused bool
}

// NewPopover creates a closed popover.
func NewPopover(trigger string, content ui.Renderable) *Popover {
	return &Popover{
		BaseComponent: NewBaseComponent(),
		trigger:       trigger,
		content:       content,
	}
}

// View renders the popover.
func (p *Popover) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and the panel when open.
func (p *Popover) ViewWithContext(ctx RenderContext) string {
	look, metrics := p.look(ctx)
	theme := ctx.Theme

	marker := chevronClosed
	if p.open {
		marker = chevronOpen
	}
	trigger := apply(look.Trigger, lipgloss.NewStyle(), theme).Padding(0, metrics.PaddingX)
	if p.focused {
		trigger = trigger.Underline(true)
	}
	rendered := trigger.Render(p.trigger + " " + marker)
	if !p.open {
		return rendered
	}

	width := innerWidth(ctx, metrics, 2+2*metrics.PaddingX)
	panel := apply(look.Frame, p.ComputeStyle(theme), theme)
	panel = apply(look.Content, panel, theme).Padding(metrics.PaddingY, metrics.PaddingX)
	body := renderChild(ctx.WithWidth(width), p.content)
	return lipgloss.JoinVertical(lipgloss.Left, rendered, panel.Render(body))
}

// Update toggles on enter or space and closes on esc.
func (p *Popover) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return nil
	}
	switch {
	case keyMatches(keyMsg, keys.Activate):
		p.open = !p.open
		return emit(PopoverMsg{ID: p.id, Open: p.open})
	case p.open && keyMatches(keyMsg, keys.Close):
		p.open = false
		return emit(PopoverMsg{ID: p.id, Open: false})
	}
	return nil
}

// IsOpen reports whether the panel is shown.
func (p *Popover) IsOpen() bool {
	return p.open
}

// Focus gives the trigger keyboard focus.
func (p *Popover) Focus() tea.Cmd {
	p.focused = true
	return nil
}

// Blur removes focus and closes the panel.
func (p *Popover) Blur() {
	p.focused = false
	p.open = false
}

// Focused reports whether the trigger has focus.
func (p *Popover) Focused() bool {
	return p.focused
}

// WithID sets the identifier reported in PopoverMsg.
func (p *Popover) WithID(id string) *Popover {
	p.id = id
	return p
}

// WithOpen sets the initial state.
func (p *Popover) WithOpen(open bool) *Popover {
	p.open = open
	return p
}

// WithVariant sets the popover variant.
func (p *Popover) WithVariant(variant Variant) *Popover {
	p.SetVariant(variant)
	return p
}
