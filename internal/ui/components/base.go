package components

import (
	"github.com/alexisbeaulieu97/prism/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides the style plumbing every component embeds.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
	variant  Variant
	size     Size
}

// StyleStrategy defines how styling is applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a lipgloss.Style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order. Nil entries are skipped.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn != nil {
			base = fn(base, theme)
		}
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with the default variant and medium size.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
		variant:  VariantDefault,
		size:     SizeMedium,
	}
}

// ComputeStyle returns the user style with the strategy applied.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends appliers after the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}
	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		return NewCompositeStrategy(appliers...).Apply(base, theme)
	})
}

// SetVariant records the component's own variant.
func (b *BaseComponent) SetVariant(variant Variant) {
	b.variant = variant
}

// SetSize records the component's size.
func (b *BaseComponent) SetSize(size Size) {
	b.size = size
}

// Variant returns the component's own variant, ignoring any context override.
func (b *BaseComponent) Variant() Variant {
	return b.variant
}

// Size returns the component's size.
func (b *BaseComponent) Size() Size {
	return b.size
}

// look resolves the variant bundle and size metrics for a render pass.
func (b *BaseComponent) look(ctx RenderContext) (VariantStyle, SizeMetrics) {
	return ctx.Theme.Variant(ctx.Resolve(b.variant)), ctx.Theme.Size(b.size)
}

// RenderContext carries the theme and available width into a render pass.
type RenderContext struct {
	Theme Theme
	Width int

	override   Variant
	overridden bool
}

// DefaultContext returns a render context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme.Normalize()
	return r
}

// WithWidth returns a new context limited to width columns. Zero means unlimited.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// WithVariantOverride forces every component rendered with the context to use v.
func (r RenderContext) WithVariantOverride(v Variant) RenderContext {
	r.override = v
	r.overridden = true
	return r
}

// WithoutVariantOverride clears a previous override.
func (r RenderContext) WithoutVariantOverride() RenderContext {
	r.overridden = false
	return r
}

// Override returns the forced variant, if any.
func (r RenderContext) Override() (Variant, bool) {
	return r.override, r.overridden
}

// Resolve returns the variant a component declaring v should render with.
func (r RenderContext) Resolve(v Variant) Variant {
	if r.overridden {
		return r.override
	}
	return v
}

// ContextualRenderable is a component that can receive a render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Interactive is implemented by components that take keyboard focus.
type Interactive interface {
	ContextualRenderable
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
}

func renderChild(ctx RenderContext, child ui.Renderable) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

func apply(fn StyleFunc, base lipgloss.Style, theme Theme) lipgloss.Style {
	if fn == nil {
		return base
	}
	return fn(base, theme)
}

// innerWidth is the width left inside a frame with the given horizontal padding.
func innerWidth(ctx RenderContext, metrics SizeMetrics, chrome int) int {
	width := metrics.Width
	if ctx.Width > 0 && ctx.Width < width {
		width = ctx.Width
	}
	width -= chrome
	if width < 8 {
		width = 8
	}
	return width
}
