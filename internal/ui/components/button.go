package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is a focusable button. While loading it shows a spinner and
// ignores activation.
type Button struct {
	BaseComponent
	id       string
	label    string
	icon     string
	disabled bool
	loading  bool
	focused  bool
	spinner  spinner.Model
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	look, metrics := b.look(ctx)
	theme := ctx.Theme

	style := apply(look.Trigger, b.ComputeStyle(theme), theme)
	style = apply(look.Frame, style, theme).
		Padding(metrics.PaddingY, metrics.PaddingX)
	if b.Disabled() {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Underline(true).BorderForeground(theme.Palette.Primary.Contrast)
	}

	label := b.label
	if b.icon != "" {
		label = b.icon + " " + label
	}
	if b.loading {
		label = lipgloss.JoinHorizontal(lipgloss.Center, b.spinner.View(), label)
	}
	return style.Render(label)
}

// Update advances the spinner and turns enter or space into a PressedMsg.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !b.loading {
			return nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !b.focused || b.Disabled() {
			return nil
		}
		if keyMatches(msg, keys.Activate) {
			return emit(PressedMsg{ID: b.id})
		}
	}
	return nil
}

// Init starts the spinner when the button begins in the loading state.
func (b *Button) Init() tea.Cmd {
	if !b.loading {
		return nil
	}
	return b.spinner.Tick
}

// SetLoading switches the loading state and returns the spinner command if needed.
func (b *Button) SetLoading(loading bool) tea.Cmd {
	b.loading = loading
	return b.Init()
}

// Focus gives the button keyboard focus.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes keyboard focus.
func (b *Button) Blur() {
	b.focused = false
}

// Focused reports whether the button has focus.
func (b *Button) Focused() bool {
	return b.focused
}

// Disabled reports whether activation is ignored, which includes loading.
func (b *Button) Disabled() bool {
	return b.disabled || b.loading
}

// Loading reports whether the spinner is shown.
func (b *Button) Loading() bool {
	return b.loading
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// WithID sets the identifier reported in PressedMsg.
func (b *Button) WithID(id string) *Button {
	b.id = id
	return b
}

// WithIcon prefixes the label with an icon.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant Variant) *Button {
	b.SetVariant(variant)
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size Size) *Button {
	b.SetSize(size)
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithLoading sets the loading state. Call Init to start the spinner.
func (b *Button) WithLoading(loading bool) *Button {
	b.loading = loading
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// GhostButton creates a ghost button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(VariantGhost)
}

// RetroButton creates a retro button.
func RetroButton(label string) *Button {
	return NewButton(label).WithVariant(VariantRetro)
}

// NeonButton creates a neon button.
func NeonButton(label string) *Button {
	return NewButton(label).WithVariant(VariantNeon)
}
