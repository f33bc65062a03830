package components

import (
	"github.com/alexisbeaulieu97/prism/internal/ui"
	"github.com/alexisbeaulieu97/prism/internal/ui/motion"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a modal panel opened from a trigger button. Esc closes it when
// CloseOnEscape is set and x always closes it.
type Dialog struct {
	BaseComponent
	id            string
	title         string
	description   string
	body          ui.Renderable
	trigger       string
	open          bool
	closeOnEscape bool
	focused       bool
	animID        string
	ticking       bool
	fade          motion.Transition
}

// NewDialog creates a closed dialog with the given title.
func NewDialog(title string) *Dialog {
	return &Dialog{
		BaseComponent: NewBaseComponent(),
		title:         title,
		trigger:       "Open dialog",
		closeOnEscape: true,
		animID:        motion.NextID(),
		fade:          motion.Default(),
	}
}

// View renders the dialog.
func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger while closed and the panel while open.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	look, metrics := d.look(ctx)
	theme := ctx.Theme

	if !d.open {
		trigger := apply(look.Trigger, lipgloss.NewStyle(), theme).Padding(0, metrics.PaddingX)
		if d.focused {
			trigger = trigger.Underline(true)
		}
		return trigger.Render(d.trigger)
	}

	width := innerWidth(ctx, metrics, 2+2*metrics.PaddingX)
	parts := []string{apply(look.Accent, theme.Typography.Title, theme).Render(d.title)}
	if d.description != "" {
		parts = append(parts, apply(look.Muted, theme.Typography.Description, theme).Width(width).Render(d.description))
	}
	if body := renderChild(ctx.WithWidth(width), d.body); body != "" {
		parts = append(parts, "", apply(look.Content, lipgloss.NewStyle(), theme).Render(body))
	}
	parts = append(parts, "", apply(look.Muted, lipgloss.NewStyle(), theme).Render(d.closeHint()))

	frame := apply(look.Frame, d.ComputeStyle(theme), theme).
		Padding(metrics.PaddingY+1, metrics.PaddingX).
		Width(width + 2*metrics.PaddingX)
	if d.fade.Value() < 1 {
		frame = frame.Faint(true)
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (d *Dialog) closeHint() string {
	if d.closeOnEscape {
		return "esc/x close"
	}
	return "x close"
}

// Update opens the dialog on enter or space and closes it on esc or x.
func (d *Dialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case motion.FrameMsg:
		if msg.ID != d.animID || !d.ticking {
			return nil
		}
		d.fade = d.fade.Step()
		if d.fade.Settled() {
			d.ticking = false
			return nil
		}
		return motion.Tick(d.animID, motion.DefaultFPS)
	case tea.KeyMsg:
		if !d.focused {
			return nil
		}
		switch {
		case !d.open && keyMatches(msg, keys.Activate):
			return d.Open()
		case d.open && keyMatches(msg, keys.Dismiss):
			return d.Close()
		case d.open && d.closeOnEscape && keyMatches(msg, keys.Close):
			return d.Close()
		}
	}
	return nil
}

// Open shows the panel and starts the fade-in.
func (d *Dialog) Open() tea.Cmd {
	if d.open {
		return nil
	}
	d.open = true
	d.fade = d.fade.Snap(0).SetTarget(1)
	return tea.Batch(emit(DialogMsg{ID: d.id, Open: true}), d.startFade())
}

// startFade schedules the first frame unless a frame chain from an earlier open is still running.
func (d *Dialog) startFade() tea.Cmd {
	if d.ticking {
		return nil
	}
	d.ticking = true
	return motion.Tick(d.animID, motion.DefaultFPS)
}

// Close hides the panel.
func (d *Dialog) Close() tea.Cmd {
	if !d.open {
		return nil
	}
	d.open = false
	d.fade = d.fade.Snap(0)
	return emit(DialogMsg{ID: d.id, Open: false})
}

// IsOpen reports whether the panel is shown.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// Focus gives the dialog keyboard focus.
func (d *Dialog) Focus() tea.Cmd {
	d.focused = true
	return nil
}

// Blur removes keyboard focus.
func (d *Dialog) Blur() {
	d.focused = false
}

// Focused reports whether the dialog has focus.
func (d *Dialog) Focused() bool {
	return d.focused
}

// CloseOnEscape reports whether esc closes the panel.
func (d *Dialog) CloseOnEscape() bool {
	return d.closeOnEscape
}

// WithID sets the identifier reported in DialogMsg.
func (d *Dialog) WithID(id string) *Dialog {
	d.id = id
	return d
}

// WithDescription sets the line under the title.
func (d *Dialog) WithDescription(description string) *Dialog {
	d.description = description
	return d
}

// WithBody sets the panel content.
func (d *Dialog) WithBody(body ui.Renderable) *Dialog {
	d.body = body
	return d
}

// WithTrigger sets the label of the closed-state trigger.
func (d *Dialog) WithTrigger(label string) *Dialog {
	if label != "" {
		d.trigger = label
	}
	return d
}

// WithCloseOnEscape controls whether esc closes the panel.
func (d *Dialog) WithCloseOnEscape(enabled bool) *Dialog {
	d.closeOnEscape = enabled
	return d
}

// WithOpen sets the initial state without animating.
func (d *Dialog) WithOpen(open bool) *Dialog {
	d.open = open
	if open {
		d.fade = d.fade.Snap(1)
	}
	return d
}

// WithVariant sets the dialog variant.
func (d *Dialog) WithVariant(variant Variant) *Dialog {
	d.SetVariant(variant)
	return d
}

// WithSize sets the dialog size.
func (d *Dialog) WithSize(size Size) *Dialog {
	d.SetSize(size)
	return d
}
