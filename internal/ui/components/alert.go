package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Alert displays a toned notification. Closable alerts are dismissed with
// x, enter or space while focused.
type Alert struct {
	BaseComponent
	id          string
	title       string
	description string
	tone        Tone
	closable    bool
	dismissed   bool
	focused     bool
}

// NewAlert creates an info alert with the given title.
func NewAlert(title string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		title:         title,
		tone:          ToneInfo,
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert, or nothing once dismissed.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	if a.dismissed {
		return ""
	}
	look, metrics := a.look(ctx)
	theme := ctx.Theme
	toneStyle := Foreground(a.tone.slot())(lipgloss.NewStyle(), theme).Bold(true)
	width := innerWidth(ctx, metrics, 2+2*metrics.PaddingX)

	header := toneStyle.Render(a.tone.icon()) + " " + apply(look.Content, theme.Typography.Title, theme).Render(a.title)
	if a.closable {
		closeHint := apply(look.Muted, lipgloss.NewStyle(), theme).Render("[x]")
		gap := width - lipgloss.Width(header) - lipgloss.Width(closeHint)
		if gap < 1 {
			gap = 1
		}
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, lipgloss.NewStyle().Width(gap).Render(""), closeHint)
	}

	parts := []string{header}
	if a.description != "" {
		parts = append(parts, apply(look.Muted, theme.Typography.Description, theme).Width(width).Render(a.description))
	}

	frame := apply(look.Frame, a.ComputeStyle(theme), theme)
	frame = BorderColour(a.tone.slot())(frame, theme).
		Padding(metrics.PaddingY, metrics.PaddingX).
		Width(width + 2*metrics.PaddingX)
	if a.focused {
		frame = frame.BorderStyle(theme.Borders.Thick)
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Update dismisses a focused closable alert.
func (a *Alert) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !a.focused || !a.closable || a.dismissed {
		return nil
	}
	if keyMatches(keyMsg, keys.Dismiss, keys.Activate) {
		a.dismissed = true
		return emit(DismissedMsg{ID: a.id})
	}
	return nil
}

// Focus gives the alert keyboard focus.
func (a *Alert) Focus() tea.Cmd {
	a.focused = true
	return nil
}

// Blur removes keyboard focus.
func (a *Alert) Blur() {
	a.focused = false
}

// Focused reports whether the alert has focus.
func (a *Alert) Focused() bool {
	return a.focused
}

// Dismissed reports whether the alert was closed.
func (a *Alert) Dismissed() bool {
	return a.dismissed
}

// Restore shows a dismissed alert again.
func (a *Alert) Restore() {
	a.dismissed = false
}

// Closable reports whether the alert can be dismissed.
func (a *Alert) Closable() bool {
	return a.closable
}

// WithID sets the identifier reported in DismissedMsg.
func (a *Alert) WithID(id string) *Alert {
	a.id = id
	return a
}

// WithDescription sets the body line.
func (a *Alert) WithDescription(description string) *Alert {
	a.description = description
	return a
}

// WithTone sets the semantic colour and icon.
func (a *Alert) WithTone(tone Tone) *Alert {
	a.tone = tone
	return a
}

// WithClosable allows the alert to be dismissed.
func (a *Alert) WithClosable(closable bool) *Alert {
	a.closable = closable
	return a
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant Variant) *Alert {
	a.SetVariant(variant)
	return a
}

// WithSize sets the alert size.
func (a *Alert) WithSize(size Size) *Alert {
	a.SetSize(size)
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(title string) *Alert {
	return NewAlert(title).WithTone(ToneSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(title string) *Alert {
	return NewAlert(title).WithTone(ToneWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(title string) *Alert {
	return NewAlert(title).WithTone(ToneError)
}
