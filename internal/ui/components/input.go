package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field holds the label, helper and error lines shared by Input and Textarea.
type field struct {
	label   string
	helper  string
	errText string
}

func (f field) render(ctx RenderContext, look VariantStyle, focused bool, editor string, width int) string {
	theme := ctx.Theme
	parts := make([]string, 0, 3)
	if f.label != "" {
		labelStyle := apply(look.Content, theme.Typography.Label, theme)
		if focused {
			labelStyle = apply(look.Accent, labelStyle, theme)
		}
		parts = append(parts, labelStyle.Render(f.label))
	}

	box := apply(look.Frame, lipgloss.NewStyle(), theme).Padding(0, 1).Width(width + 2)
	switch {
	case f.errText != "":
		box = BorderColour(PaletteDanger)(box, theme)
	case focused:
		box = BorderColour(PalettePrimary)(box, theme)
	}
	parts = append(parts, box.Render(editor))

	switch {
	case f.errText != "":
		parts = append(parts, theme.Typography.Error.Render(f.errText))
	case f.helper != "":
		parts = append(parts, apply(look.Muted, theme.Typography.Helper, theme).Render(f.helper))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Input is a single-line text field backed by bubbles/textinput.
type Input struct {
	BaseComponent
	field
	model textinput.Model
}

// NewInput creates an empty input.
func NewInput(label string) *Input {
	model := textinput.New()
	model.Prompt = ""
	return &Input{
		BaseComponent: NewBaseComponent(),
		field:         field{label: label},
		model:         model,
	}
}

// View renders the input.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, editor box and helper or error.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	look, metrics := i.look(ctx)
	width := innerWidth(ctx, metrics, 4)
	i.model.Width = width - 1
	return i.field.render(ctx, look, i.model.Focused(), i.model.View(), width)
}

// Update forwards messages to the text model while focused.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if !i.model.Focused() {
		return nil
	}
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// Value returns the entered text.
func (i *Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the entered text.
func (i *Input) SetValue(value string) {
	i.model.SetValue(value)
}

// Focus gives the input keyboard focus and starts the cursor blink.
func (i *Input) Focus() tea.Cmd {
	return i.model.Focus()
}

// Blur removes keyboard focus.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports whether the input has focus.
func (i *Input) Focused() bool {
	return i.model.Focused()
}

// WithPlaceholder sets the placeholder text.
func (i *Input) WithPlaceholder(placeholder string) *Input {
	i.model.Placeholder = placeholder
	return i
}

// WithHelper sets the helper line.
func (i *Input) WithHelper(helper string) *Input {
	i.helper = helper
	return i
}

// WithError sets the error line, which replaces the helper.
func (i *Input) WithError(errText string) *Input {
	i.errText = errText
	return i
}

// WithVariant sets the input variant.
func (i *Input) WithVariant(variant Variant) *Input {
	i.SetVariant(variant)
	return i
}

// WithSize sets the input size.
func (i *Input) WithSize(size Size) *Input {
	i.SetSize(size)
	return i
}

// Textarea is a multi-line text field backed by bubbles/textarea.
type Textarea struct {
	BaseComponent
	field
	model textarea.Model
}

// NewTextarea creates an empty textarea.
func NewTextarea(label string) *Textarea {
	model := textarea.New()
	model.ShowLineNumbers = false
	model.SetHeight(4)
	return &Textarea{
		BaseComponent: NewBaseComponent(),
		field:         field{label: label},
		model:         model,
	}
}

// View renders the textarea.
func (t *Textarea) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, editor box and helper or error.
func (t *Textarea) ViewWithContext(ctx RenderContext) string {
	look, metrics := t.look(ctx)
	width := innerWidth(ctx, metrics, 4)
	t.model.SetWidth(width)
	return t.field.render(ctx, look, t.model.Focused(), t.model.View(), width)
}

// Update forwards messages to the text model while focused.
func (t *Textarea) Update(msg tea.Msg) tea.Cmd {
	if !t.model.Focused() {
		return nil
	}
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd
}

// Value returns the entered text.
func (t *Textarea) Value() string {
	return t.model.Value()
}

// SetValue replaces the entered text.
func (t *Textarea) SetValue(value string) {
	t.model.SetValue(value)
}

// Focus gives the textarea keyboard focus.
func (t *Textarea) Focus() tea.Cmd {
	return t.model.Focus()
}

// Blur removes keyboard focus.
func (t *Textarea) Blur() {
	t.model.Blur()
}

// Focused reports whether the textarea has focus.
func (t *Textarea) Focused() bool {
	return t.model.Focused()
}

// WithPlaceholder sets the placeholder text.
func (t *Textarea) WithPlaceholder(placeholder string) *Textarea {
	t.model.Placeholder = placeholder
	return t
}

// WithHelper sets the helper line.
func (t *Textarea) WithHelper(helper string) *Textarea {
	t.helper = helper
	return t
}

// WithError sets the error line, which replaces the helper.
func (t *Textarea) WithError(errText string) *Textarea {
	t.errText = errText
	return t
}

// WithVariant sets the textarea variant.
func (t *Textarea) WithVariant(variant Variant) *Textarea {
	t.SetVariant(variant)
	return t
}

// WithSize sets the textarea size.
func (t *Textarea) WithSize(size Size) *Textarea {
	t.SetSize(size)
	return t
}
