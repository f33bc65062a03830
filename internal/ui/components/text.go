package components

import "github.com/charmbracelet/lipgloss"

// TextRole picks the typography preset a Text renders with.
type TextRole int

const (
	RoleBody TextRole = iota
	RoleTitle
	RoleDescription
	RoleLabel
	RoleHelper
	RoleError
	RoleCode
)

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	role    TextRole
}

// NewText creates a body text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := typography(ctx.Theme, t.role).Inherit(t.ComputeStyle(ctx.Theme))
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithRole sets the typography role.
func (t *Text) WithRole(role TextRole) *Text {
	t.role = role
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText creates title text.
func TitleText(content string) *Text {
	return NewText(content).WithRole(RoleTitle)
}

// DescriptionText creates secondary description text.
func DescriptionText(content string) *Text {
	return NewText(content).WithRole(RoleDescription)
}

// CodeText creates code-styled text.
func CodeText(content string) *Text {
	return NewText(content).WithRole(RoleCode)
}

func typography(theme Theme, role TextRole) lipgloss.Style {
	typo := theme.Typography
	switch role {
	case RoleTitle:
		return typo.Title
	case RoleDescription:
		return typo.Description
	case RoleLabel:
		return typo.Label
	case RoleHelper:
		return typo.Helper
	case RoleError:
		return typo.Error
	case RoleCode:
		return typo.Code
	default:
		return typo.Body
	}
}
