// Package tui runs the interactive component showcase.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/gallery"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// Model is the Bubbletea state for the showcase.
type Model struct {
	gallery    *gallery.Gallery
	focusables []gallery.Section
	focus      int
	initCmd    tea.Cmd

	theme      components.Theme
	dark       bool
	override   components.Variant
	overriding bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	styles   chrome
	offsets  []span
	follow   bool

	width    int
	height   int
	ready    bool
	quitting bool
	status   string

	log *logger.Logger
}

// span is the first and last page line of a focusable section.
type span struct {
	start, end int
}

// NewModel builds a showcase over g and focuses its first interactive section.
// log may be nil.
func NewModel(g *gallery.Gallery, log *logger.Logger) Model {
	km := defaultKeyMap()
	ck := components.DefaultKeyMap()
	km.components = []key.Binding{ck.Up, ck.Down, ck.Left, ck.Right, ck.Activate, ck.Close, ck.Dismiss}

	m := Model{
		gallery:    g,
		focusables: g.Focusable(),
		focus:      -1,
		theme:      g.Theme,
		dark:       g.Theme.Name != "light",
		keys:       km,
		help:       help.New(),
		log:        log,
	}
	m.styles = newChrome(m.theme)

	if len(m.focusables) > 0 {
		m.initCmd = m.setFocus(0)
	}
	return m
}

// Init starts widget animations and the first focus command.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.gallery.Init(), m.initCmd)
}

// Focused returns the id of the focused section, or "" when nothing has focus.
func (m Model) Focused() string {
	if m.focus < 0 || m.focus >= len(m.focusables) {
		return ""
	}
	return m.focusables[m.focus].ID
}

// Override returns the variant forced on every component, if any.
func (m Model) Override() (components.Variant, bool) {
	return m.override, m.overriding
}

// ThemeName returns "light" or "dark".
func (m Model) ThemeName() string {
	if m.dark {
		return "dark"
	}
	return "light"
}

// Status returns the last component event description.
func (m Model) Status() string {
	return m.status
}

func (m Model) target() (components.Interactive, bool) {
	if m.focus < 0 || m.focus >= len(m.focusables) {
		return nil, false
	}
	return m.focusables[m.focus].Focusable()
}

func (m *Model) setFocus(index int) tea.Cmd {
	if current, ok := m.target(); ok {
		current.Blur()
	}
	m.focus = index
	m.follow = true
	next, ok := m.target()
	if !ok {
		m.focus = -1
		return nil
	}
	m.log.WithComponent(string(m.focusables[index].Kind), m.focusables[index].ID).Debug("focus")
	return next.Focus()
}

// openDialog returns the dialog currently showing its panel.
func (m Model) openDialog() (*components.Dialog, bool) {
	for _, section := range m.gallery.Sections() {
		if d, ok := section.Widget.(*components.Dialog); ok && d.IsOpen() {
			return d, true
		}
	}
	return nil, false
}

func (m Model) renderContext() components.RenderContext {
	ctx := components.DefaultContext().WithTheme(m.theme).WithWidth(m.pageWidth())
	if m.overriding {
		ctx = ctx.WithVariantOverride(m.override)
	}
	return ctx
}

func (m Model) pageWidth() int {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return width
}

func isTextEntry(w components.Interactive) bool {
	switch w.(type) {
	case *components.Input, *components.Textarea:
		return true
	default:
		return false
	}
}
