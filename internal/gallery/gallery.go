// Package gallery turns a validated manifest into ready-to-render components.
package gallery

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// Section is one component placed on the gallery page.
type Section struct {
	ID     string
	Kind   config.Kind
	Title  string
	Widget components.ContextualRenderable

	target components.Interactive
}

// Focusable returns the widget that takes keyboard focus for the section.
// Cards expose their action button; static sections return false.
func (s Section) Focusable() (components.Interactive, bool) {
	return s.target, s.target != nil
}

// Gallery is the ordered set of sections described by a manifest.
type Gallery struct {
	Name        string
	Description string
	Theme       components.Theme

	sections []Section
	index    map[string]int
}

// Build creates widgets for every component in m. Sections follow the order
// the manifest declares its component lists in.
func Build(m *config.Manifest, theme components.Theme) (*Gallery, error) {
	if m == nil {
		return nil, fmt.Errorf("build gallery: manifest is nil")
	}

	defaults, err := defaultLook(m)
	if err != nil {
		return nil, fmt.Errorf("build gallery: %w", err)
	}

	g := &Gallery{
		Name:        m.Name,
		Description: m.Description,
		Theme:       theme.Normalize(),
		index:       make(map[string]int),
	}

	b := builder{defaults: defaults}
	for _, kind := range m.Kinds() {
		sections, err := b.sections(m, kind)
		if err != nil {
			return nil, fmt.Errorf("build gallery: %w", err)
		}
		for _, section := range sections {
			g.index[section.ID] = len(g.sections)
			g.sections = append(g.sections, section)
		}
	}

	return g, nil
}

// Sections returns every section in page order.
func (g *Gallery) Sections() []Section {
	return append([]Section(nil), g.sections...)
}

// Section looks a section up by component id.
func (g *Gallery) Section(id string) (Section, bool) {
	i, ok := g.index[id]
	if !ok {
		return Section{}, false
	}
	return g.sections[i], true
}

// Len returns the number of sections.
func (g *Gallery) Len() int {
	return len(g.sections)
}

// Focusable returns the sections that can take keyboard focus, in page order.
func (g *Gallery) Focusable() []Section {
	var out []Section
	for _, section := range g.sections {
		if section.target != nil {
			out = append(out, section)
		}
	}
	return out
}

// Init collects the start-up commands of widgets that animate on their own,
// such as loading buttons and pulsing skeletons.
func (g *Gallery) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, section := range g.sections {
		if initer, ok := section.Widget.(interface{ Init() tea.Cmd }); ok {
			cmds = append(cmds, initer.Init())
		}
		if card, ok := section.Widget.(*components.Card); ok && card.Action() != nil {
			cmds = append(cmds, card.Action().Init())
		}
	}
	return tea.Batch(cmds...)
}

// Broadcast delivers a non-key message to every widget. Widgets ignore
// frames, ticks and pulses addressed to someone else.
func (g *Gallery) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, section := range g.sections {
		if updater, ok := section.Widget.(interface{ Update(tea.Msg) tea.Cmd }); ok {
			cmds = append(cmds, updater.Update(msg))
		}
		if card, ok := section.Widget.(*components.Card); ok && card.Action() != nil {
			cmds = append(cmds, card.Action().Update(msg))
		}
	}
	return tea.Batch(cmds...)
}

// Render draws the whole page with ctx.
func (g *Gallery) Render(ctx components.RenderContext) string {
	theme := ctx.Theme.Normalize()
	heading := components.TitleText(g.Name).ViewWithContext(ctx)
	parts := []string{heading}
	if strings.TrimSpace(g.Description) != "" {
		parts = append(parts, components.DescriptionText(g.Description).ViewWithContext(ctx))
	}

	for _, section := range g.sections {
		parts = append(parts, "", g.renderSection(ctx, theme, section))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderSection draws a single section with its label.
func (g *Gallery) RenderSection(ctx components.RenderContext, section Section) string {
	return g.renderSection(ctx, ctx.Theme.Normalize(), section)
}

func (g *Gallery) renderSection(ctx components.RenderContext, theme components.Theme, section Section) string {
	label := theme.Typography.Label.Render(sectionLabel(section))
	return lipgloss.JoinVertical(lipgloss.Left, label, section.Widget.ViewWithContext(ctx))
}

func sectionLabel(section Section) string {
	if section.Title != "" && section.Title != section.ID {
		return fmt.Sprintf("%s · %s", section.Kind, section.Title)
	}
	return fmt.Sprintf("%s · %s", section.Kind, section.ID)
}
