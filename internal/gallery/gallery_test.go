package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/accordion"
	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

func parse(t *testing.T, doc string) *config.Manifest {
	t.Helper()
	m, err := config.Parse("test.yaml", []byte(doc))
	require.NoError(t, err)
	return m
}

func build(t *testing.T, doc string) *Gallery {
	t.Helper()
	g, err := Build(parse(t, doc), components.DarkTheme())
	require.NoError(t, err)
	return g
}

func ids(sections []Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.ID
	}
	return out
}

func TestBuildKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	g := build(t, `
version: "1.0"
name: Order
buttons:
  - {id: first, label: First}
accordions:
  - id: second
    items: [{title: A}]
`)
	assert.Equal(t, []string{"first", "second"}, ids(g.Sections()))
	assert.Equal(t, 2, g.Len())
}

func TestBuildAppliesManifestFallbacks(t *testing.T) {
	t.Parallel()

	g := build(t, `
version: "1.0"
name: Looks
variant: retro
size: lg
buttons:
  - {id: plain, label: Plain}
  - {id: loud, label: Loud, variant: neon, size: sm}
`)

	plain, ok := g.Section("plain")
	require.True(t, ok)
	button, ok := plain.Widget.(*components.Button)
	require.True(t, ok)
	assert.Equal(t, components.VariantRetro, button.Variant())
	assert.Equal(t, components.SizeLarge, button.Size())

	loud, ok := g.Section("loud")
	require.True(t, ok)
	button, ok = loud.Widget.(*components.Button)
	require.True(t, ok)
	assert.Equal(t, components.VariantNeon, button.Variant())
	assert.Equal(t, components.SizeSmall, button.Size())
}

func TestBuildAccordionGroups(t *testing.T) {
	t.Parallel()

	g := build(t, `
version: "1.0"
name: Accordions
accordions:
  - id: single
    items:
      - {title: A, default_open: true}
      - {title: B, default_open: true}
  - id: multi
    mode: multiple
    items:
      - {title: A, default_open: true}
      - {title: B}
      - {title: C, default_open: true}
`)

	tests := []struct {
		id   string
		mode accordion.Mode
		open []int
	}{
		{"single", accordion.ModeSingle, []int{0}},
		{"multi", accordion.ModeMultiple, []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			section, ok := g.Section(tt.id)
			require.True(t, ok)
			assert.Equal(t, config.KindAccordion, section.Kind)

			widget, ok := section.Widget.(*components.Accordion)
			require.True(t, ok)
			group := widget.Group()
			assert.Equal(t, tt.mode, group.Mode())
			assert.Equal(t, tt.open, group.OpenSet().Indices())
		})
	}
}

func TestFocusableSections(t *testing.T) {
	t.Parallel()

	g := build(t, `
version: "1.0"
name: Focus
alerts:
  - {id: static, title: Static}
  - {id: closable, title: Closable, closable: true}
cards:
  - {id: bare, title: Bare}
  - {id: offer, title: Offer, action: Buy}
skeletons:
  - {id: placeholder}
checkboxes:
  - {id: agree, label: Agree}
`)

	assert.Equal(t, []string{"closable", "offer", "agree"}, ids(g.Focusable()))

	offer, ok := g.Section("offer")
	require.True(t, ok)
	target, ok := offer.Focusable()
	require.True(t, ok)
	button, ok := target.(*components.Button)
	require.True(t, ok)
	assert.Equal(t, "Buy", button.Label())

	placeholder, ok := g.Section("placeholder")
	require.True(t, ok)
	_, ok = placeholder.Focusable()
	assert.False(t, ok)
}

func TestRenderIncludesEverySection(t *testing.T) {
	t.Parallel()

	g := build(t, `
version: "1.0"
name: Rendered Page
description: A short page
accordions:
  - id: faq
    title: Questions
    items:
      - {title: Why, content: Because, default_open: true}
      - {title: How, content: Hidden answer}
buttons:
  - {id: go, label: Launch}
selects:
  - {id: pick, options: [One, Two]}
`)

	ctx := components.DefaultContext().WithTheme(g.Theme).WithWidth(60)
	out := g.Render(ctx)

	assert.Contains(t, out, "Rendered Page")
	assert.Contains(t, out, "A short page")
	assert.Contains(t, out, "accordion · Questions")
	assert.Contains(t, out, "Because")
	assert.NotContains(t, out, "Hidden answer")
	assert.Contains(t, out, "Launch")
	assert.Contains(t, out, "Select an option")
	assert.Equal(t, out, g.Render(ctx))
}

func TestBuildRejectsNilManifest(t *testing.T) {
	t.Parallel()

	_, err := Build(nil, components.DefaultTheme())
	require.Error(t, err)
}

func TestBuildRejectsBadLookInCodeBuiltManifest(t *testing.T) {
	t.Parallel()

	m := &config.Manifest{
		Version: "1.0",
		Name:    "Unvalidated",
		Buttons: []config.ButtonSpec{{ID: "b", Label: "B", Look: config.Look{Variant: "sparkly"}}},
	}
	_, err := Build(m, components.DefaultTheme())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkly")
}

func TestDemoManifestBuilds(t *testing.T) {
	t.Parallel()

	m, err := DemoManifest()
	require.NoError(t, err)

	g, err := Build(m, components.DarkTheme())
	require.NoError(t, err)

	kinds := make(map[config.Kind]bool)
	for _, section := range g.Sections() {
		kinds[section.Kind] = true
	}
	for _, kind := range []config.Kind{
		config.KindAccordion, config.KindButton, config.KindAlert, config.KindCard,
		config.KindCheckbox, config.KindSlider, config.KindSelect, config.KindInput,
		config.KindTooltip, config.KindPopover, config.KindSkeleton, config.KindDialog,
	} {
		assert.True(t, kinds[kind], "demo is missing %s", kind)
	}

	assert.NotNil(t, g.Init())
	assert.NotEmpty(t, g.Render(components.DefaultContext().WithTheme(g.Theme)))
}
