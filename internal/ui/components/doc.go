// Package components provides prism's theme-aware terminal components.
//
// # Overview
//
// Components are built on lipgloss for rendering and bubbletea for input.
// Each one renders to a string, takes its colours and borders from a Theme,
// and supports every Variant (default, bordered, ghost, retro, modern,
// glass, neon, 3d) and Size (sm, md, lg, xl).
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := component.ViewWithContext(ctx)
//
// View() renders with DefaultContext. A theme's VariantRegistry maps each
// Variant to a VariantStyle bundle (Frame, Trigger, Content, Accent, Muted)
// of StyleFunc values, so a variant is data rather than code.
//
// # Components
//
// Layout: Text, Stack (VStack, HStack), Divider, Badge.
//
// Static: Card, Skeleton.
//
// Interactive (implement Interactive): Button, Alert, Dialog, Accordion,
// Tooltip, Popover, Checkbox, Slider, Select, Input, Textarea.
//
// Interactive components are driven by calling Update with bubbletea
// messages while focused. They report state changes as messages such as
// ToggledMsg or SelectedMsg, which a parent model can log or react to.
//
// # Accordion
//
// Accordion is the view over an accordion.Group. The group decides which
// items are expanded; the view adds a cursor and a spring-driven reveal:
//
//	faq := components.NewAccordion([]accordion.Item{
//		{Title: "Shipping", Content: "Two to five days.", DefaultOpen: true},
//		{Title: "Returns", Content: "Thirty days."},
//	}, accordion.ModeSingle).WithVariant(components.VariantRetro)
package components
