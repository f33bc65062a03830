package gallery

import (
	"fmt"

	"github.com/alexisbeaulieu97/prism/internal/accordion"
	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// look is a resolved variant and size pair.
type look struct {
	variant components.Variant
	size    components.Size
}

func defaultLook(m *config.Manifest) (look, error) {
	l := look{variant: components.VariantDefault, size: components.SizeMedium}
	return l.merge(config.Look{Variant: m.Variant, Size: m.Size})
}

// merge overlays the non-empty fields of spec onto l.
func (l look) merge(spec config.Look) (look, error) {
	if spec.Variant != "" {
		v, err := components.ParseVariant(spec.Variant)
		if err != nil {
			return l, err
		}
		l.variant = v
	}
	if spec.Size != "" {
		s, err := components.ParseSize(spec.Size)
		if err != nil {
			return l, err
		}
		l.size = s
	}
	return l, nil
}

type builder struct {
	defaults look
}

func (b builder) sections(m *config.Manifest, kind config.Kind) ([]Section, error) {
	var out []Section
	add := func(section Section, err error) error {
		if err != nil {
			return fmt.Errorf("%s %q: %w", kind, section.ID, err)
		}
		out = append(out, section)
		return nil
	}

	var err error
	switch kind {
	case config.KindAccordion:
		for _, spec := range m.Accordions {
			if err = add(b.accordion(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindButton:
		for _, spec := range m.Buttons {
			if err = add(b.button(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindAlert:
		for _, spec := range m.Alerts {
			if err = add(b.alert(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindCard:
		for _, spec := range m.Cards {
			if err = add(b.card(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindCheckbox:
		for _, spec := range m.Checkboxes {
			if err = add(b.checkbox(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindSlider:
		for _, spec := range m.Sliders {
			if err = add(b.slider(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindSelect:
		for _, spec := range m.Selects {
			if err = add(b.selectBox(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindInput:
		for _, spec := range m.Inputs {
			if err = add(b.input(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindTooltip:
		for _, spec := range m.Tooltips {
			if err = add(b.tooltip(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindPopover:
		for _, spec := range m.Popovers {
			if err = add(b.popover(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindSkeleton:
		for _, spec := range m.Skeletons {
			if err = add(b.skeleton(spec)); err != nil {
				return nil, err
			}
		}
	case config.KindDialog:
		for _, spec := range m.Dialogs {
			if err = add(b.dialog(spec)); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("unknown component kind %q", kind)
	}
	return out, nil
}

func (b builder) accordion(spec config.AccordionSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindAccordion, Title: spec.Title}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	mode, err := accordion.ParseMode(spec.Mode)
	if err != nil {
		return section, err
	}

	items := make([]accordion.Item, len(spec.Items))
	for i, item := range spec.Items {
		items[i] = accordion.Item{Title: item.Title, Content: item.Content, DefaultOpen: item.DefaultOpen}
	}

	widget := components.NewAccordion(items, mode).WithID(spec.ID).WithVariant(l.variant).WithSize(l.size)
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) button(spec config.ButtonSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindButton, Title: spec.Label}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	widget := components.NewButton(spec.Label).
		WithID(spec.ID).
		WithIcon(spec.Icon).
		WithLoading(spec.Loading).
		WithDisabled(spec.Disabled).
		WithVariant(l.variant).
		WithSize(l.size)
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) alert(spec config.AlertSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindAlert, Title: spec.Title}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	tone, err := components.ParseTone(spec.Tone)
	if err != nil {
		return section, err
	}
	widget := components.NewAlert(spec.Title).
		WithID(spec.ID).
		WithDescription(spec.Description).
		WithTone(tone).
		WithClosable(spec.Closable).
		WithVariant(l.variant).
		WithSize(l.size)
	section.Widget = widget
	if spec.Closable {
		section.target = widget
	}
	return section, nil
}

func (b builder) card(spec config.CardSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindCard, Title: spec.Title}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	widget := components.NewCard(spec.Title).
		WithDescription(spec.Description).
		WithVariant(l.variant).
		WithSize(l.size)
	if spec.Body != "" {
		widget.WithBody(components.NewText(spec.Body))
	}
	if spec.Action != "" {
		action := components.NewButton(spec.Action).WithID(spec.ID + "-action").WithVariant(l.variant).WithSize(components.SizeSmall)
		widget.WithAction(action)
		section.target = action
	}
	section.Widget = widget
	return section, nil
}

func (b builder) checkbox(spec config.CheckboxSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindCheckbox, Title: spec.Label}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	widget := components.NewCheckbox(spec.Label).
		WithID(spec.ID).
		WithHelper(spec.Helper).
		WithError(spec.Error).
		WithChecked(spec.Checked).
		WithDisabled(spec.Disabled).
		WithVariant(l.variant).
		WithSize(l.size)
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) slider(spec config.SliderSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindSlider, Title: spec.Label}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	widget := components.NewSlider(spec.Label).
		WithID(spec.ID).
		WithRange(spec.Min, spec.Max, spec.Step).
		WithValue(spec.Value).
		WithShowValue(spec.ShowValue).
		WithVariant(l.variant).
		WithSize(l.size)
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) selectBox(spec config.SelectSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindSelect, Title: spec.Label}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	widget := components.NewSelect(spec.Label, spec.Options...).
		WithID(spec.ID).
		WithVariant(l.variant).
		WithSize(l.size)
	if spec.Placeholder != "" {
		widget.WithPlaceholder(spec.Placeholder)
	}
	if spec.Default != "" {
		widget.WithSelected(spec.Default)
	}
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) input(spec config.InputSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindInput, Title: spec.Label}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	if spec.Multiline {
		widget := components.NewTextarea(spec.Label).
			WithPlaceholder(spec.Placeholder).
			WithHelper(spec.Helper).
			WithError(spec.Error).
			WithVariant(l.variant).
			WithSize(l.size)
		section.Widget = widget
		section.target = widget
		return section, nil
	}
	widget := components.NewInput(spec.Label).
		WithPlaceholder(spec.Placeholder).
		WithHelper(spec.Helper).
		WithError(spec.Error).
		WithVariant(l.variant).
		WithSize(l.size)
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) tooltip(spec config.TooltipSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindTooltip, Title: spec.Anchor}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	side, err := components.ParseSide(spec.Side)
	if err != nil {
		return section, err
	}
	widget := components.NewTooltip(spec.Anchor, spec.Content).
		WithSide(side).
		WithVariant(l.variant)
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) popover(spec config.PopoverSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindPopover, Title: spec.Trigger}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	widget := components.NewPopover(spec.Trigger, components.NewText(spec.Content)).
		WithID(spec.ID).
		WithVariant(l.variant)
	section.Widget = widget
	section.target = widget
	return section, nil
}

func (b builder) skeleton(spec config.SkeletonSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindSkeleton}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	shape, err := components.ParseShape(spec.Shape)
	if err != nil {
		return section, err
	}
	section.Title = shape.String()
	widget := components.NewSkeleton(shape).WithVariant(l.variant).WithSize(l.size)
	if spec.Lines > 0 {
		widget.WithLines(spec.Lines)
	}
	if spec.Rows > 0 || spec.Columns > 0 {
		rows, columns := spec.Rows, spec.Columns
		if rows == 0 {
			rows = 3
		}
		if columns == 0 {
			columns = 3
		}
		widget.WithGrid(rows, columns)
	}
	section.Widget = widget
	return section, nil
}

func (b builder) dialog(spec config.DialogSpec) (Section, error) {
	section := Section{ID: spec.ID, Kind: config.KindDialog, Title: spec.Title}
	l, err := b.defaults.merge(spec.Look)
	if err != nil {
		return section, err
	}
	widget := components.NewDialog(spec.Title).
		WithID(spec.ID).
		WithDescription(spec.Description).
		WithCloseOnEscape(spec.CloseOnEscape).
		WithVariant(l.variant).
		WithSize(l.size)
	if spec.Body != "" {
		widget.WithBody(components.NewText(spec.Body))
	}
	if spec.Trigger != "" {
		widget.WithTrigger(spec.Trigger)
	}
	section.Widget = widget
	section.target = widget
	return section, nil
}
