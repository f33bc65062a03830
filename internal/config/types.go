package config

import (
	"gopkg.in/yaml.v3"
)

// Kind names a component section in a manifest.
type Kind string

const (
	KindAccordion Kind = "accordion"
	KindButton    Kind = "button"
	KindAlert     Kind = "alert"
	KindCard      Kind = "card"
	KindCheckbox  Kind = "checkbox"
	KindSlider    Kind = "slider"
	KindSelect    Kind = "select"
	KindInput     Kind = "input"
	KindTooltip   Kind = "tooltip"
	KindPopover   Kind = "popover"
	KindSkeleton  Kind = "skeleton"
	KindDialog    Kind = "dialog"
)

// sectionKeys maps top-level manifest keys to the kind they hold, in the
// order used when a manifest is built in code rather than decoded.
var sectionKeys = []struct {
	key  string
	kind Kind
}{
	{"accordions", KindAccordion},
	{"buttons", KindButton},
	{"alerts", KindAlert},
	{"cards", KindCard},
	{"checkboxes", KindCheckbox},
	{"sliders", KindSlider},
	{"selects", KindSelect},
	{"inputs", KindInput},
	{"tooltips", KindTooltip},
	{"popovers", KindPopover},
	{"skeletons", KindSkeleton},
	{"dialogs", KindDialog},
}

// Manifest is a gallery document: global defaults plus component lists.
type Manifest struct {
	Version     string `yaml:"version" validate:"required,semver"`
	Name        string `yaml:"name" validate:"required,min=1,max=100"`
	Description string `yaml:"description,omitempty"`
	Theme       string `yaml:"theme,omitempty" validate:"omitempty,oneof=auto light dark"`
	Variant     string `yaml:"variant,omitempty" validate:"omitempty,variant"`
	Size        string `yaml:"size,omitempty" validate:"omitempty,size"`

	Accordions []AccordionSpec `yaml:"accordions,omitempty" validate:"omitempty,dive"`
	Buttons    []ButtonSpec    `yaml:"buttons,omitempty" validate:"omitempty,dive"`
	Alerts     []AlertSpec     `yaml:"alerts,omitempty" validate:"omitempty,dive"`
	Cards      []CardSpec      `yaml:"cards,omitempty" validate:"omitempty,dive"`
	Checkboxes []CheckboxSpec  `yaml:"checkboxes,omitempty" validate:"omitempty,dive"`
	Sliders    []SliderSpec    `yaml:"sliders,omitempty" validate:"omitempty,dive"`
	Selects    []SelectSpec    `yaml:"selects,omitempty" validate:"omitempty,dive"`
	Inputs     []InputSpec     `yaml:"inputs,omitempty" validate:"omitempty,dive"`
	Tooltips   []TooltipSpec   `yaml:"tooltips,omitempty" validate:"omitempty,dive"`
	Popovers   []PopoverSpec   `yaml:"popovers,omitempty" validate:"omitempty,dive"`
	Skeletons  []SkeletonSpec  `yaml:"skeletons,omitempty" validate:"omitempty,dive"`
	Dialogs    []DialogSpec    `yaml:"dialogs,omitempty" validate:"omitempty,dive"`

	order []Kind
}

// UnmarshalYAML decodes the manifest and remembers the order its sections appear in.
func (m *Manifest) UnmarshalYAML(value *yaml.Node) error {
	type plain Manifest
	if err := value.Decode((*plain)(m)); err != nil {
		return err
	}

	m.order = m.order[:0]
	for i := 0; i+1 < len(value.Content); i += 2 {
		for _, section := range sectionKeys {
			if value.Content[i].Value == section.key {
				m.order = append(m.order, section.kind)
			}
		}
	}
	return nil
}

// Kinds returns the component kinds present in the manifest, in document order.
func (m *Manifest) Kinds() []Kind {
	if len(m.order) > 0 {
		return append([]Kind(nil), m.order...)
	}
	var kinds []Kind
	for _, section := range sectionKeys {
		if m.count(section.kind) > 0 {
			kinds = append(kinds, section.kind)
		}
	}
	return kinds
}

func (m *Manifest) count(kind Kind) int {
	switch kind {
	case KindAccordion:
		return len(m.Accordions)
	case KindButton:
		return len(m.Buttons)
	case KindAlert:
		return len(m.Alerts)
	case KindCard:
		return len(m.Cards)
	case KindCheckbox:
		return len(m.Checkboxes)
	case KindSlider:
		return len(m.Sliders)
	case KindSelect:
		return len(m.Selects)
	case KindInput:
		return len(m.Inputs)
	case KindTooltip:
		return len(m.Tooltips)
	case KindPopover:
		return len(m.Popovers)
	case KindSkeleton:
		return len(m.Skeletons)
	case KindDialog:
		return len(m.Dialogs)
	default:
		return 0
	}
}

// Look holds the per-component variant and size; empty values fall back to
// the manifest defaults.
type Look struct {
	Variant string `yaml:"variant,omitempty" validate:"omitempty,variant"`
	Size    string `yaml:"size,omitempty" validate:"omitempty,size"`
}

// AccordionSpec describes an expand/collapse group.
type AccordionSpec struct {
	ID    string     `yaml:"id" validate:"required,component_id"`
	Title string     `yaml:"title,omitempty"`
	Mode  string     `yaml:"mode,omitempty" validate:"omitempty,mode"`
	Items []ItemSpec `yaml:"items" validate:"required,min=1,dive"`
	Look  `yaml:",inline"`
}

// ItemSpec is one accordion section.
type ItemSpec struct {
	Title       string `yaml:"title" validate:"required"`
	Content     string `yaml:"content,omitempty"`
	DefaultOpen bool   `yaml:"default_open,omitempty"`
}

// ButtonSpec describes a button.
type ButtonSpec struct {
	ID       string `yaml:"id" validate:"required,component_id"`
	Label    string `yaml:"label" validate:"required"`
	Icon     string `yaml:"icon,omitempty"`
	Loading  bool   `yaml:"loading,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Look     `yaml:",inline"`
}

// AlertSpec describes an alert.
type AlertSpec struct {
	ID          string `yaml:"id" validate:"required,component_id"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Tone        string `yaml:"tone,omitempty" validate:"omitempty,oneof=info success warning error destructive"`
	Closable    bool   `yaml:"closable,omitempty"`
	Look        `yaml:",inline"`
}

// CardSpec describes a card.
type CardSpec struct {
	ID          string `yaml:"id" validate:"required,component_id"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Body        string `yaml:"body,omitempty"`
	Action      string `yaml:"action,omitempty"`
	Look        `yaml:",inline"`
}

// CheckboxSpec describes a checkbox.
type CheckboxSpec struct {
	ID       string `yaml:"id" validate:"required,component_id"`
	Label    string `yaml:"label" validate:"required"`
	Helper   string `yaml:"helper,omitempty"`
	Error    string `yaml:"error,omitempty"`
	Checked  bool   `yaml:"checked,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Look     `yaml:",inline"`
}

// SliderSpec describes a slider. Max defaults to 100, Step to 1 and
// ShowValue to true.
type SliderSpec struct {
	ID        string  `yaml:"id" validate:"required,component_id"`
	Label     string  `yaml:"label" validate:"required"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Step      float64 `yaml:"step"`
	Value     float64 `yaml:"value"`
	ShowValue bool    `yaml:"show_value"`
	Look      `yaml:",inline"`
}

// UnmarshalYAML applies slider defaults before decoding.
func (s *SliderSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain SliderSpec
	decoded := plain{Max: 100, Step: 1, ShowValue: true}
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*s = SliderSpec(decoded)
	return nil
}

// SelectSpec describes a select.
type SelectSpec struct {
	ID          string   `yaml:"id" validate:"required,component_id"`
	Label       string   `yaml:"label,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Options     []string `yaml:"options" validate:"required,min=1,dive,required"`
	Default     string   `yaml:"default,omitempty"`
	Look        `yaml:",inline"`
}

// InputSpec describes a single or multi-line text field.
type InputSpec struct {
	ID          string `yaml:"id" validate:"required,component_id"`
	Label       string `yaml:"label,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Helper      string `yaml:"helper,omitempty"`
	Error       string `yaml:"error,omitempty"`
	Multiline   bool   `yaml:"multiline,omitempty"`
	Look        `yaml:",inline"`
}

// TooltipSpec describes a tooltip.
type TooltipSpec struct {
	ID      string `yaml:"id" validate:"required,component_id"`
	Anchor  string `yaml:"anchor" validate:"required"`
	Content string `yaml:"content" validate:"required"`
	Side    string `yaml:"side,omitempty" validate:"omitempty,oneof=top right bottom left"`
	Look    `yaml:",inline"`
}

// PopoverSpec describes a popover.
type PopoverSpec struct {
	ID      string `yaml:"id" validate:"required,component_id"`
	Trigger string `yaml:"trigger" validate:"required"`
	Content string `yaml:"content" validate:"required"`
	Look    `yaml:",inline"`
}

// SkeletonSpec describes a loading placeholder.
type SkeletonSpec struct {
	ID      string `yaml:"id" validate:"required,component_id"`
	Shape   string `yaml:"shape,omitempty" validate:"omitempty,oneof=rectangle rounded pill circle lines card table"`
	Lines   int    `yaml:"lines,omitempty" validate:"omitempty,min=1,max=50"`
	Rows    int    `yaml:"rows,omitempty" validate:"omitempty,min=1,max=50"`
	Columns int    `yaml:"columns,omitempty" validate:"omitempty,min=1,max=12"`
	Look    `yaml:",inline"`
}

// DialogSpec describes a dialog. CloseOnEscape defaults to true.
type DialogSpec struct {
	ID            string `yaml:"id" validate:"required,component_id"`
	Title         string `yaml:"title" validate:"required"`
	Description   string `yaml:"description,omitempty"`
	Body          string `yaml:"body,omitempty"`
	Trigger       string `yaml:"trigger,omitempty"`
	CloseOnEscape bool   `yaml:"close_on_escape"`
	Look          `yaml:",inline"`
}

// UnmarshalYAML applies dialog defaults before decoding.
func (d *DialogSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain DialogSpec
	decoded := plain{CloseOnEscape: true}
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*d = DialogSpec(decoded)
	return nil
}
