package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic colour set with base, on-base, muted and contrast colours.
//
//   - Base: the primary background or brand colour
//   - OnBase: text colour that reads well on Base
//   - Muted: a subdued variant of Base for borders and helpers
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

func (cs ColourSet) pin(dark bool) ColourSet {
	return ColourSet{
		Base:     pinColour(cs.Base, dark),
		OnBase:   pinColour(cs.OnBase, dark),
		Muted:    pinColour(cs.Muted, dark),
		Contrast: pinColour(cs.Contrast, dark),
	}
}

func pinColour(c lipgloss.AdaptiveColor, dark bool) lipgloss.AdaptiveColor {
	if dark {
		return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
	}
	return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

func (p Palette) pin(dark bool) Palette {
	return Palette{
		Primary:   p.Primary.pin(dark),
		Secondary: p.Secondary.pin(dark),
		Surface:   p.Surface.pin(dark),
		Success:   p.Success.pin(dark),
		Warning:   p.Warning.pin(dark),
		Danger:    p.Danger.pin(dark),
		Info:      p.Info.pin(dark),
		Neutral:   p.Neutral.pin(dark),
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Hidden  lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
	Raised  lipgloss.Border
}

// SizeMetrics holds the spacing a Size maps to.
type SizeMetrics struct {
	PaddingX int
	PaddingY int
	Width    int
	Gap      int
}

type sizeTable [sizeCount]SizeMetrics

func defaultSizeTable() sizeTable {
	return sizeTable{
		SizeSmall:      {PaddingX: 1, PaddingY: 0, Width: 32, Gap: 0},
		SizeMedium:     {PaddingX: 2, PaddingY: 0, Width: 44, Gap: 1},
		SizeLarge:      {PaddingX: 3, PaddingY: 1, Width: 56, Gap: 1},
		SizeExtraLarge: {PaddingX: 4, PaddingY: 1, Width: 72, Gap: 2},
	}
}

// TypographyScale contains the text presets components share.
type TypographyScale struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Body        lipgloss.Style
	Label       lipgloss.Style
	Helper      lipgloss.Style
	Error       lipgloss.Style
	Code        lipgloss.Style
}

// VariantStyle is the bundle of style functions one Variant contributes.
// Frame wraps a component, Trigger styles its clickable face, Content its
// body text, Accent the focused or active element and Muted secondary text.
type VariantStyle struct {
	Frame   StyleFunc
	Trigger StyleFunc
	Content StyleFunc
	Accent  StyleFunc
	Muted   StyleFunc
}

// VariantRegistry maps variants to their styling bundles.
type VariantRegistry struct {
	styles map[Variant]VariantStyle
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{styles: make(map[Variant]VariantStyle)}
}

// Register adds or replaces the style bundle for a variant.
func (vr *VariantRegistry) Register(variant Variant, style VariantStyle) {
	vr.styles[variant] = style
}

// Get retrieves the bundle for a variant.
func (vr *VariantRegistry) Get(variant Variant) (VariantStyle, bool) {
	if vr == nil {
		return VariantStyle{}, false
	}
	style, ok := vr.styles[variant]
	return style, ok
}

// Theme represents an immutable styling theme for components.
// All modification helpers return new theme values.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Sizes      sizeTable
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Normalize fills fields a partially built theme left empty.
func (t Theme) Normalize() Theme {
	if t.Sizes == (sizeTable{}) {
		t.Sizes = defaultSizeTable()
	}
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
		registerVariants(t.Variants)
	}
	if t.Name == "" {
		t.Name = "auto"
	}
	return t
}

// Variant returns the style bundle for v, falling back to VariantDefault.
func (t Theme) Variant(v Variant) VariantStyle {
	if style, ok := t.Variants.Get(v); ok {
		return style
	}
	style, _ := t.Variants.Get(VariantDefault)
	return style
}

// Size returns the metrics for s, falling back to SizeMedium.
func (t Theme) Size(s Size) SizeMetrics {
	if s < 0 || int(s) >= sizeCount {
		s = SizeMedium
	}
	return t.Sizes[s]
}

func defaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#cbd5e1", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		Hidden:  lipgloss.HiddenBorder(),
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
		Raised: lipgloss.Border{
			Top:         "─",
			Bottom:      "▀",
			Left:        "│",
			Right:       "█",
			TopLeft:     "┌",
			TopRight:    "┐",
			BottomLeft:  "▝",
			BottomRight: "▀",
		},
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Title:       base.Bold(true),
		Description: base.Foreground(p.Neutral.Base),
		Body:        base,
		Label:       base.Bold(true),
		Helper:      base.Foreground(p.Neutral.Base).Italic(true),
		Error:       base.Foreground(p.Danger.Base),
		Code: base.
			Foreground(p.Secondary.Base).
			Background(p.Surface.Muted).
			Padding(0, 1),
	}
}

func newTheme(name string, palette Palette) Theme {
	theme := Theme{
		Name:       name,
		Palette:    palette,
		Borders:    defaultBorders(),
		Sizes:      defaultSizeTable(),
		Typography: defaultTypography(palette),
		Variants:   NewVariantRegistry(),
	}
	registerVariants(theme.Variants)
	return theme.Normalize()
}

// DefaultTheme returns a theme whose colours adapt to the terminal background.
func DefaultTheme() Theme {
	return newTheme("auto", defaultPalette())
}

// LightTheme pins every colour to its light-background value.
func LightTheme() Theme {
	return newTheme("light", defaultPalette().pin(false))
}

// DarkTheme pins every colour to its dark-background value.
func DarkTheme() Theme {
	return newTheme("dark", defaultPalette().pin(true))
}

// ThemeByName resolves "auto", "light" or "dark". Empty selects auto.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return DefaultTheme(), nil
	case "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// registerVariants populates the style bundle of every Variant.
func registerVariants(registry *VariantRegistry) {
	registry.Register(VariantDefault, VariantStyle{
		Frame:   compose(Border(func(b BorderSet) lipgloss.Border { return b.Rounded }), BorderColour(PaletteNeutral)),
		Trigger: compose(Background(PalettePrimary), Bold()),
		Content: BodyText(),
		Accent:  compose(Foreground(PalettePrimary), Bold()),
		Muted:   Foreground(PaletteNeutral),
	})
	registry.Register(VariantBordered, VariantStyle{
		Frame:   compose(Border(func(b BorderSet) lipgloss.Border { return b.Thick }), BorderColour(PalettePrimary)),
		Trigger: compose(Foreground(PalettePrimary), Bold()),
		Content: BodyText(),
		Accent:  compose(Foreground(PalettePrimary), Bold(), Underline()),
		Muted:   Foreground(PaletteNeutral),
	})
	registry.Register(VariantGhost, VariantStyle{
		Frame:   Border(func(b BorderSet) lipgloss.Border { return b.Hidden }),
		Trigger: Foreground(PalettePrimary),
		Content: BodyText(),
		Accent:  compose(Foreground(PalettePrimary), Underline()),
		Muted:   compose(Foreground(PaletteNeutral), Faint()),
	})
	registry.Register(VariantRetro, VariantStyle{
		Frame:   compose(Border(func(b BorderSet) lipgloss.Border { return b.Double }), BorderColour(PaletteWarning)),
		Trigger: compose(Background(PaletteWarning), Bold()),
		Content: Foreground(PaletteWarning),
		Accent:  compose(Background(PaletteWarning), Bold()),
		Muted:   Foreground(PaletteNeutral),
	})
	registry.Register(VariantModern, VariantStyle{
		Frame:   compose(Border(func(b BorderSet) lipgloss.Border { return b.Rounded }), BorderColour(PaletteSecondary)),
		Trigger: compose(Background(PaletteSecondary), Bold()),
		Content: BodyText(),
		Accent:  compose(Foreground(PaletteSecondary), Bold()),
		Muted:   compose(Foreground(PaletteNeutral), Italic()),
	})
	registry.Register(VariantGlass, VariantStyle{
		Frame:   compose(Border(func(b BorderSet) lipgloss.Border { return b.Rounded }), MutedBorderColour(PaletteNeutral), MutedBackground(PaletteSurface)),
		Trigger: compose(Foreground(PaletteInfo), Italic()),
		Content: compose(BodyText(), Faint()),
		Accent:  compose(Foreground(PaletteInfo), Bold()),
		Muted:   compose(Foreground(PaletteNeutral), Faint()),
	})
	registry.Register(VariantNeon, VariantStyle{
		Frame:   compose(Border(func(b BorderSet) lipgloss.Border { return b.Rounded }), BorderColour(PaletteInfo)),
		Trigger: compose(Foreground(PaletteInfo), Bold()),
		Content: Foreground(PaletteInfo),
		Accent:  compose(ContrastForeground(PaletteSecondary), Bold()),
		Muted:   Foreground(PaletteSecondary),
	})
	registry.Register(Variant3D, VariantStyle{
		Frame:   compose(Border(func(b BorderSet) lipgloss.Border { return b.Raised }), BorderColour(PalettePrimary)),
		Trigger: compose(Background(PalettePrimary), Bold()),
		Content: BodyText(),
		Accent:  compose(Background(PalettePrimary), Bold()),
		Muted:   Foreground(PaletteNeutral),
	})
}

// Background applies a semantic background colour and its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// MutedBackground applies the muted tone of a slot as background.
func MutedBackground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(slot(theme.Palette).Muted)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BodyText applies the readable text colour of the surface.
func BodyText() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Surface.OnBase)
	}
}

// ContrastForeground applies the contrast colour of a slot.
func ContrastForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Contrast)
	}
}

// Border applies a border picked from the theme's border set.
func Border(pick func(BorderSet) lipgloss.Border) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(pick(theme.Borders))
	}
}

// BorderColour tints the border with a slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// MutedBorderColour tints the border with a slot's muted colour.
func MutedBorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Muted)
	}
}

// Padding applies the padding of a Size.
func Padding(size Size) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		m := theme.Size(size)
		return base.Padding(m.PaddingY, m.PaddingX)
	}
}

// PaddingX applies only the horizontal padding of a Size.
func PaddingX(size Size) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		m := theme.Size(size)
		return base.PaddingLeft(m.PaddingX).PaddingRight(m.PaddingX)
	}
}

// Bold, Italic, Underline and Faint toggle text attributes.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Bold(true) }
}

func Italic() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Italic(true) }
}

func Underline() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Underline(true) }
}

func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Faint(true) }
}

func compose(funcs ...StyleFunc) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return NewCompositeStrategy(funcs...).Apply(base, theme)
	}
}
