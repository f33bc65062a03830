package components

import (
	"fmt"
	"strings"
)

// Variant selects one of the visual treatments every component supports.
type Variant int

const (
	VariantDefault Variant = iota
	VariantBordered
	VariantGhost
	VariantRetro
	VariantModern
	VariantGlass
	VariantNeon
	Variant3D
)

var variantNames = [...]string{
	VariantDefault:  "default",
	VariantBordered: "bordered",
	VariantGhost:    "ghost",
	VariantRetro:    "retro",
	VariantModern:   "modern",
	VariantGlass:    "glass",
	VariantNeon:     "neon",
	Variant3D:       "3d",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Next returns the variant after v, wrapping around.
func (v Variant) Next() Variant {
	return Variant((int(v) + 1) % len(variantNames))
}

// ParseVariant resolves a manifest spelling. Empty selects VariantDefault.
func ParseVariant(value string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return VariantDefault, nil
	}
	for i, candidate := range variantNames {
		if candidate == name {
			return Variant(i), nil
		}
	}
	return VariantDefault, fmt.Errorf("unknown variant %q", value)
}

// Size scales padding and width of a component.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

const sizeCount = int(SizeExtraLarge) + 1

var sizeNames = [sizeCount]string{"sm", "md", "lg", "xl"}

func (s Size) String() string {
	if s < 0 || int(s) >= sizeCount {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

// ParseSize resolves sm, md, lg or xl. Empty selects SizeMedium.
func ParseSize(value string) (Size, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return SizeMedium, nil
	}
	for i, candidate := range sizeNames {
		if candidate == name {
			return Size(i), nil
		}
	}
	return SizeMedium, fmt.Errorf("unknown size %q", value)
}

// Tone is the semantic colour of an alert.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
)

// ParseTone resolves info, success, warning or error. Empty selects ToneInfo.
func ParseTone(value string) (Tone, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return ToneInfo, nil
	case "success":
		return ToneSuccess, nil
	case "warning":
		return ToneWarning, nil
	case "error", "destructive":
		return ToneError, nil
	default:
		return ToneInfo, fmt.Errorf("unknown tone %q", value)
	}
}

func (t Tone) icon() string {
	switch t {
	case ToneSuccess:
		return "✓"
	case ToneWarning:
		return "⚠"
	case ToneError:
		return "✗"
	default:
		return "ℹ"
	}
}

func (t Tone) slot() PaletteSlot {
	switch t {
	case ToneSuccess:
		return PaletteSuccess
	case ToneWarning:
		return PaletteWarning
	case ToneError:
		return PaletteDanger
	default:
		return PaletteInfo
	}
}
