package components

// Badge is a small inline label, used for section tags such as a variant or mode.
type Badge struct {
	BaseComponent
	text string
	slot PaletteSlot
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		slot:          PaletteNeutral,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := Background(b.slot)(b.ComputeStyle(ctx.Theme), ctx.Theme).Padding(0, 1)
	return style.Render(b.text)
}

// WithSlot sets the palette slot the badge is filled with.
func (b *Badge) WithSlot(slot PaletteSlot) *Badge {
	if slot != nil {
		b.slot = slot
	}
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// ToneBadge creates a badge coloured after an alert tone.
func ToneBadge(text string, tone Tone) *Badge {
	return NewBadge(text).WithSlot(tone.slot())
}

// PrimaryBadge creates a badge in the primary colour.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PalettePrimary)
}
