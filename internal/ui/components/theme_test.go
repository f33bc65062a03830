package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseVariant(" NEON ")
	require.NoError(t, err)
	assert.Equal(t, VariantNeon, got)

	got, err = ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantDefault, got)

	_, err = ParseVariant("glossy")
	assert.Error(t, err)
}

func TestVariantNextWraps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, VariantBordered, VariantDefault.Next())
	assert.Equal(t, VariantDefault, Variant3D.Next())
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	cases := map[string]Size{"sm": SizeSmall, "md": SizeMedium, "lg": SizeLarge, "xl": SizeExtraLarge, "": SizeMedium}
	for input, want := range cases {
		got, err := ParseSize(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSize("huge")
	assert.Error(t, err)
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "auto", "light", "dark"} {
		theme, err := ThemeByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, theme.Variants)
	}

	dark, err := ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", dark.Name)
	assert.Equal(t, dark.Palette.Primary.Base.Dark, dark.Palette.Primary.Base.Light)

	_, err = ThemeByName("sepia")
	assert.Error(t, err)
}

func TestEveryVariantIsRegistered(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, v := range Variants() {
		style, ok := theme.Variants.Get(v)
		require.True(t, ok, v.String())
		assert.NotNil(t, style.Frame, v.String())
		assert.NotNil(t, style.Trigger, v.String())
	}
}

func TestThemeSizeFallsBackToMedium(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, theme.Size(SizeMedium), theme.Size(Size(42)))
	assert.Less(t, theme.Size(SizeSmall).Width, theme.Size(SizeExtraLarge).Width)
}

func TestNormalizeFillsEmptyTheme(t *testing.T) {
	t.Parallel()

	theme := Theme{}.Normalize()
	assert.NotNil(t, theme.Variants)
	assert.Equal(t, defaultSizeTable(), theme.Sizes)
}

func TestContextVariantOverride(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	assert.Equal(t, VariantGhost, ctx.Resolve(VariantGhost))

	ctx = ctx.WithVariantOverride(VariantRetro)
	assert.Equal(t, VariantRetro, ctx.Resolve(VariantGhost))

	_, overridden := ctx.WithoutVariantOverride().Override()
	assert.False(t, overridden)
}
