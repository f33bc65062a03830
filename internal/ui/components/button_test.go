package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonPressEmitsMessage(t *testing.T) {
	t.Parallel()

	button := NewButton("Save").WithID("save")
	assert.Nil(t, button.Update(keyEnter), "unfocused buttons ignore keys")

	button.Focus()
	pressed, ok := firstOf[PressedMsg](messages(button.Update(keyEnter)))
	require.True(t, ok)
	assert.Equal(t, "save", pressed.ID)
}

func TestButtonLoadingDisablesActivation(t *testing.T) {
	t.Parallel()

	button := NewButton("Deploy").WithLoading(true)
	button.Focus()

	assert.True(t, button.Disabled())
	assert.NotNil(t, button.Init())
	assert.Nil(t, button.Update(keyEnter))

	assert.Nil(t, button.SetLoading(false))
	assert.False(t, button.Disabled())
}

func TestButtonViewShowsIconAndLabel(t *testing.T) {
	t.Parallel()

	view := NewButton("Launch").WithIcon("🚀").WithVariant(Variant3D).View()
	assert.Contains(t, view, "🚀 Launch")
}

func TestDisabledButtonIgnoresKeys(t *testing.T) {
	t.Parallel()

	button := NewButton("Nope").WithDisabled(true)
	button.Focus()
	assert.Nil(t, button.Update(keySpace))
}
