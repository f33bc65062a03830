package components

import (
	"testing"

	"github.com/alexisbeaulieu97/prism/internal/accordion"
	"github.com/alexisbeaulieu97/prism/internal/ui/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faqItems() []accordion.Item {
	return []accordion.Item{
		{Title: "Shipping", Content: "Two to five days.", DefaultOpen: true},
		{Title: "Returns", Content: "Thirty days."},
		{Title: "Support", Content: NewText("Write to us.")},
	}
}

func TestAccordionRendersChevronsAndOpenContent(t *testing.T) {
	t.Parallel()

	view := NewAccordion(faqItems(), accordion.ModeSingle).View()

	assert.Contains(t, view, chevronOpen+" Shipping")
	assert.Contains(t, view, chevronClosed+" Returns")
	assert.Contains(t, view, "Two to five days.")
	assert.NotContains(t, view, "Thirty days.")
}

func TestAccordionIgnoresKeysWithoutFocus(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeSingle)
	assert.Nil(t, acc.Update(keyEnter))
	assert.Equal(t, []int{0}, acc.Group().OpenSet().Indices())
}

func TestAccordionKeyboardToggle(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeSingle).WithID("faq")
	acc.Focus()

	acc.Update(keyDown)
	require.Equal(t, 1, acc.Cursor())

	cmd := acc.Update(keySpace)
	require.NotNil(t, cmd)

	toggled, ok := firstOf[ToggledMsg](messages(cmd))
	require.True(t, ok)
	assert.Equal(t, ToggledMsg{ID: "faq", Index: 1, Open: true}, toggled)
	assert.Equal(t, []int{1}, acc.Group().OpenSet().Indices())

	acc.Update(keyEnter)
	assert.True(t, acc.Group().OpenSet().Empty())
}

func TestAccordionCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeMultiple)
	acc.Focus()

	acc.Update(keyUp)
	assert.Equal(t, 0, acc.Cursor())
	for i := 0; i < 5; i++ {
		acc.Update(keyDown)
	}
	assert.Equal(t, 2, acc.Cursor())
}

func TestAccordionMultipleModeKeepsOthersOpen(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeMultiple)
	_, err := acc.Toggle(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, acc.Group().OpenSet().Indices())

	acc.Settle()
	view := acc.View()
	assert.Contains(t, view, "Two to five days.")
	assert.Contains(t, view, "Write to us.")
}

func TestAccordionToggleOutOfRange(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeSingle)
	_, err := acc.Toggle(7)
	assert.ErrorIs(t, err, accordion.ErrIndexOutOfRange)
}

func TestAccordionRevealAnimates(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeSingle)
	_, err := acc.Toggle(1)
	require.NoError(t, err)
	require.True(t, acc.Animating())

	frame := motion.FrameMsg{ID: acc.animID}
	assert.Nil(t, acc.Update(motion.FrameMsg{ID: "someone-else"}))

	for i := 0; i < 600 && acc.Animating(); i++ {
		acc.Update(frame)
	}
	assert.False(t, acc.Animating())
	assert.Nil(t, acc.Update(frame), "settled accordions stop ticking")

	view := acc.View()
	assert.Contains(t, view, "Thirty days.")
	assert.NotContains(t, view, "Two to five days.")
}

func TestAccordionToggleMidRevealKeepsOneFrameChain(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeMultiple)
	cmd, err := acc.Toggle(1)
	require.NoError(t, err)
	inFlight := frames(cmd)
	require.Equal(t, 1, inFlight)

	frame := motion.FrameMsg{ID: acc.animID}
	require.NotNil(t, acc.Update(frame))

	cmd, err = acc.Toggle(2)
	require.NoError(t, err)
	inFlight += frames(cmd)
	assert.Equal(t, 1, inFlight, "second toggle reuses the running chain")

	steps := 0
	for next := acc.Update(frame); next != nil; next = acc.Update(frame) {
		steps++
		require.Less(t, steps, 600)
	}
	assert.False(t, acc.Animating())

	cmd, err = acc.Toggle(1)
	require.NoError(t, err)
	assert.Equal(t, 1, frames(cmd), "a settled accordion starts a new chain")
}

func TestAccordionIgnoresFramesWhenIdle(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(faqItems(), accordion.ModeSingle)
	assert.Nil(t, acc.Update(motion.FrameMsg{ID: acc.animID}))
}

func TestAccordionRendersEveryVariant(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		view := NewAccordion(faqItems(), accordion.ModeSingle).WithVariant(v).WithSize(SizeSmall).View()
		assert.Contains(t, view, "Shipping", v.String())
	}
}

func TestAccordionEmptyGroup(t *testing.T) {
	t.Parallel()

	acc := NewAccordion(nil, accordion.ModeSingle)
	acc.Focus()
	assert.Nil(t, acc.Update(keyEnter))
	assert.NotPanics(t, func() { _ = acc.View() })
}
