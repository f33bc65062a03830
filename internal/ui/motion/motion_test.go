package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionSettlesOnTarget(t *testing.T) {
	t.Parallel()

	tr := Default().SetTarget(1)
	require.False(t, tr.Settled())

	for i := 0; i < 600 && !tr.Settled(); i++ {
		tr = tr.Step()
		assert.GreaterOrEqual(t, tr.Value(), 0.0)
		assert.LessOrEqual(t, tr.Value(), 1.0)
	}

	require.True(t, tr.Settled())
	assert.Equal(t, 1.0, tr.Value())
}

func TestTransitionStepIsPure(t *testing.T) {
	t.Parallel()

	start := Default().SetTarget(1)
	next := start.Step()

	assert.Equal(t, 0.0, start.Value())
	assert.Greater(t, next.Value(), 0.0)
}

func TestTransitionClampsTarget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Default().SetTarget(4).Target())
	assert.Equal(t, 0.0, Default().SetTarget(-2).Target())
}

func TestSnap(t *testing.T) {
	t.Parallel()

	tr := Default().Snap(1)
	assert.True(t, tr.Settled())
	assert.Equal(t, 1.0, tr.Value())

	tr = tr.SetTarget(0)
	assert.False(t, tr.Settled())
}

func TestTickReturnsCommand(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, Tick("a", 0))
	assert.NotNil(t, Tick("a", 30))
}

func TestNextIDIsUnique(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, NextID(), NextID())
}
