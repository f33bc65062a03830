package accordion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenSet(t *testing.T) {
	t.Parallel()

	set, err := NewOpenSet(4, 3, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Size())
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []int{1, 3}, set.Indices())
	assert.Equal(t, "{1, 3}", set.String())

	_, err = NewOpenSet(2, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewOpenSet(-1)
	assert.Error(t, err)
}

func TestOpenSetZeroValue(t *testing.T) {
	t.Parallel()

	var set OpenSet
	assert.True(t, set.Empty())
	assert.Equal(t, 0, set.Size())
	assert.Equal(t, "{}", set.String())
	assert.True(t, set.Equal(emptySet(0)))
}

func TestOpenSetEqualRequiresSameSize(t *testing.T) {
	t.Parallel()

	a := mustSet(t, 3, 1)
	b := mustSet(t, 4, 1)
	c := mustSet(t, 3, 1)

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(c))
}

func TestOpenSetWithCopies(t *testing.T) {
	t.Parallel()

	base := mustSet(t, 2)
	next := base.with(1, true)

	assert.True(t, base.Empty())
	assert.Equal(t, []int{1}, next.Indices())
}
