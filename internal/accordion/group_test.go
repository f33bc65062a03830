package accordion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupNormalizesSingleMode(t *testing.T) {
	t.Parallel()

	group := NewGroup(items(true, true), ModeSingle)
	assert.Equal(t, []int{0}, group.OpenSet().Indices())

	group = NewGroup(items(true, true), ModeMultiple)
	assert.Equal(t, []int{0, 1}, group.OpenSet().Indices())
}

func TestGroupToggleReturnsNextValue(t *testing.T) {
	t.Parallel()

	start := NewGroup(items(false, false, false), ModeSingle)

	next, err := start.Toggle(1)
	require.NoError(t, err)
	open, err := next.IsOpen(1)
	require.NoError(t, err)
	assert.True(t, open)
	assert.True(t, start.OpenSet().Empty(), "receiver must be unchanged")

	next, err = next.Toggle(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, next.OpenSet().Indices())

	next, err = next.Toggle(2)
	require.NoError(t, err)
	assert.True(t, next.OpenSet().Empty())
}

func TestGroupOpenCloseReset(t *testing.T) {
	t.Parallel()

	group := NewGroup(items(true, false, false), ModeMultiple)

	group, err := group.Open(2)
	require.NoError(t, err)
	group, err = group.Close(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, group.OpenSet().Indices())

	group = group.Reset()
	assert.Equal(t, []int{0}, group.OpenSet().Indices())
}

func TestGroupErrorsLeaveStateUntouched(t *testing.T) {
	t.Parallel()

	group := NewGroup(items(false, true), ModeMultiple)

	next, err := group.Toggle(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.True(t, next.OpenSet().Equal(group.OpenSet()))

	_, err = group.Item(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	item, err := group.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "B", item.Title)
}

func TestGroupOwnsItems(t *testing.T) {
	t.Parallel()

	list := items(false, false)
	group := NewGroup(list, ModeSingle)
	list[0].Title = "changed"

	assert.Equal(t, "A", group.Items()[0].Title)

	copied := group.Items()
	copied[1].Title = "changed"
	assert.Equal(t, "B", group.Items()[1].Title)
}

func TestZeroGroup(t *testing.T) {
	t.Parallel()

	var group Group
	assert.Equal(t, 0, group.Len())
	assert.True(t, group.OpenSet().Empty())
	_, err := group.Toggle(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
