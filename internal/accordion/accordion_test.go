package accordion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(defaults ...bool) []Item {
	out := make([]Item, len(defaults))
	for i, open := range defaults {
		out[i] = Item{Title: string(rune('A' + i)), Content: "body", DefaultOpen: open}
	}
	return out
}

func mustSet(t *testing.T, size int, indices ...int) OpenSet {
	t.Helper()
	set, err := NewOpenSet(size, indices...)
	require.NoError(t, err)
	return set
}

func TestInitializeCollectsDefaultOpenIndices(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		defaults []bool
		want     []int
	}{
		{name: "none open", defaults: []bool{false, false, false}, want: []int{}},
		{name: "first open", defaults: []bool{true, false, false}, want: []int{0}},
		{name: "several open", defaults: []bool{true, false, true, true}, want: []int{0, 2, 3}},
		{name: "empty sequence", defaults: nil, want: []int{}},
	}

	for _, tc := range cases {
		tc := tc
		for _, mode := range []Mode{ModeSingle, ModeMultiple} {
			mode := mode
			t.Run(tc.name+"/"+mode.String(), func(t *testing.T) {
				t.Parallel()
				set := Initialize(items(tc.defaults...), mode)
				assert.Equal(t, tc.want, set.Indices())
				assert.Equal(t, len(tc.defaults), set.Size())
			})
		}
	}
}

func TestInitializeDoesNotCopyCallerState(t *testing.T) {
	t.Parallel()

	list := items(true, false)
	set := Initialize(list, ModeMultiple)
	list[1].DefaultOpen = true

	assert.Equal(t, []int{0}, set.Indices())
}

func TestIsOpen(t *testing.T) {
	t.Parallel()

	set := mustSet(t, 3, 1)

	open, err := IsOpen(set, 1)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = IsOpen(set, 0)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestIsOpenRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	set := mustSet(t, 2)
	for _, index := range []int{-1, 2, 10} {
		_, err := IsOpen(set, index)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var indexErr *IndexError
		require.True(t, errors.As(err, &indexErr))
		assert.Equal(t, index, indexErr.Index)
		assert.Equal(t, 2, indexErr.Size)
	}
}

func TestEmptySequence(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeSingle, ModeMultiple} {
		set := Initialize(nil, mode)
		assert.True(t, set.Empty())
		assert.Equal(t, 0, set.Size())

		for _, index := range []int{-1, 0, 1} {
			_, err := IsOpen(set, index)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		}
	}
}

func TestToggleMultiple(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		start []int
		index int
		want  []int
	}{
		{name: "opens closed item", start: []int{}, index: 2, want: []int{2}},
		{name: "closes open item", start: []int{0}, index: 0, want: []int{}},
		{name: "keeps other items", start: []int{0, 2}, index: 1, want: []int{0, 1, 2}},
		{name: "removes only the clicked item", start: []int{0, 1, 2}, index: 1, want: []int{0, 2}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, err := Toggle(mustSet(t, 3, tc.start...), tc.index, ModeMultiple)
			require.NoError(t, err)
			assert.Equal(t, tc.want, next.Indices())
		})
	}
}

func TestToggleSingle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		start []int
		index int
		want  []int
	}{
		{name: "opens from empty", start: []int{}, index: 1, want: []int{1}},
		{name: "switches open item", start: []int{1}, index: 2, want: []int{2}},
		{name: "closes sole open item", start: []int{2}, index: 2, want: []int{}},
		{name: "collapses ambiguous set to clicked item", start: []int{0, 1}, index: 0, want: []int{0}},
		{name: "collapses ambiguous set to unrelated item", start: []int{0, 1}, index: 2, want: []int{2}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, err := Toggle(mustSet(t, 3, tc.start...), tc.index, ModeSingle)
			require.NoError(t, err)
			assert.Equal(t, tc.want, next.Indices())
		})
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	start := mustSet(t, 3, 0)
	_, err := Toggle(start, 1, ModeMultiple)
	require.NoError(t, err)
	_, err = Toggle(start, 0, ModeSingle)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, start.Indices())
}

func TestToggleRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	start := mustSet(t, 2, 1)
	next, err := Toggle(start, 5, ModeSingle)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.True(t, next.Equal(start), "set must be returned unchanged")
}

func TestToggleRejectsInvalidMode(t *testing.T) {
	t.Parallel()

	start := mustSet(t, 2)
	next, err := Toggle(start, 0, Mode(7))
	require.ErrorIs(t, err, ErrInvalidMode)
	assert.True(t, next.Equal(start))
}

func TestSingleModeNeverExceedsOneOpenItem(t *testing.T) {
	t.Parallel()

	const size = 3
	starts := [][]int{{}, {0}, {0, 1}, {0, 1, 2}}

	var walk func(set OpenSet, depth int)
	walk = func(set OpenSet, depth int) {
		if depth == 0 {
			return
		}
		for index := 0; index < size; index++ {
			next, err := Toggle(set, index, ModeSingle)
			require.NoError(t, err)
			require.LessOrEqual(t, next.Len(), 1, "toggle(%s, %d) = %s", set, index, next)
			walk(next, depth-1)
		}
	}

	for _, start := range starts {
		walk(mustSet(t, size, start...), 4)
	}
}

func TestMultipleModeDoubleToggleIsIdentity(t *testing.T) {
	t.Parallel()

	const size = 4
	for mask := 0; mask < 1<<size; mask++ {
		var start []int
		for i := 0; i < size; i++ {
			if mask&(1<<i) != 0 {
				start = append(start, i)
			}
		}
		set := mustSet(t, size, start...)

		for index := 0; index < size; index++ {
			once, err := Toggle(set, index, ModeMultiple)
			require.NoError(t, err)
			twice, err := Toggle(once, index, ModeMultiple)
			require.NoError(t, err)
			assert.True(t, twice.Equal(set), "double toggle of %d on %s gave %s", index, set, twice)
		}
	}
}

func TestSingleModeDoubleToggleAcrossItems(t *testing.T) {
	t.Parallel()

	start := mustSet(t, 3, 0)

	once, err := Toggle(start, 2, ModeSingle)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, once.Indices())

	twice, err := Toggle(once, 2, ModeSingle)
	require.NoError(t, err)
	assert.True(t, twice.Empty())
	assert.False(t, twice.Equal(start))
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	t.Run("multiple with first item open", func(t *testing.T) {
		t.Parallel()
		set := Initialize(items(true, false, false), ModeMultiple)
		assert.Equal(t, []int{0}, set.Indices())

		set, err := Toggle(set, 0, ModeMultiple)
		require.NoError(t, err)
		assert.Equal(t, []int{}, set.Indices())

		set, err = Toggle(set, 2, ModeMultiple)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, set.Indices())
	})

	t.Run("single with no defaults", func(t *testing.T) {
		t.Parallel()
		set := Initialize(items(false, false, false), ModeSingle)
		assert.True(t, set.Empty())

		var err error
		for _, step := range []struct {
			index int
			want  []int
		}{{1, []int{1}}, {2, []int{2}}, {2, []int{}}} {
			set, err = Toggle(set, step.index, ModeSingle)
			require.NoError(t, err)
			assert.Equal(t, step.want, set.Indices())
		}
	})

	t.Run("single with conflicting defaults", func(t *testing.T) {
		t.Parallel()
		set := Initialize(items(true, true), ModeSingle)
		assert.Equal(t, []int{0, 1}, set.Indices())
		assert.Equal(t, []int{0}, Normalize(set, ModeSingle).Indices())

		next, err := Toggle(set, 0, ModeSingle)
		require.NoError(t, err)
		assert.LessOrEqual(t, next.Len(), 1)
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	set := mustSet(t, 4, 1, 3)
	assert.Equal(t, []int{1}, Normalize(set, ModeSingle).Indices())
	assert.Equal(t, []int{1, 3}, Normalize(set, ModeMultiple).Indices())

	empty := mustSet(t, 4)
	assert.True(t, Normalize(empty, ModeSingle).Empty())
}

func TestOpenAndClose(t *testing.T) {
	t.Parallel()

	set := mustSet(t, 3, 0)

	multi, err := Open(set, 2, ModeMultiple)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, multi.Indices())

	again, err := Open(multi, 2, ModeMultiple)
	require.NoError(t, err)
	assert.True(t, again.Equal(multi))

	single, err := Open(set, 2, ModeSingle)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, single.Indices())

	single, err = Open(single, 2, ModeSingle)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, single.Indices(), "opening the open item keeps it open")

	closed, err := Close(multi, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, closed.Indices())

	closed, err = Close(closed, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, closed.Indices())

	_, err = Close(closed, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Open(closed, -1, ModeSingle)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
