package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesIdentical(t *testing.T) {
	t.Parallel()

	res := Lines("a\nb\n", "a\nb\n", "snapshot", "render")
	assert.False(t, res.Changed())
	assert.Empty(t, res.Text)
}

func TestLinesReportsChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		actual   string
		added    int
		removed  int
		contains []string
	}{
		{
			name:     "single line change",
			expected: "▸ Shipping\n▸ Returns\n",
			actual:   "▾ Shipping\n▸ Returns\n",
			added:    1,
			removed:  1,
			contains: []string{"-▸ Shipping", "+▾ Shipping", " ▸ Returns"},
		},
		{
			name:     "appended lines",
			expected: "one\n",
			actual:   "one\ntwo\nthree\n",
			added:    2,
			contains: []string{"+two", "+three"},
		},
		{
			name:     "empty expected",
			expected: "",
			actual:   "fresh\n",
			added:    1,
			contains: []string{"+fresh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Lines(tt.expected, tt.actual, "snapshot", "render")
			require.True(t, res.Changed())
			assert.Equal(t, tt.added, res.Added)
			assert.Equal(t, tt.removed, res.Removed)
			assert.True(t, strings.HasPrefix(res.Text, "--- snapshot\n+++ render\n"))
			for _, want := range tt.contains {
				assert.Contains(t, res.Text, want)
			}
		})
	}
}

func TestLinesTruncatesLongDiffs(t *testing.T) {
	t.Parallel()

	var actual strings.Builder
	for i := 0; i < maxDiffLines+50; i++ {
		fmt.Fprintf(&actual, "line %d\n", i)
	}

	res := Lines("", actual.String(), "a", "b")
	assert.Equal(t, maxDiffLines+50, res.Added)
	assert.Contains(t, res.Text, truncateMessage)
	assert.LessOrEqual(t, strings.Count(res.Text, "\n"), maxDiffLines+2)
}
