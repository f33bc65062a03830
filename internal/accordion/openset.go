package accordion

import (
	"fmt"
	"strconv"
	"strings"
)

// OpenSet is the set of expanded item indices for a sequence of a fixed size.
// Values are immutable: every operation that changes membership returns a new
// OpenSet and leaves the receiver untouched. The zero value is an empty set
// over an empty sequence.
type OpenSet struct {
	open []bool
}

// NewOpenSet builds a set over size items with the given indices expanded.
func NewOpenSet(size int, indices ...int) (OpenSet, error) {
	if size < 0 {
		return OpenSet{}, fmt.Errorf("accordion: negative size %d", size)
	}
	set := emptySet(size)
	for _, index := range indices {
		if err := checkIndex(index, size); err != nil {
			return OpenSet{}, err
		}
		set.open[index] = true
	}
	return set, nil
}

func emptySet(size int) OpenSet {
	return OpenSet{open: make([]bool, size)}
}

func singleton(size, index int) OpenSet {
	set := emptySet(size)
	set.open[index] = true
	return set
}

// Size returns the number of items the set was built for.
func (s OpenSet) Size() int {
	return len(s.open)
}

// Len returns the number of expanded items.
func (s OpenSet) Len() int {
	count := 0
	for _, open := range s.open {
		if open {
			count++
		}
	}
	return count
}

// Empty reports whether no item is expanded.
func (s OpenSet) Empty() bool {
	return s.Len() == 0
}

// Indices returns the expanded indices in ascending order.
func (s OpenSet) Indices() []int {
	indices := make([]int, 0, len(s.open))
	for i, open := range s.open {
		if open {
			indices = append(indices, i)
		}
	}
	return indices
}

// Equal reports whether both sets cover the same number of items and expand the same ones.
func (s OpenSet) Equal(other OpenSet) bool {
	if len(s.open) != len(other.open) {
		return false
	}
	for i := range s.open {
		if s.open[i] != other.open[i] {
			return false
		}
	}
	return true
}

// String renders the set as "{0, 2}".
func (s OpenSet) String() string {
	indices := s.Indices()
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = strconv.Itoa(index)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s OpenSet) contains(index int) bool {
	return s.open[index]
}

func (s OpenSet) with(index int, open bool) OpenSet {
	next := OpenSet{open: make([]bool, len(s.open))}
	copy(next.open, s.open)
	next.open[index] = open
	return next
}
