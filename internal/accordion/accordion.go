// Package accordion holds the open/closed state of a group of collapsible
// items.
//
// State lives in an OpenSet value owned by the caller. Initialize derives the
// first OpenSet from the items' default-open flags and Toggle computes the
// next one for a click on an item; neither touches anything but its
// arguments. Group bundles items, mode and OpenSet for callers that prefer a
// single value to thread through their update loop.
//
// Items are identified by position. Reordering or filtering the item slice
// invalidates any OpenSet built for it; rebuild the Group instead.
package accordion

// Item describes one collapsible entry.
type Item struct {
	// Title is the trigger label.
	Title string
	// Content is rendered when the item is expanded. The controller never inspects it.
	Content any
	// DefaultOpen is read once, when the initial OpenSet is derived.
	DefaultOpen bool
}

// Initialize returns the set of indices whose item declares DefaultOpen.
//
// The mode is not enforced: in ModeSingle several defaults yield several open
// indices. Use Normalize to apply the single-mode tie-break.
func Initialize(items []Item, _ Mode) OpenSet {
	set := emptySet(len(items))
	for i, item := range items {
		if item.DefaultOpen {
			set.open[i] = true
		}
	}
	return set
}

// Normalize enforces the mode's cardinality on set. In ModeSingle the lowest
// open index wins and every other item is closed; ModeMultiple sets are
// returned unchanged.
func Normalize(set OpenSet, mode Mode) OpenSet {
	if mode != ModeSingle || set.Len() <= 1 {
		return set
	}
	first := set.Indices()[0]
	return singleton(set.Size(), first)
}

// IsOpen reports whether index is expanded in set.
func IsOpen(set OpenSet, index int) (bool, error) {
	if err := checkIndex(index, set.Size()); err != nil {
		return false, err
	}
	return set.contains(index), nil
}

// Toggle returns the set that results from clicking the item at index.
//
// In ModeMultiple the item flips on its own. In ModeSingle clicking the only
// open item closes it; clicking anything else leaves exactly that item open,
// whatever set held before. On error set is returned unchanged.
func Toggle(set OpenSet, index int, mode Mode) (OpenSet, error) {
	if err := checkIndex(index, set.Size()); err != nil {
		return set, err
	}

	switch mode {
	case ModeMultiple:
		return set.with(index, !set.contains(index)), nil
	case ModeSingle:
		if set.Len() == 1 && set.contains(index) {
			return emptySet(set.Size()), nil
		}
		return singleton(set.Size(), index), nil
	default:
		return set, ErrInvalidMode
	}
}

// Open expands the item at index. In ModeSingle every other item collapses.
// Opening an item that is already the only open one is a no-op.
func Open(set OpenSet, index int, mode Mode) (OpenSet, error) {
	if err := checkIndex(index, set.Size()); err != nil {
		return set, err
	}

	switch mode {
	case ModeMultiple:
		if set.contains(index) {
			return set, nil
		}
		return set.with(index, true), nil
	case ModeSingle:
		return singleton(set.Size(), index), nil
	default:
		return set, ErrInvalidMode
	}
}

// Close collapses the item at index. Closing a collapsed item is a no-op.
func Close(set OpenSet, index int) (OpenSet, error) {
	if err := checkIndex(index, set.Size()); err != nil {
		return set, err
	}
	if !set.contains(index) {
		return set, nil
	}
	return set.with(index, false), nil
}
