package accordion

// Group is a controller value bundling an item sequence, its mode and the
// current OpenSet. Methods never mutate the receiver; they return the next
// Group so callers can hold it in a bubbletea model or any other reducer loop.
type Group struct {
	items []Item
	mode  Mode
	open  OpenSet
}

// NewGroup builds a group whose initial state is Initialize followed by
// Normalize, so in ModeSingle only the first default-open item starts expanded.
func NewGroup(items []Item, mode Mode) Group {
	owned := make([]Item, len(items))
	copy(owned, items)
	return Group{
		items: owned,
		mode:  mode,
		open:  Normalize(Initialize(owned, mode), mode),
	}
}

// Len returns the number of items.
func (g Group) Len() int {
	return len(g.items)
}

// Items returns a copy of the item sequence.
func (g Group) Items() []Item {
	items := make([]Item, len(g.items))
	copy(items, g.items)
	return items
}

// Item returns the item at index.
func (g Group) Item(index int) (Item, error) {
	if err := checkIndex(index, len(g.items)); err != nil {
		return Item{}, err
	}
	return g.items[index], nil
}

// Mode returns the group's mode.
func (g Group) Mode() Mode {
	return g.mode
}

// OpenSet returns the current set of expanded indices.
func (g Group) OpenSet() OpenSet {
	if g.open.Size() != len(g.items) {
		return emptySet(len(g.items))
	}
	return g.open
}

// IsOpen reports whether the item at index is expanded.
func (g Group) IsOpen(index int) (bool, error) {
	return IsOpen(g.OpenSet(), index)
}

// Toggle applies a click on the item at index.
func (g Group) Toggle(index int) (Group, error) {
	next, err := Toggle(g.OpenSet(), index, g.mode)
	if err != nil {
		return g, err
	}
	g.open = next
	return g, nil
}

// Open expands the item at index.
func (g Group) Open(index int) (Group, error) {
	next, err := Open(g.OpenSet(), index, g.mode)
	if err != nil {
		return g, err
	}
	g.open = next
	return g, nil
}

// Close collapses the item at index.
func (g Group) Close(index int) (Group, error) {
	next, err := Close(g.OpenSet(), index)
	if err != nil {
		return g, err
	}
	g.open = next
	return g, nil
}

// Reset restores the state derived from the items' default-open flags.
func (g Group) Reset() Group {
	g.open = Normalize(Initialize(g.items, g.mode), g.mode)
	return g
}
