package listview

// Group is a named bucket of items displayed under a shared header when
// grouping is active. The group keeps its own private membership list,
// which can include items that were never added to the list view's
// positional item collection; such items are invisible to sibling
// navigation but still resolve their parent normally.
//
// Items with no explicit group assignment belong to the implicit default
// group, which is synthesized on query and never stored.
type Group struct {
	owner *ListView

	header    string
	items     []*Item
	collapsed bool
}

// Header returns the group's header text.
func (g *Group) Header() string { return g.header }

// SetHeader updates the group's header text.
func (g *Group) SetHeader(h string) { g.header = h }

// Collapsed reports whether the group is collapsed on screen.
func (g *Group) Collapsed() bool { return g.collapsed }

// SetCollapsed updates the group's collapsed flag.
func (g *Group) SetCollapsed(v bool) { g.collapsed = v }

// Owner returns the list view this group belongs to.
func (g *Group) Owner() *ListView { return g.owner }

// Items returns the group's private membership list in membership order.
// This includes members that are absent from the list view's positional
// ordering.
func (g *Group) Items() []*Item { return g.items }

// AddItem adds an item to the group's membership list only. The item is
// adopted by the group's list view but NOT inserted into its positional
// item collection, so it stays invisible until added there explicitly.
func (g *Group) AddItem(it *Item) error {
	if it == nil {
		return ErrNilItem
	}
	if it.owner != nil && it.owner != g.owner {
		return ErrForeignGroup
	}
	return it.SetGroup(g)
}

// RemoveItem drops an item from the group's membership, reassigning it
// to the default group. The item keeps its place in the list view's
// positional ordering, if it has one.
func (g *Group) RemoveItem(it *Item) {
	if it == nil || it.group != g {
		return
	}
	g.detach(it)
	it.group = nil
}

// detach removes the item from the membership slice without touching the
// item's own group reference.
func (g *Group) detach(it *Item) {
	for i, member := range g.items {
		if member == it {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return
		}
	}
}
