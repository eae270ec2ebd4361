package listview

// Item is a single row of a list view. An item holds back-references to
// its owning ListView and to its assigned Group; both are navigational
// only. The ListView owns the item's lifetime.
//
// An item may be attached to a list view in two ways: through the
// positional item collection (AddItem/InsertItem), which makes it
// visible, or only through a group's private membership list
// (Group.AddItem), which leaves it invisible to sibling navigation.
type Item struct {
	owner *ListView
	group *Group

	label    string
	subitems []*SubItem

	selected bool
	checked  bool
	focused  bool

	// Virtual items are materialized by the owner's fetch callback and
	// carry their index explicitly instead of positional membership.
	virtual bool
	index   int
}

// NewItem creates a detached item. It has no owner until it is added to
// a list view's item collection or to one of its groups.
func NewItem(label string) *Item {
	return &Item{label: label, index: -1}
}

// Owner returns the list view this item is attached to, or nil.
func (it *Item) Owner() *ListView { return it.owner }

// Group returns the item's assigned group, or nil for the default group.
func (it *Item) Group() *Group { return it.group }

// Label returns the item's display text.
func (it *Item) Label() string { return it.label }

// SetLabel updates the item's display text.
func (it *Item) SetLabel(label string) { it.label = label }

// Selected reports whether the item is selected.
func (it *Item) Selected() bool { return it.selected }

// SetSelected updates the item's selection flag.
func (it *Item) SetSelected(v bool) { it.selected = v }

// Checked reports whether the item's check box is checked.
func (it *Item) Checked() bool { return it.checked }

// SetChecked updates the item's check state.
func (it *Item) SetChecked(v bool) { it.checked = v }

// Focused reports whether the item has the keyboard focus indicator.
func (it *Item) Focused() bool { return it.focused }

// SetFocused updates the item's focus flag.
func (it *Item) SetFocused(v bool) { it.focused = v }

// IsVirtual reports whether the item was materialized by a virtual-mode
// fetch callback.
func (it *Item) IsVirtual() bool { return it.virtual }

// Index returns the item's position: the explicit fetch index for
// virtual items, the position in the owner's item collection otherwise.
// Returns -1 for detached and membership-only items.
func (it *Item) Index() int {
	if it.virtual {
		return it.index
	}
	if it.owner == nil {
		return -1
	}
	return it.owner.IndexOf(it)
}

// SetGroup assigns the item to a group, moving its membership out of any
// previous group. A nil group assigns the item to the default group.
// Returns ErrForeignGroup if the group belongs to another list view.
func (it *Item) SetGroup(g *Group) error {
	if g != nil && it.owner != nil && g.owner != it.owner {
		return ErrForeignGroup
	}
	if it.group == g {
		return nil
	}
	if it.group != nil {
		it.group.detach(it)
	}
	it.group = g
	if g != nil {
		g.items = append(g.items, it)
		if it.owner == nil {
			it.owner = g.owner
		}
	}
	return nil
}

// SubItems returns the item's sub-items (cells) in order.
func (it *Item) SubItems() []*SubItem { return it.subitems }

// SubItemCount returns the number of sub-items.
func (it *Item) SubItemCount() int { return len(it.subitems) }

// SubItemAt returns the sub-item at index i, or nil if out of range.
func (it *Item) SubItemAt(i int) *SubItem {
	if i < 0 || i >= len(it.subitems) {
		return nil
	}
	return it.subitems[i]
}

// AddSubItem appends a sub-item with the given text and returns it.
func (it *Item) AddSubItem(text string) *SubItem {
	sub := &SubItem{item: it, text: text}
	it.subitems = append(it.subitems, sub)
	return sub
}

// SubItem is a single cell of an item, shown as an extra column in
// Details view. Sub-items are leaves: they have no children of their own.
type SubItem struct {
	item *Item
	text string
}

// Item returns the owning item.
func (s *SubItem) Item() *Item { return s.item }

// Text returns the sub-item's display text.
func (s *SubItem) Text() string { return s.text }

// SetText updates the sub-item's display text.
func (s *SubItem) SetText(text string) { s.text = text }

// Index returns the sub-item's position within its owning item, or -1 if
// it is no longer present.
func (s *SubItem) Index() int {
	if s.item == nil {
		return -1
	}
	for i, other := range s.item.subitems {
		if other == s {
			return i
		}
	}
	return -1
}
