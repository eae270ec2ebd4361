package listview

import "fmt"

// Fetcher materializes a virtual item on demand. The callback is invoked
// with indices in [0, VirtualSize()) only; the list view adopts the
// returned item and stamps it with the requested index.
type Fetcher func(index int) *Item

// BoundsFunc is the layout collaborator: it maps an item to its current
// on-screen rectangle. Geometry is entirely external to this model.
type BoundsFunc func(it *Item) Rect

// Rect is a plain screen rectangle. The zero value is the empty
// rectangle reported whenever no meaningful geometry exists.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// ListView is the mutable item collection behind a list control. It is
// the single source of truth for item ordering, grouping, display flags
// and virtual-mode state. All accessors answer from current state; there
// is no caching between mutations and queries.
//
// The model is deliberately single-threaded: every mutation and query is
// expected to originate from the hosting UI loop.
type ListView struct {
	items  []*Item
	groups []*Group

	view       View
	showGroups bool
	checkBoxes bool

	// mounted is true once the control has a display surface. Sibling
	// navigation is undefined before that point, since no visible
	// ordering exists yet.
	mounted bool

	virtual     bool
	virtualSize int
	fetch       Fetcher

	bounds BoundsFunc
}

// New creates an empty, unmounted list view with the given view kind.
func New(view View) *ListView {
	return &ListView{view: view}
}

// === Display state ===

// View returns the current view kind.
func (lv *ListView) View() View { return lv.view }

// SetView changes the view kind.
func (lv *ListView) SetView(v View) { lv.view = v }

// ShowGroups reports whether group display is requested.
func (lv *ListView) ShowGroups() bool { return lv.showGroups }

// SetShowGroups toggles group display.
func (lv *ListView) SetShowGroups(v bool) { lv.showGroups = v }

// CheckBoxes reports whether the check box feature is enabled.
func (lv *ListView) CheckBoxes() bool { return lv.checkBoxes }

// SetCheckBoxes toggles the check box feature.
func (lv *ListView) SetCheckBoxes(v bool) { lv.checkBoxes = v }

// Mounted reports whether the control's display surface exists.
func (lv *ListView) Mounted() bool { return lv.mounted }

// Mount marks the display surface as created.
func (lv *ListView) Mount() { lv.mounted = true }

// Unmount marks the display surface as destroyed.
func (lv *ListView) Unmount() { lv.mounted = false }

// GroupsActive reports whether grouping participates in navigation:
// group display must be requested AND the view kind must support it.
// The List view parents items directly under the control regardless of
// group assignments. A virtual list always navigates as ungrouped;
// virtual items carry no group, so the show-groups flag has nothing to
// act on.
func (lv *ListView) GroupsActive() bool {
	return lv.showGroups && lv.view.SupportsGroups() && !lv.virtual
}

// SetBoundsDelegate installs the layout collaborator used to answer
// bounding-rectangle queries. A nil delegate yields empty rectangles.
func (lv *ListView) SetBoundsDelegate(fn BoundsFunc) { lv.bounds = fn }

// ItemBounds returns the item's on-screen rectangle per the installed
// layout delegate, or the empty rectangle when none is installed.
func (lv *ListView) ItemBounds(it *Item) Rect {
	if lv.bounds == nil {
		return Rect{}
	}
	return lv.bounds(it)
}

// === Item collection ===

// Len returns the number of items: the virtual size in virtual mode,
// the positional item count otherwise.
func (lv *ListView) Len() int {
	if lv.virtual {
		return lv.virtualSize
	}
	return len(lv.items)
}

// Items returns the positional item collection. In virtual mode this is
// always empty; use ItemAt to materialize items by index.
func (lv *ListView) Items() []*Item { return lv.items }

// ItemAt resolves an index to an item. In virtual mode the item is
// materialized through the fetch callback and stamped with the index;
// an out-of-range index is a programming error in the host and panics.
// Outside virtual mode an out-of-range index returns nil.
func (lv *ListView) ItemAt(i int) *Item {
	if lv.virtual {
		if i < 0 || i >= lv.virtualSize {
			panic(fmt.Sprintf("listview: virtual fetch index %d out of range [0,%d)", i, lv.virtualSize))
		}
		it := lv.fetch(i)
		it.owner = lv
		it.virtual = true
		it.index = i
		return it
	}
	if i < 0 || i >= len(lv.items) {
		return nil
	}
	return lv.items[i]
}

// IndexOf returns the item's position in the item collection, or -1 if
// it is not part of the positional ordering.
func (lv *ListView) IndexOf(it *Item) int {
	if it == nil {
		return -1
	}
	if lv.virtual {
		if it.virtual && it.index >= 0 && it.index < lv.virtualSize {
			return it.index
		}
		return -1
	}
	for i, other := range lv.items {
		if other == it {
			return i
		}
	}
	return -1
}

// AddItem appends a new visible item with the given label and returns it.
func (lv *ListView) AddItem(label string) *Item {
	return lv.InsertItem(len(lv.items), label)
}

// InsertItem inserts a new visible item at position i. The position is
// clamped to the collection bounds.
func (lv *ListView) InsertItem(i int, label string) *Item {
	it := NewItem(label)
	lv.InsertExisting(i, it)
	return it
}

// AddExisting appends an already-constructed item to the positional
// ordering, making it visible. Used to promote a membership-only group
// item into the displayed collection.
func (lv *ListView) AddExisting(it *Item) {
	lv.InsertExisting(len(lv.items), it)
}

// InsertExisting inserts an already-constructed item at position i.
func (lv *ListView) InsertExisting(i int, it *Item) {
	if it == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(lv.items) {
		i = len(lv.items)
	}
	it.owner = lv
	lv.items = append(lv.items[:i], append([]*Item{it}, lv.items[i:]...)...)
}

// RemoveItem removes the item from the positional ordering and from its
// group membership, detaching it from the list view entirely.
func (lv *ListView) RemoveItem(it *Item) {
	if it == nil {
		return
	}
	for i, other := range lv.items {
		if other == it {
			lv.items = append(lv.items[:i], lv.items[i+1:]...)
			break
		}
	}
	if it.group != nil {
		it.group.detach(it)
		it.group = nil
	}
	it.owner = nil
}

// MoveItem moves the item to position i in the positional ordering.
// Items not currently in the ordering are ignored.
func (lv *ListView) MoveItem(it *Item, i int) {
	pos := lv.IndexOf(it)
	if pos < 0 || lv.virtual {
		return
	}
	lv.items = append(lv.items[:pos], lv.items[pos+1:]...)
	if i < 0 {
		i = 0
	}
	if i > len(lv.items) {
		i = len(lv.items)
	}
	lv.items = append(lv.items[:i], append([]*Item{it}, lv.items[i:]...)...)
}

// Clear removes every item and group.
func (lv *ListView) Clear() {
	for _, it := range lv.items {
		it.owner = nil
		it.group = nil
	}
	lv.items = nil
	for _, g := range lv.groups {
		for _, it := range g.items {
			it.owner = nil
			it.group = nil
		}
		g.items = nil
		g.owner = nil
	}
	lv.groups = nil
}

// === Visibility ===

// IsVisible reports whether the item participates in sibling navigation.
// An item is visible iff it appears in the positional ordering, or, in
// virtual mode, iff it was materialized for an index inside the virtual
// range. Membership-only group items are invisible.
//
// Visibility gates sibling candidacy only; an item's own parent and
// children always resolve regardless.
func (lv *ListView) IsVisible(it *Item) bool {
	return lv.IndexOf(it) >= 0
}

// === Groups ===

// Groups returns the user groups in display order.
func (lv *ListView) Groups() []*Group { return lv.groups }

// AddGroup appends a new group with the given header and returns it.
func (lv *ListView) AddGroup(header string) *Group {
	g := &Group{owner: lv, header: header}
	lv.groups = append(lv.groups, g)
	return g
}

// RemoveGroup removes a group, reassigning its members to the default
// group. Members keep their place in the positional ordering.
func (lv *ListView) RemoveGroup(g *Group) {
	if g == nil {
		return
	}
	for i, other := range lv.groups {
		if other == g {
			lv.groups = append(lv.groups[:i], lv.groups[i+1:]...)
			break
		}
	}
	for _, it := range g.items {
		it.group = nil
	}
	g.items = nil
	g.owner = nil
}

// GroupIndex returns the group's position in display order, or -1.
func (lv *ListView) GroupIndex(g *Group) int {
	for i, other := range lv.groups {
		if other == g {
			return i
		}
	}
	return -1
}

// VisibleMembers returns the visible items assigned to the given group,
// in positional (collection) order, not membership order. A nil group
// selects the default group: every visible item without an assignment.
func (lv *ListView) VisibleMembers(g *Group) []*Item {
	var members []*Item
	for _, it := range lv.items {
		if it.group == g {
			members = append(members, it)
		}
	}
	return members
}

// === Virtual mode ===

// Virtual reports whether the list view fetches items on demand.
func (lv *ListView) Virtual() bool { return lv.virtual }

// VirtualSize returns the virtual item count.
func (lv *ListView) VirtualSize() int { return lv.virtualSize }

// SetVirtualSize updates the virtual item count.
func (lv *ListView) SetVirtualSize(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	lv.virtualSize = n
	return nil
}

// EnableVirtual switches the list view to on-demand item retrieval.
// Virtual items carry no group assignment, so the call is rejected while
// user groups exist, and the positional item collection must be empty.
func (lv *ListView) EnableVirtual(size int, fetch Fetcher) error {
	if fetch == nil {
		return ErrNilFetcher
	}
	if size < 0 {
		return ErrNegativeSize
	}
	if len(lv.groups) > 0 {
		return ErrGroupedVirtual
	}
	if len(lv.items) > 0 {
		return ErrItemsPresent
	}
	lv.virtual = true
	lv.virtualSize = size
	lv.fetch = fetch
	return nil
}

// DisableVirtual switches back to the materialized item collection.
func (lv *ListView) DisableVirtual() {
	lv.virtual = false
	lv.virtualSize = 0
	lv.fetch = nil
}
