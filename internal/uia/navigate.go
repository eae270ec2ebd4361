package uia

import (
	"github.com/treeline-ui/treeline/internal/listview"
)

// Direction selects a navigation step through the fragment tree.
type Direction int

const (
	DirParent Direction = iota
	DirNextSibling
	DirPrevSibling
	DirFirstChild
	DirLastChild
)

// String returns a human-readable representation of the direction
func (d Direction) String() string {
	switch d {
	case DirParent:
		return "Parent"
	case DirNextSibling:
		return "NextSibling"
	case DirPrevSibling:
		return "PreviousSibling"
	case DirFirstChild:
		return "FirstChild"
	case DirLastChild:
		return "LastChild"
	default:
		return "Unknown"
	}
}

// Navigate computes the neighboring fragment in the given direction from
// the model's current state. The second return value is false when no
// fragment exists in that direction; absence is a normal answer, not an
// error.
//
// Sibling order is always the list view's positional ordering.
// Membership-only (invisible) items are skipped entirely: they are never
// returned as a sibling and never report one, and they do not break the
// adjacency of the visible items around them. Before the control is
// mounted no visible ordering exists, so every sibling query answers
// false while parent/child queries still resolve from the logical model.
func (f Fragment) Navigate(dir Direction) (Fragment, bool) {
	if f.IsZero() {
		return Fragment{}, false
	}
	switch f.kind {
	case KindRoot:
		return f.navigateRoot(dir)
	case KindItem:
		return f.navigateItem(dir)
	case KindSubItem:
		return f.navigateSubItem(dir)
	case KindGroup:
		return f.navigateGroup(dir)
	}
	return Fragment{}, false
}

// === Root ===

func (f Fragment) navigateRoot(dir Direction) (Fragment, bool) {
	lv := f.owner
	switch dir {
	case DirParent, DirNextSibling, DirPrevSibling:
		// The control is the top of this fragment tree.
		return Fragment{}, false

	case DirFirstChild:
		if lv.GroupsActive() {
			return firstOf(displayedGroups(lv))
		}
		return itemFragmentAt(lv, 0)

	case DirLastChild:
		if lv.GroupsActive() {
			return lastOf(displayedGroups(lv))
		}
		return itemFragmentAt(lv, lv.Len()-1)
	}
	return Fragment{}, false
}

// === Item ===

func (f Fragment) navigateItem(dir Direction) (Fragment, bool) {
	lv := f.owner
	it := f.item

	switch dir {
	case DirParent:
		return itemParent(lv, it), true

	case DirFirstChild:
		if it.SubItemCount() == 0 {
			return Fragment{}, false
		}
		return subItemFragment(it.SubItemAt(0))

	case DirLastChild:
		if it.SubItemCount() == 0 {
			return Fragment{}, false
		}
		return subItemFragment(it.SubItemAt(it.SubItemCount() - 1))

	case DirNextSibling:
		return itemSibling(lv, it, +1)

	case DirPrevSibling:
		return itemSibling(lv, it, -1)
	}
	return Fragment{}, false
}

// itemParent resolves an item's logical parent: its group (or the
// default group) when grouping is active, the control root otherwise.
// This resolves even for invisible and unmounted items.
func itemParent(lv *listview.ListView, it *listview.Item) Fragment {
	if lv.GroupsActive() {
		if g := it.Group(); g != nil {
			return Fragment{kind: KindGroup, owner: lv, group: g}
		}
		return Fragment{kind: KindGroup, owner: lv, defaultGroup: true}
	}
	return Fragment{kind: KindRoot, owner: lv}
}

// itemSibling scans the ordered sequence of visible items that share the
// item's resolved parent and returns the neighbor delta steps away.
func itemSibling(lv *listview.ListView, it *listview.Item, delta int) (Fragment, bool) {
	if !lv.Mounted() {
		return Fragment{}, false
	}
	if !lv.IsVisible(it) {
		// Invisible items report no siblings at all.
		return Fragment{}, false
	}

	if lv.Virtual() {
		// Virtual items are all visible and share one parent; adjacency
		// is index arithmetic against the live virtual size.
		i := it.Index() + delta
		if i < 0 || i >= lv.VirtualSize() {
			return Fragment{}, false
		}
		return itemFragment(lv, lv.ItemAt(i)), true
	}

	var peers []*listview.Item
	if lv.GroupsActive() {
		peers = lv.VisibleMembers(it.Group())
	} else {
		peers = lv.Items()
	}
	for i, peer := range peers {
		if peer == it {
			j := i + delta
			if j < 0 || j >= len(peers) {
				return Fragment{}, false
			}
			return itemFragment(lv, peers[j]), true
		}
	}
	return Fragment{}, false
}

// === Sub-item ===

func (f Fragment) navigateSubItem(dir Direction) (Fragment, bool) {
	sub := f.sub
	it := f.item

	switch dir {
	case DirParent:
		return Fragment{kind: KindItem, owner: f.owner, item: it}, true

	case DirFirstChild, DirLastChild:
		// Sub-items are leaves.
		return Fragment{}, false

	case DirNextSibling, DirPrevSibling:
		if !f.owner.Mounted() {
			return Fragment{}, false
		}
		i := sub.Index()
		if i < 0 {
			return Fragment{}, false
		}
		if dir == DirNextSibling {
			i++
		} else {
			i--
		}
		next := it.SubItemAt(i)
		if next == nil {
			return Fragment{}, false
		}
		return subItemFragment(next)
	}
	return Fragment{}, false
}

// === Group ===

func (f Fragment) navigateGroup(dir Direction) (Fragment, bool) {
	lv := f.owner

	switch dir {
	case DirParent:
		return Fragment{kind: KindRoot, owner: lv}, true

	case DirFirstChild:
		members := lv.VisibleMembers(f.group)
		if len(members) == 0 {
			return Fragment{}, false
		}
		return itemFragment(lv, members[0]), true

	case DirLastChild:
		members := lv.VisibleMembers(f.group)
		if len(members) == 0 {
			return Fragment{}, false
		}
		return itemFragment(lv, members[len(members)-1]), true

	case DirNextSibling, DirPrevSibling:
		if !lv.Mounted() {
			return Fragment{}, false
		}
		shown := displayedGroups(lv)
		for i, g := range shown {
			if g == f {
				j := i + 1
				if dir == DirPrevSibling {
					j = i - 1
				}
				if j < 0 || j >= len(shown) {
					return Fragment{}, false
				}
				return shown[j], true
			}
		}
		return Fragment{}, false
	}
	return Fragment{}, false
}

// displayedGroups returns the groups that currently appear on screen, in
// display order: the default group first when it has visible members,
// then each user group that has at least one visible member. Groups with
// no on-screen items have no presence to anchor navigation and are
// skipped. Returns nil when grouping is inactive.
func displayedGroups(lv *listview.ListView) []Fragment {
	if !lv.GroupsActive() {
		return nil
	}
	var shown []Fragment
	if len(lv.VisibleMembers(nil)) > 0 {
		shown = append(shown, Fragment{kind: KindGroup, owner: lv, defaultGroup: true})
	}
	for _, g := range lv.Groups() {
		if len(lv.VisibleMembers(g)) > 0 {
			shown = append(shown, Fragment{kind: KindGroup, owner: lv, group: g})
		}
	}
	return shown
}

// === Helpers ===

func itemFragment(lv *listview.ListView, it *listview.Item) Fragment {
	return Fragment{kind: KindItem, owner: lv, item: it}
}

func itemFragmentAt(lv *listview.ListView, i int) (Fragment, bool) {
	if i < 0 || i >= lv.Len() {
		return Fragment{}, false
	}
	return itemFragment(lv, lv.ItemAt(i)), true
}

func subItemFragment(sub *listview.SubItem) (Fragment, bool) {
	f, err := ForSubItem(sub)
	if err != nil {
		return Fragment{}, false
	}
	return f, true
}

func firstOf(frags []Fragment) (Fragment, bool) {
	if len(frags) == 0 {
		return Fragment{}, false
	}
	return frags[0], true
}

func lastOf(frags []Fragment) (Fragment, bool) {
	if len(frags) == 0 {
		return Fragment{}, false
	}
	return frags[len(frags)-1], true
}
