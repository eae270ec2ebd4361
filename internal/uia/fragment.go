package uia

import (
	"github.com/treeline-ui/treeline/internal/listview"
)

// Kind identifies what a fragment wraps. The set is closed: navigation
// dispatches over it with a plain switch.
type Kind int

const (
	KindRoot Kind = iota
	KindItem
	KindSubItem
	KindGroup
)

// String returns the UIA-facing type name of the kind
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "ListView"
	case KindItem:
		return "ListItem"
	case KindSubItem:
		return "ListSubItem"
	case KindGroup:
		return "ListGroup"
	default:
		return "Unknown"
	}
}

// Fragment is a node of the accessibility tree exposed to an automation
// client. It is a stateless value: just a kind tag plus identity
// references into the list-view model. Two fragments for the same
// underlying entity compare equal with ==, so callers can re-query on
// demand instead of holding on to nodes.
//
// Every navigation and property answer is computed from the model's
// current state at call time; nothing is cached across mutations.
type Fragment struct {
	kind  Kind
	owner *listview.ListView
	item  *listview.Item
	sub   *listview.SubItem

	// group is nil for the implicit default group; defaultGroup
	// disambiguates that from "no group at all".
	group        *listview.Group
	defaultGroup bool
}

// Root returns the fragment for the list control itself.
func Root(lv *listview.ListView) (Fragment, error) {
	if lv == nil {
		return Fragment{}, ErrNilListView
	}
	return Fragment{kind: KindRoot, owner: lv}, nil
}

// ForItem returns the fragment wrapping an item. Construction fails fast
// for nil or detached items: navigation is undefined without an owning
// list view.
func ForItem(it *listview.Item) (Fragment, error) {
	if it == nil {
		return Fragment{}, ErrNilItem
	}
	if it.Owner() == nil {
		return Fragment{}, ErrDetached
	}
	return Fragment{kind: KindItem, owner: it.Owner(), item: it}, nil
}

// ForSubItem returns the fragment wrapping a sub-item.
func ForSubItem(sub *listview.SubItem) (Fragment, error) {
	if sub == nil {
		return Fragment{}, ErrNilSubItem
	}
	it := sub.Item()
	if it == nil || it.Owner() == nil {
		return Fragment{}, ErrDetached
	}
	return Fragment{kind: KindSubItem, owner: it.Owner(), item: it, sub: sub}, nil
}

// ForGroup returns the fragment wrapping a user group.
func ForGroup(g *listview.Group) (Fragment, error) {
	if g == nil {
		return Fragment{}, ErrNilGroup
	}
	if g.Owner() == nil {
		return Fragment{}, ErrDetached
	}
	return Fragment{kind: KindGroup, owner: g.Owner(), group: g}, nil
}

// ForDefaultGroup returns the fragment for the implicit default group of
// the given list view.
func ForDefaultGroup(lv *listview.ListView) (Fragment, error) {
	if lv == nil {
		return Fragment{}, ErrNilListView
	}
	return Fragment{kind: KindGroup, owner: lv, defaultGroup: true}, nil
}

// Kind returns the fragment's kind tag.
func (f Fragment) Kind() Kind { return f.kind }

// Owner returns the list view this fragment belongs to.
func (f Fragment) Owner() *listview.ListView { return f.owner }

// Item returns the wrapped item for item and sub-item fragments.
func (f Fragment) Item() *listview.Item { return f.item }

// SubItem returns the wrapped sub-item, or nil.
func (f Fragment) SubItem() *listview.SubItem { return f.sub }

// Group returns the wrapped user group; nil for the default group.
func (f Fragment) Group() *listview.Group { return f.group }

// IsDefaultGroup reports whether this is the implicit default group.
func (f Fragment) IsDefaultGroup() bool { return f.kind == KindGroup && f.defaultGroup }

// IsZero reports whether the fragment is the empty value returned by
// failed navigation.
func (f Fragment) IsZero() bool { return f.owner == nil }
