package uia

import (
	"fmt"

	"github.com/treeline-ui/treeline/internal/listview"
)

// Pattern identifies a UIA interaction pattern a fragment may support.
type Pattern int

const (
	PatternSelectionItem Pattern = iota
	PatternScrollItem
	PatternInvoke
	PatternToggle
	PatternExpandCollapse
)

// String returns a human-readable representation of the pattern
func (p Pattern) String() string {
	switch p {
	case PatternSelectionItem:
		return "SelectionItem"
	case PatternScrollItem:
		return "ScrollItem"
	case PatternInvoke:
		return "Invoke"
	case PatternToggle:
		return "Toggle"
	case PatternExpandCollapse:
		return "ExpandCollapse"
	default:
		return "Unknown"
	}
}

// ControlType is the UIA control type id reported for a fragment.
type ControlType int

const (
	ControlList ControlType = iota
	ControlListItem
	ControlText
	ControlGroup
)

// String returns a human-readable representation of the control type
func (c ControlType) String() string {
	switch c {
	case ControlList:
		return "List"
	case ControlListItem:
		return "ListItem"
	case ControlText:
		return "Text"
	case ControlGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Property identifies a value an automation client can query.
type Property int

const (
	PropName Property = iota
	PropAutomationID
	PropControlType
	PropIsSelectionItemPatternAvailable
	PropIsScrollItemPatternAvailable
	PropIsInvokePatternAvailable
	PropIsTogglePatternAvailable
	PropIsExpandCollapsePatternAvailable
)

// Property answers a client property query for this fragment. Pattern
// availability properties mirror IsPatternSupported; unknown properties
// answer nil.
func (f Fragment) Property(p Property) any {
	switch p {
	case PropName:
		return f.Name()
	case PropAutomationID:
		return f.AutomationID()
	case PropControlType:
		return f.ControlType()
	case PropIsSelectionItemPatternAvailable:
		return f.IsPatternSupported(PatternSelectionItem)
	case PropIsScrollItemPatternAvailable:
		return f.IsPatternSupported(PatternScrollItem)
	case PropIsInvokePatternAvailable:
		return f.IsPatternSupported(PatternInvoke)
	case PropIsTogglePatternAvailable:
		return f.IsPatternSupported(PatternToggle)
	case PropIsExpandCollapsePatternAvailable:
		return f.IsPatternSupported(PatternExpandCollapse)
	}
	return nil
}

// Name returns the fragment's accessible name: item label, sub-item
// text, or group header. The default group has an empty header.
func (f Fragment) Name() string {
	switch f.kind {
	case KindItem:
		return f.item.Label()
	case KindSubItem:
		return f.sub.Text()
	case KindGroup:
		if f.group != nil {
			return f.group.Header()
		}
		return ""
	case KindRoot:
		return f.owner.View().String()
	}
	return ""
}

// AutomationID returns the fragment's automation id in the form
// "<KindName>-<index>": the item's collection (or virtual) index, the
// sub-item's index within its item, or the group's display index.
func (f Fragment) AutomationID() string {
	switch f.kind {
	case KindItem:
		return fmt.Sprintf("%s-%d", f.kind, f.item.Index())
	case KindSubItem:
		return fmt.Sprintf("%s-%d", f.kind, f.sub.Index())
	case KindGroup:
		if f.group != nil {
			return fmt.Sprintf("%s-%d", f.kind, f.owner.GroupIndex(f.group))
		}
		return fmt.Sprintf("%s-default", f.kind)
	default:
		return f.kind.String()
	}
}

// ControlType returns the UIA control type for the fragment's kind.
func (f Fragment) ControlType() ControlType {
	switch f.kind {
	case KindItem:
		return ControlListItem
	case KindSubItem:
		return ControlText
	case KindGroup:
		return ControlGroup
	default:
		return ControlList
	}
}

// IsPatternSupported reports whether the fragment exposes the given
// interaction pattern. Item fragments always support SelectionItem,
// ScrollItem and Invoke; Toggle additionally requires the check box
// feature and a view kind that can display check boxes. Group fragments
// support ExpandCollapse.
func (f Fragment) IsPatternSupported(p Pattern) bool {
	switch f.kind {
	case KindItem:
		switch p {
		case PatternSelectionItem, PatternScrollItem, PatternInvoke:
			return true
		case PatternToggle:
			return f.owner.CheckBoxes() && f.owner.View().SupportsCheckBoxes()
		}
	case KindGroup:
		return p == PatternExpandCollapse
	}
	return false
}

// Expanded reports the group's expand/collapse state. Non-group
// fragments and the default group always report expanded.
func (f Fragment) Expanded() bool {
	if f.kind == KindGroup && f.group != nil {
		return !f.group.Collapsed()
	}
	return true
}

// Expand expands the wrapped group. No-op for anything else; the default
// group cannot collapse.
func (f Fragment) Expand() {
	if f.kind == KindGroup && f.group != nil {
		f.group.SetCollapsed(false)
	}
}

// Collapse collapses the wrapped group. No-op for anything else.
func (f Fragment) Collapse() {
	if f.kind == KindGroup && f.group != nil {
		f.group.SetCollapsed(true)
	}
}

// BoundingRectangle returns the fragment's on-screen rectangle. Bounds
// are meaningful only for mounted, on-screen geometry: before the
// display surface exists, and for items parented to a collapsed group,
// the empty rectangle is reported. Actual geometry is delegated to the
// layout collaborator installed on the list view.
func (f Fragment) BoundingRectangle() listview.Rect {
	if !f.owner.Mounted() {
		return listview.Rect{}
	}
	switch f.kind {
	case KindItem:
		if f.owner.GroupsActive() {
			if g := f.item.Group(); g != nil && g.Collapsed() {
				return listview.Rect{}
			}
		}
		return f.owner.ItemBounds(f.item)
	case KindSubItem:
		// Sub-item geometry is a slice of the item's; the layout
		// collaborator only tracks items, so report the item's bounds.
		parent := Fragment{kind: KindItem, owner: f.owner, item: f.item}
		return parent.BoundingRectangle()
	}
	return listview.Rect{}
}
