package store

import (
	"errors"
	"fmt"

	"github.com/treeline-ui/treeline/internal/listview"
)

// Sentinel errors for scenario validation
var (
	// ErrUnnamed indicates a scenario without a name, which cannot be keyed
	ErrUnnamed = errors.New("scenario has no name")

	// ErrBadGroupRef indicates an item referencing a group index that does not exist
	ErrBadGroupRef = errors.New("item references an unknown group")

	// ErrDetachedNeedsGroup indicates a membership-only item without a group
	ErrDetachedNeedsGroup = errors.New("membership-only item requires a group")
)

// Scenario is a serializable description of a list control: its display
// state plus every group and item. Scenarios are what the inspector
// saves and reloads.
type Scenario struct {
	Name       string      `json:"name"`
	View       string      `json:"view"`
	ShowGroups bool        `json:"show_groups"`
	CheckBoxes bool        `json:"check_boxes"`
	Mounted    bool        `json:"mounted"`
	Groups     []GroupSpec `json:"groups,omitempty"`
	Items      []ItemSpec  `json:"items,omitempty"`
}

// GroupSpec describes one user group.
type GroupSpec struct {
	Header    string `json:"header"`
	Collapsed bool   `json:"collapsed,omitempty"`
}

// ItemSpec describes one item. Group is an index into the scenario's
// group list, -1 for the default group. MembershipOnly items are added
// to their group's private list without entering the positional
// ordering, which makes them invisible to sibling navigation.
type ItemSpec struct {
	Label          string   `json:"label"`
	Group          int      `json:"group"`
	Selected       bool     `json:"selected,omitempty"`
	Checked        bool     `json:"checked,omitempty"`
	Focused        bool     `json:"focused,omitempty"`
	MembershipOnly bool     `json:"membership_only,omitempty"`
	SubItems       []string `json:"sub_items,omitempty"`
}

// Build constructs a list view from the scenario description.
func (s Scenario) Build() (*listview.ListView, error) {
	lv := listview.New(listview.ParseView(s.View))
	lv.SetShowGroups(s.ShowGroups)
	lv.SetCheckBoxes(s.CheckBoxes)

	groups := make([]*listview.Group, len(s.Groups))
	for i, gs := range s.Groups {
		g := lv.AddGroup(gs.Header)
		g.SetCollapsed(gs.Collapsed)
		groups[i] = g
	}

	for i, is := range s.Items {
		if is.Group < -1 || is.Group >= len(groups) {
			return nil, fmt.Errorf("item %d: %w", i, ErrBadGroupRef)
		}

		var it *listview.Item
		if is.MembershipOnly {
			if is.Group < 0 {
				return nil, fmt.Errorf("item %d: %w", i, ErrDetachedNeedsGroup)
			}
			it = listview.NewItem(is.Label)
			if err := groups[is.Group].AddItem(it); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		} else {
			it = lv.AddItem(is.Label)
			if is.Group >= 0 {
				if err := it.SetGroup(groups[is.Group]); err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
		}

		it.SetSelected(is.Selected)
		it.SetChecked(is.Checked)
		it.SetFocused(is.Focused)
		for _, text := range is.SubItems {
			it.AddSubItem(text)
		}
	}

	if s.Mounted {
		lv.Mount()
	}
	return lv, nil
}

// Snapshot captures the current state of a list view as a scenario.
// Virtual-mode items are not captured: they live in the host's backing
// store, not in the control.
func Snapshot(name string, lv *listview.ListView) Scenario {
	s := Scenario{
		Name:       name,
		View:       lv.View().String(),
		ShowGroups: lv.ShowGroups(),
		CheckBoxes: lv.CheckBoxes(),
		Mounted:    lv.Mounted(),
	}

	for _, g := range lv.Groups() {
		s.Groups = append(s.Groups, GroupSpec{Header: g.Header(), Collapsed: g.Collapsed()})
	}

	capture := func(it *listview.Item, membershipOnly bool) {
		spec := ItemSpec{
			Label:          it.Label(),
			Group:          lv.GroupIndex(it.Group()),
			Selected:       it.Selected(),
			Checked:        it.Checked(),
			Focused:        it.Focused(),
			MembershipOnly: membershipOnly,
		}
		for _, sub := range it.SubItems() {
			spec.SubItems = append(spec.SubItems, sub.Text())
		}
		s.Items = append(s.Items, spec)
	}

	for _, it := range lv.Items() {
		capture(it, false)
	}
	// Membership-only group items come after the visible ones.
	for _, g := range lv.Groups() {
		for _, it := range g.Items() {
			if !lv.IsVisible(it) {
				capture(it, true)
			}
		}
	}
	return s
}

// Sample returns a built-in scenario used when the store has nothing to
// offer: a mounted Details list with two groups, sub-items and one
// invisible membership-only item.
func Sample() Scenario {
	return Scenario{
		Name:       "sample",
		View:       "Details",
		ShowGroups: true,
		CheckBoxes: true,
		Mounted:    true,
		Groups: []GroupSpec{
			{Header: "Documents"},
			{Header: "Archives"},
		},
		Items: []ItemSpec{
			{Label: "Report.pdf", Group: 0, SubItems: []string{"12 KB", "today"}},
			{Label: "Notes.txt", Group: 0, Checked: true, SubItems: []string{"2 KB", "yesterday"}},
			{Label: "Backup.tar", Group: 1, SubItems: []string{"4 MB", "last week"}},
			{Label: "readme.md", Group: -1, Selected: true, SubItems: []string{"1 KB", "today"}},
			{Label: "Draft.pdf", Group: 0, MembershipOnly: true},
		},
	}
}
