package uia

import "strings"

// StateFlags is the bitset of accessibility states reported for an item
// fragment.
type StateFlags uint32

const (
	StateSelectable StateFlags = 1 << iota
	StateFocusable
	StateMultiSelectable
	StateSelected
	StateFocused
)

// Has reports whether all the given flags are set.
func (s StateFlags) Has(flags StateFlags) bool { return s&flags == flags }

// String returns the set flags as a "+"-joined list
func (s StateFlags) String() string {
	var names []string
	for _, e := range []struct {
		flag StateFlags
		name string
	}{
		{StateSelectable, "Selectable"},
		{StateFocusable, "Focusable"},
		{StateMultiSelectable, "MultiSelectable"},
		{StateSelected, "Selected"},
		{StateFocused, "Focused"},
	} {
		if s.Has(e.flag) {
			names = append(names, e.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}

// ToggleState is the reported check state of an item's toggle pattern.
type ToggleState int

const (
	ToggleOff ToggleState = iota
	ToggleOn
)

// String returns "On" or "Off"
func (t ToggleState) String() string {
	if t == ToggleOn {
		return "On"
	}
	return "Off"
}

// State projects the item's current flags into the exposed state bitset.
// Items are always selectable and focusable within a multi-selectable
// container; the selected flag contributes both Selected and Focused.
// Non-item fragments report no state.
func (f Fragment) State() StateFlags {
	if f.kind != KindItem {
		return 0
	}
	state := StateSelectable | StateFocusable | StateMultiSelectable
	if f.item.Selected() {
		state |= StateSelected | StateFocused
	}
	return state
}

// ToggleState reports On iff the item is checked.
func (f Fragment) ToggleState() ToggleState {
	if f.kind == KindItem && f.item.Checked() {
		return ToggleOn
	}
	return ToggleOff
}

// Toggle flips the item's check state. When the toggle pattern is not
// supported (check boxes disabled, Tile view, or a non-item fragment)
// the call is a tolerated no-op rather than an error, matching what
// automation clients expect. The new state is observable through
// ToggleState before this returns.
func (f Fragment) Toggle() {
	if !f.IsPatternSupported(PatternToggle) {
		return
	}
	f.item.SetChecked(!f.item.Checked())
}
