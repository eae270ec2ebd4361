package uia

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treeline-ui/treeline/internal/listview"
)

func TestNameProjection(t *testing.T) {
	lv := listview.New(listview.ViewDetails)
	it := lv.AddItem("Report.pdf")
	sub := it.AddSubItem("12 KB")
	g := lv.AddGroup("Documents")

	root, _ := Root(lv)
	require.Equal(t, "Details", root.Name())

	fi, _ := ForItem(it)
	require.Equal(t, "Report.pdf", fi.Name())

	fs, _ := ForSubItem(sub)
	require.Equal(t, "12 KB", fs.Name())

	fg, _ := ForGroup(g)
	require.Equal(t, "Documents", fg.Name())

	fd, _ := ForDefaultGroup(lv)
	require.Equal(t, "", fd.Name())
}

func TestAutomationID(t *testing.T) {
	lv := listview.New(listview.ViewDetails)
	lv.AddItem("first")
	it := lv.AddItem("second")
	sub := it.AddSubItem("cell")
	g := lv.AddGroup("G")

	fi, _ := ForItem(it)
	require.Equal(t, "ListItem-1", fi.AutomationID())

	fs, _ := ForSubItem(sub)
	require.Equal(t, "ListSubItem-0", fs.AutomationID())

	fg, _ := ForGroup(g)
	require.Equal(t, "ListGroup-0", fg.AutomationID())

	fd, _ := ForDefaultGroup(lv)
	require.Equal(t, "ListGroup-default", fd.AutomationID())

	root, _ := Root(lv)
	require.Equal(t, "ListView", root.AutomationID())
}

func TestAutomationIDUsesVirtualIndex(t *testing.T) {
	backing := []*listview.Item{
		listview.NewItem("a"), listview.NewItem("b"), listview.NewItem("c"),
	}
	lv := listview.New(listview.ViewDetails)
	require.NoError(t, lv.EnableVirtual(3, func(i int) *listview.Item { return backing[i] }))

	f, err := ForItem(lv.ItemAt(2))
	require.NoError(t, err)
	require.Equal(t, "ListItem-2", f.AutomationID())
}

func TestControlTypes(t *testing.T) {
	lv := listview.New(listview.ViewDetails)
	it := lv.AddItem("a")
	sub := it.AddSubItem("cell")
	g := lv.AddGroup("G")

	root, _ := Root(lv)
	fi, _ := ForItem(it)
	fs, _ := ForSubItem(sub)
	fg, _ := ForGroup(g)

	require.Equal(t, ControlList, root.ControlType())
	require.Equal(t, ControlListItem, fi.ControlType())
	require.Equal(t, ControlText, fs.ControlType())
	require.Equal(t, ControlGroup, fg.ControlType())
}

func TestItemPatterns(t *testing.T) {
	lv := listview.New(listview.ViewDetails)
	it := lv.AddItem("a")
	f, _ := ForItem(it)

	require.True(t, f.IsPatternSupported(PatternSelectionItem))
	require.True(t, f.IsPatternSupported(PatternScrollItem))
	require.True(t, f.IsPatternSupported(PatternInvoke))
	require.False(t, f.IsPatternSupported(PatternExpandCollapse))

	// Toggle requires the check box feature.
	require.False(t, f.IsPatternSupported(PatternToggle))
	lv.SetCheckBoxes(true)
	require.True(t, f.IsPatternSupported(PatternToggle))

	// Tile view never shows check boxes, whatever the flag says.
	lv.SetView(listview.ViewTile)
	require.False(t, f.IsPatternSupported(PatternToggle))
	lv.SetView(listview.ViewList)
	require.True(t, f.IsPatternSupported(PatternToggle))
}

func TestGroupPatterns(t *testing.T) {
	lv := listview.New(listview.ViewDetails)
	g := lv.AddGroup("G")
	fg, _ := ForGroup(g)

	require.True(t, fg.IsPatternSupported(PatternExpandCollapse))
	require.False(t, fg.IsPatternSupported(PatternToggle))
	require.False(t, fg.IsPatternSupported(PatternSelectionItem))

	require.True(t, fg.Expanded())
	fg.Collapse()
	require.False(t, fg.Expanded())
	require.True(t, g.Collapsed())
	fg.Expand()
	require.True(t, fg.Expanded())

	// The default group cannot collapse.
	fd, _ := ForDefaultGroup(lv)
	fd.Collapse()
	require.True(t, fd.Expanded())
}

func TestPropertyQueries(t *testing.T) {
	lv := listview.New(listview.ViewDetails)
	lv.SetCheckBoxes(true)
	it := lv.AddItem("a")
	f, _ := ForItem(it)

	require.Equal(t, "a", f.Property(PropName))
	require.Equal(t, "ListItem-0", f.Property(PropAutomationID))
	require.Equal(t, ControlListItem, f.Property(PropControlType))
	require.Equal(t, true, f.Property(PropIsSelectionItemPatternAvailable))
	require.Equal(t, true, f.Property(PropIsScrollItemPatternAvailable))
	require.Equal(t, true, f.Property(PropIsInvokePatternAvailable))
	require.Equal(t, true, f.Property(PropIsTogglePatternAvailable))
	require.Equal(t, false, f.Property(PropIsExpandCollapsePatternAvailable))
	require.Nil(t, f.Property(Property(99)))
}

func TestBoundingRectangleGating(t *testing.T) {
	lv := listview.New(listview.ViewDetails)
	lv.SetShowGroups(true)
	g := lv.AddGroup("G")
	it := lv.AddItem("a")
	require.NoError(t, it.SetGroup(g))
	sub := it.AddSubItem("cell")

	want := listview.Rect{X: 10, Y: 20, W: 30, H: 40}
	lv.SetBoundsDelegate(func(*listview.Item) listview.Rect { return want })

	f, _ := ForItem(it)

	// No display surface yet: empty.
	require.True(t, f.BoundingRectangle().Empty())

	lv.Mount()
	require.Equal(t, want, f.BoundingRectangle())

	// Sub-items report their item's bounds.
	fs, _ := ForSubItem(sub)
	require.Equal(t, want, fs.BoundingRectangle())

	// Collapsed group hides member geometry.
	g.SetCollapsed(true)
	require.True(t, f.BoundingRectangle().Empty())
	require.True(t, fs.BoundingRectangle().Empty())
	g.SetCollapsed(false)
	require.Equal(t, want, f.BoundingRectangle())

	// With grouping inactive the collapsed flag is irrelevant.
	g.SetCollapsed(true)
	lv.SetShowGroups(false)
	require.Equal(t, want, f.BoundingRectangle())

	// No delegate installed: empty even when mounted.
	lv.SetBoundsDelegate(nil)
	require.True(t, f.BoundingRectangle().Empty())
}
