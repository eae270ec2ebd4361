package listview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddInsertRemove(t *testing.T) {
	lv := New(ViewDetails)

	a := lv.AddItem("a")
	c := lv.AddItem("c")
	b := lv.InsertItem(1, "b")

	require.Equal(t, 3, lv.Len())
	require.Equal(t, []*Item{a, b, c}, lv.Items())
	require.Equal(t, 1, lv.IndexOf(b))
	require.Equal(t, lv, b.Owner())

	lv.RemoveItem(b)
	require.Equal(t, []*Item{a, c}, lv.Items())
	require.Nil(t, b.Owner())
	require.Equal(t, -1, b.Index())
}

func TestInsertClampsPosition(t *testing.T) {
	lv := New(ViewDetails)
	lv.AddItem("a")

	front := lv.InsertItem(-5, "front")
	back := lv.InsertItem(99, "back")

	require.Equal(t, 0, lv.IndexOf(front))
	require.Equal(t, 2, lv.IndexOf(back))
}

func TestMoveItem(t *testing.T) {
	lv := New(ViewDetails)
	a := lv.AddItem("a")
	b := lv.AddItem("b")
	c := lv.AddItem("c")

	lv.MoveItem(c, 0)
	require.Equal(t, []*Item{c, a, b}, lv.Items())

	lv.MoveItem(c, 99)
	require.Equal(t, []*Item{a, b, c}, lv.Items())
}

func TestClearDetachesEverything(t *testing.T) {
	lv := New(ViewDetails)
	it := lv.AddItem("a")
	g := lv.AddGroup("G")
	require.NoError(t, it.SetGroup(g))

	lv.Clear()

	require.Empty(t, lv.Items())
	require.Empty(t, lv.Groups())
	require.Nil(t, it.Owner())
	require.Nil(t, it.Group())
}

func TestItemAtOutOfRangeReturnsNil(t *testing.T) {
	lv := New(ViewDetails)
	lv.AddItem("a")

	require.Nil(t, lv.ItemAt(-1))
	require.Nil(t, lv.ItemAt(1))
}

func TestVisibility(t *testing.T) {
	lv := New(ViewDetails)
	visible := lv.AddItem("visible")

	g := lv.AddGroup("G")
	hidden := NewItem("hidden")
	require.NoError(t, g.AddItem(hidden))

	require.True(t, lv.IsVisible(visible))
	require.False(t, lv.IsVisible(hidden))
	require.False(t, lv.IsVisible(NewItem("detached")))

	// Promoting the member into the ordering makes it visible.
	lv.AddExisting(hidden)
	require.True(t, lv.IsVisible(hidden))
}

func TestGroupsActive(t *testing.T) {
	lv := New(ViewDetails)
	lv.SetShowGroups(true)
	require.True(t, lv.GroupsActive())

	// The simple List view never groups, whatever the flag says.
	lv.SetView(ViewList)
	require.False(t, lv.GroupsActive())

	lv.SetView(ViewTile)
	require.True(t, lv.GroupsActive())

	lv.SetShowGroups(false)
	require.False(t, lv.GroupsActive())
}

func TestViewCapabilities(t *testing.T) {
	cases := []struct {
		view       View
		groups     bool
		checkboxes bool
	}{
		{ViewDetails, true, true},
		{ViewLargeIcon, true, true},
		{ViewSmallIcon, true, true},
		{ViewList, false, true},
		{ViewTile, true, false},
	}
	for _, c := range cases {
		require.Equal(t, c.groups, c.view.SupportsGroups(), c.view.String())
		require.Equal(t, c.checkboxes, c.view.SupportsCheckBoxes(), c.view.String())
	}
}

func TestParseViewRoundTrip(t *testing.T) {
	for _, v := range []View{ViewDetails, ViewLargeIcon, ViewSmallIcon, ViewList, ViewTile} {
		require.Equal(t, v, ParseView(v.String()))
	}
	require.Equal(t, ViewDetails, ParseView("nonsense"))
}

func TestSubItems(t *testing.T) {
	lv := New(ViewDetails)
	it := lv.AddItem("row")
	s0 := it.AddSubItem("cell 0")
	s1 := it.AddSubItem("cell 1")

	require.Equal(t, 2, it.SubItemCount())
	require.Equal(t, s0, it.SubItemAt(0))
	require.Equal(t, s1, it.SubItemAt(1))
	require.Nil(t, it.SubItemAt(2))
	require.Equal(t, 1, s1.Index())
	require.Equal(t, it, s1.Item())
}

func TestItemBoundsDelegate(t *testing.T) {
	lv := New(ViewDetails)
	it := lv.AddItem("a")

	require.True(t, lv.ItemBounds(it).Empty())

	lv.SetBoundsDelegate(func(*Item) Rect { return Rect{X: 1, Y: 2, W: 3, H: 4} })
	require.Equal(t, Rect{X: 1, Y: 2, W: 3, H: 4}, lv.ItemBounds(it))
}
