package listview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGroupMovesMembership(t *testing.T) {
	lv := New(ViewDetails)
	it := lv.AddItem("a")
	g1 := lv.AddGroup("One")
	g2 := lv.AddGroup("Two")

	require.NoError(t, it.SetGroup(g1))
	require.Equal(t, []*Item{it}, g1.Items())

	require.NoError(t, it.SetGroup(g2))
	require.Empty(t, g1.Items())
	require.Equal(t, []*Item{it}, g2.Items())
	require.Equal(t, g2, it.Group())

	require.NoError(t, it.SetGroup(nil))
	require.Empty(t, g2.Items())
	require.Nil(t, it.Group())
}

func TestSetGroupRejectsForeignGroup(t *testing.T) {
	lv := New(ViewDetails)
	other := New(ViewDetails)
	it := lv.AddItem("a")
	g := other.AddGroup("elsewhere")

	require.ErrorIs(t, it.SetGroup(g), ErrForeignGroup)
	require.Nil(t, it.Group())
}

func TestGroupAddItemIsMembershipOnly(t *testing.T) {
	lv := New(ViewDetails)
	g := lv.AddGroup("G")

	it := NewItem("ghost")
	require.NoError(t, g.AddItem(it))

	// Adopted by the list view, but not part of the ordering.
	require.Equal(t, lv, it.Owner())
	require.Equal(t, g, it.Group())
	require.Equal(t, -1, lv.IndexOf(it))
	require.False(t, lv.IsVisible(it))

	require.ErrorIs(t, g.AddItem(nil), ErrNilItem)
}

func TestGroupRemoveItem(t *testing.T) {
	lv := New(ViewDetails)
	g := lv.AddGroup("G")
	it := lv.AddItem("a")
	require.NoError(t, it.SetGroup(g))

	g.RemoveItem(it)
	require.Nil(t, it.Group())
	require.Empty(t, g.Items())
	// Still part of the ordering.
	require.True(t, lv.IsVisible(it))
}

func TestRemoveGroupReassignsMembers(t *testing.T) {
	lv := New(ViewDetails)
	g := lv.AddGroup("G")
	it := lv.AddItem("a")
	require.NoError(t, it.SetGroup(g))

	lv.RemoveGroup(g)

	require.Empty(t, lv.Groups())
	require.Nil(t, it.Group())
	require.True(t, lv.IsVisible(it))
	require.Equal(t, -1, lv.GroupIndex(g))
}

func TestVisibleMembersFollowCollectionOrder(t *testing.T) {
	lv := New(ViewDetails)
	g := lv.AddGroup("G")

	// Membership order deliberately differs from collection order.
	second := lv.AddItem("second")
	first := lv.InsertItem(0, "first")
	require.NoError(t, second.SetGroup(g))
	require.NoError(t, first.SetGroup(g))
	require.Equal(t, []*Item{second, first}, g.Items())

	require.Equal(t, []*Item{first, second}, lv.VisibleMembers(g))
}

func TestVisibleMembersDefaultGroup(t *testing.T) {
	lv := New(ViewDetails)
	g := lv.AddGroup("G")
	grouped := lv.AddItem("grouped")
	loose := lv.AddItem("loose")
	require.NoError(t, grouped.SetGroup(g))

	require.Equal(t, []*Item{loose}, lv.VisibleMembers(nil))
}

func TestCollapsedFlag(t *testing.T) {
	lv := New(ViewDetails)
	g := lv.AddGroup("G")
	require.False(t, g.Collapsed())
	g.SetCollapsed(true)
	require.True(t, g.Collapsed())
}
