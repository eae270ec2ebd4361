package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// backingFetcher returns a fetcher over a fixed backing slice, the way a
// host materializes rows from its own store.
func backingFetcher(items []*Item) Fetcher {
	return func(i int) *Item { return items[i] }
}

func virtualBacking(n int) []*Item {
	backing := make([]*Item, n)
	for i := range backing {
		backing[i] = NewItem(fmt.Sprintf("row %d", i))
	}
	return backing
}

func TestEnableVirtualValidation(t *testing.T) {
	fetch := backingFetcher(virtualBacking(3))

	lv := New(ViewDetails)
	require.ErrorIs(t, lv.EnableVirtual(3, nil), ErrNilFetcher)
	require.ErrorIs(t, lv.EnableVirtual(-1, fetch), ErrNegativeSize)

	lv.AddGroup("G")
	require.ErrorIs(t, lv.EnableVirtual(3, fetch), ErrGroupedVirtual)

	lv = New(ViewDetails)
	lv.AddItem("a")
	require.ErrorIs(t, lv.EnableVirtual(3, fetch), ErrItemsPresent)

	lv = New(ViewDetails)
	require.NoError(t, lv.EnableVirtual(3, fetch))
	require.True(t, lv.Virtual())
	require.Equal(t, 3, lv.Len())
}

func TestVirtualItemAtAdoptsItem(t *testing.T) {
	backing := virtualBacking(4)
	lv := New(ViewDetails)
	require.NoError(t, lv.EnableVirtual(4, backingFetcher(backing)))

	it := lv.ItemAt(2)
	require.Same(t, backing[2], it)
	require.Equal(t, lv, it.Owner())
	require.True(t, it.IsVirtual())
	require.Equal(t, 2, it.Index())
	require.True(t, lv.IsVisible(it))
}

func TestVirtualFetchOutOfRangePanics(t *testing.T) {
	lv := New(ViewDetails)
	require.NoError(t, lv.EnableVirtual(2, backingFetcher(virtualBacking(2))))

	require.Panics(t, func() { lv.ItemAt(2) })
	require.Panics(t, func() { lv.ItemAt(-1) })
}

func TestVirtualSizeShrinkHidesTail(t *testing.T) {
	backing := virtualBacking(5)
	lv := New(ViewDetails)
	require.NoError(t, lv.EnableVirtual(5, backingFetcher(backing)))

	tail := lv.ItemAt(4)
	require.True(t, lv.IsVisible(tail))

	require.NoError(t, lv.SetVirtualSize(3))
	require.False(t, lv.IsVisible(tail))
	require.ErrorIs(t, lv.SetVirtualSize(-1), ErrNegativeSize)
}

func TestDisableVirtual(t *testing.T) {
	lv := New(ViewDetails)
	require.NoError(t, lv.EnableVirtual(2, backingFetcher(virtualBacking(2))))

	lv.DisableVirtual()
	require.False(t, lv.Virtual())
	require.Equal(t, 0, lv.Len())
	require.Nil(t, lv.ItemAt(0))
}
