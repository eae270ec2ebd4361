package listview

import "errors"

// Sentinel errors for list-view model operations
var (
	// ErrNilItem indicates an operation was attempted on a nil item
	ErrNilItem = errors.New("item is nil")

	// ErrNilFetcher indicates virtual mode was enabled without a fetch callback
	ErrNilFetcher = errors.New("virtual mode requires a fetch callback")

	// ErrNegativeSize indicates a negative virtual item count
	ErrNegativeSize = errors.New("virtual item count cannot be negative")

	// ErrGroupedVirtual indicates virtual mode was requested while user groups exist
	ErrGroupedVirtual = errors.New("virtual mode cannot be enabled on a grouped list view")

	// ErrItemsPresent indicates virtual mode was requested on a populated list view
	ErrItemsPresent = errors.New("virtual mode requires an empty item collection")

	// ErrForeignGroup indicates the group belongs to a different list view
	ErrForeignGroup = errors.New("group belongs to a different list view")
)
