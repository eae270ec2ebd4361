package uia

import "errors"

// Sentinel errors for fragment construction
var (
	// ErrNilListView indicates a root fragment was requested for a nil control
	ErrNilListView = errors.New("list view is nil")

	// ErrNilItem indicates an item fragment was requested for a nil item
	ErrNilItem = errors.New("item is nil")

	// ErrNilSubItem indicates a sub-item fragment was requested for a nil sub-item
	ErrNilSubItem = errors.New("sub-item is nil")

	// ErrNilGroup indicates a group fragment was requested for a nil user group
	ErrNilGroup = errors.New("group is nil")

	// ErrDetached indicates the entity has no owning list view, so no
	// navigation context exists for it
	ErrDetached = errors.New("entity is not attached to a list view")
)
