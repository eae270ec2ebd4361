package listview

// View selects the display arrangement of a list view.
type View int

const (
	ViewDetails View = iota
	ViewLargeIcon
	ViewSmallIcon
	ViewList
	ViewTile
)

// String returns a human-readable representation of the view kind
func (v View) String() string {
	switch v {
	case ViewDetails:
		return "Details"
	case ViewLargeIcon:
		return "LargeIcon"
	case ViewSmallIcon:
		return "SmallIcon"
	case ViewList:
		return "List"
	case ViewTile:
		return "Tile"
	default:
		return "Unknown"
	}
}

// SupportsGroups reports whether this view kind displays group headers.
// The simple List view always lays items out flat, even when items carry
// a group assignment.
func (v View) SupportsGroups() bool {
	return v != ViewList
}

// SupportsCheckBoxes reports whether this view kind can display check
// boxes. Tile view has no check box affordance.
func (v View) SupportsCheckBoxes() bool {
	return v != ViewTile
}

// ParseView converts a view name back to a View. Unknown names map to
// ViewDetails.
func ParseView(name string) View {
	switch name {
	case "LargeIcon":
		return ViewLargeIcon
	case "SmallIcon":
		return ViewSmallIcon
	case "List":
		return ViewList
	case "Tile":
		return ViewTile
	default:
		return ViewDetails
	}
}
