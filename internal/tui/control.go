package tui

import (
	"strings"

	"github.com/treeline-ui/treeline/internal/listview"
	"github.com/treeline-ui/treeline/internal/tui/styles"
)

// renderControl draws the list control the way a user would see it:
// group headers when grouping is active, check boxes when the view
// supports them, selection highlight, sub-item columns in Details view.
func renderControl(lv *listview.ListView) string {
	var b strings.Builder

	title := lv.View().String()
	if !lv.Mounted() {
		title += " " + styles.DimStyle.Render("(unmounted)")
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	if lv.Len() == 0 {
		b.WriteString(styles.DimStyle.Render("(empty)"))
		return b.String()
	}

	if lv.GroupsActive() {
		renderGroupSection(&b, lv, nil, "(default)")
		for _, g := range lv.Groups() {
			renderGroupSection(&b, lv, g, g.Header())
		}
		return b.String()
	}

	for i := 0; i < lv.Len(); i++ {
		b.WriteString(itemRow(lv, lv.ItemAt(i)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderGroupSection(b *strings.Builder, lv *listview.ListView, g *listview.Group, header string) {
	members := lv.VisibleMembers(g)
	if len(members) == 0 {
		return
	}

	head := styles.GroupStyle.Render(header)
	if g != nil && g.Collapsed() {
		head += " " + styles.DimStyle.Render("▸")
		b.WriteString(head)
		b.WriteString("\n")
		return
	}
	b.WriteString(head)
	b.WriteString("\n")

	for _, it := range members {
		b.WriteString("  ")
		b.WriteString(itemRow(lv, it))
		b.WriteString("\n")
	}
}

func itemRow(lv *listview.ListView, it *listview.Item) string {
	var parts []string

	if lv.CheckBoxes() && lv.View().SupportsCheckBoxes() {
		if it.Checked() {
			parts = append(parts, styles.CheckedBox)
		} else {
			parts = append(parts, styles.UncheckedBox)
		}
	}

	parts = append(parts, it.Label())

	if lv.View() == listview.ViewDetails {
		for _, sub := range it.SubItems() {
			parts = append(parts, styles.SubtitleStyle.Render(sub.Text()))
		}
	}

	row := strings.Join(parts, "  ")
	if it.Selected() {
		return styles.CursorStyle.Render(row)
	}
	return styles.NodeStyle.Render(row)
}
