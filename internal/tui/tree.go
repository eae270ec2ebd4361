package tui

import (
	"fmt"
	"strings"

	"github.com/treeline-ui/treeline/internal/listview"
	"github.com/treeline-ui/treeline/internal/tui/styles"
	"github.com/treeline-ui/treeline/internal/uia"
)

// renderTree draws the accessibility tree rooted at the list view. The
// walk uses fragment navigation only, so what the pane shows is exactly
// what an assistive client would see: an unmounted control renders as a
// root with no reachable siblings below the first child chain.
func renderTree(lv *listview.ListView, cursor uia.Fragment, matched map[*listview.Item]bool) string {
	root, err := uia.Root(lv)
	if err != nil {
		return styles.ErrorStyle.Render(err.Error())
	}

	var b strings.Builder
	walkFragment(&b, root, 0, cursor, matched)
	return b.String()
}

func walkFragment(b *strings.Builder, f uia.Fragment, depth int, cursor uia.Fragment, matched map[*listview.Item]bool) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(fragmentLine(f, f == cursor, matched))
	b.WriteString("\n")

	child, ok := f.Navigate(uia.DirFirstChild)
	for ok {
		walkFragment(b, child, depth+1, cursor, matched)
		child, ok = child.Navigate(uia.DirNextSibling)
	}
}

// fragmentLine formats one tree row: control type, name, automation id
// and the item state markers.
func fragmentLine(f uia.Fragment, isCursor bool, matched map[*listview.Item]bool) string {
	label := f.Name()
	if f.Kind() == uia.KindGroup && f.IsDefaultGroup() {
		label = "(default)"
	}
	if label == "" {
		label = "(unnamed)"
	}

	var marks []string
	if f.Kind() == uia.KindItem {
		it := f.Item()
		if f.IsPatternSupported(uia.PatternToggle) {
			if f.ToggleState() == uia.ToggleOn {
				marks = append(marks, styles.CheckedBox)
			} else {
				marks = append(marks, styles.UncheckedBox)
			}
		}
		if f.State().Has(uia.StateSelected) {
			marks = append(marks, styles.AccentStyle.Render("selected"))
		}
		if matched[it] {
			label = styles.MatchStyle.Render(label)
		}
	}
	if f.Kind() == uia.KindGroup && !f.Expanded() {
		marks = append(marks, styles.DimStyle.Render("collapsed"))
	}

	line := fmt.Sprintf("%s %s", f.ControlType(), label)
	if len(marks) > 0 {
		line += " " + strings.Join(marks, " ")
	}
	line += " " + styles.DimStyle.Render(f.AutomationID())

	switch {
	case isCursor:
		return styles.CursorStyle.Render(line)
	case f.Kind() == uia.KindGroup:
		return styles.GroupStyle.Render(line)
	default:
		return styles.NodeStyle.Render(line)
	}
}
