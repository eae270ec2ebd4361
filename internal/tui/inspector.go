package tui

import (
	"fmt"
	"strings"

	"github.com/treeline-ui/treeline/internal/tui/styles"
	"github.com/treeline-ui/treeline/internal/uia"
)

var inspectorPatterns = []uia.Pattern{
	uia.PatternSelectionItem,
	uia.PatternScrollItem,
	uia.PatternInvoke,
	uia.PatternToggle,
	uia.PatternExpandCollapse,
}

// renderInspector draws the property pane for the cursor fragment.
func renderInspector(f uia.Fragment) string {
	if f.IsZero() {
		return styles.DimStyle.Render("no fragment selected")
	}

	var b strings.Builder
	row := func(key, value string) {
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%-14s", key)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(styles.TitleStyle.Render("Properties"))
	b.WriteString("\n")
	row("Name", f.Name())
	row("AutomationId", f.AutomationID())
	row("ControlType", f.ControlType().String())

	if f.Kind() == uia.KindItem {
		row("State", f.State().String())
		if f.IsPatternSupported(uia.PatternToggle) {
			row("ToggleState", f.ToggleState().String())
		}
	}
	if f.Kind() == uia.KindGroup {
		if f.Expanded() {
			row("ExpandState", "Expanded")
		} else {
			row("ExpandState", "Collapsed")
		}
	}

	rect := f.BoundingRectangle()
	if rect.Empty() {
		row("BoundingRect", styles.DimStyle.Render("empty"))
	} else {
		row("BoundingRect", fmt.Sprintf("(%d,%d) %dx%d", rect.X, rect.Y, rect.W, rect.H))
	}

	var supported []string
	for _, p := range inspectorPatterns {
		if f.IsPatternSupported(p) {
			supported = append(supported, p.String())
		}
	}
	if len(supported) == 0 {
		row("Patterns", styles.DimStyle.Render("none"))
	} else {
		row("Patterns", strings.Join(supported, ", "))
	}

	b.WriteString("\n")
	b.WriteString(styles.TitleStyle.Render("Control"))
	b.WriteString("\n")
	lv := f.Owner()
	row("View", lv.View().String())
	row("Items", fmt.Sprintf("%d", lv.Len()))
	row("Groups", fmt.Sprintf("%d", len(lv.Groups())))
	row("GroupsActive", fmt.Sprintf("%t", lv.GroupsActive()))
	row("CheckBoxes", fmt.Sprintf("%t", lv.CheckBoxes()))
	row("Mounted", fmt.Sprintf("%t", lv.Mounted()))
	row("Virtual", fmt.Sprintf("%t", lv.Virtual()))

	return b.String()
}
