package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treeline-ui/treeline/internal/adapter"
	"github.com/treeline-ui/treeline/internal/listview"
	"github.com/treeline-ui/treeline/internal/search"
	"github.com/treeline-ui/treeline/internal/store"
	"github.com/treeline-ui/treeline/internal/tui/styles"
	"github.com/treeline-ui/treeline/internal/uia"
)

// InputMode represents what the text input line is collecting
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeFilter
	ModeSave
)

// viewCycle is the order the view key steps through.
var viewCycle = []listview.View{
	listview.ViewDetails,
	listview.ViewLargeIcon,
	listview.ViewSmallIcon,
	listview.ViewList,
	listview.ViewTile,
}

// Model is the main Bubble Tea model for the inspector
type Model struct {
	cfg    *adapter.Config
	logger *slog.Logger
	store  *store.ScenarioStore

	list   *listview.ListView
	cursor uia.Fragment

	mode    InputMode
	input   textinput.Model
	matched map[*listview.Item]bool

	showHelp bool
	status   string
	width  int
	height int
}

// NewModel builds the inspector model around an already constructed
// list view. The bounds delegate maps each visible item to a synthetic
// one-row rectangle so the geometry pane has something to show.
func NewModel(lv *listview.ListView, cfg *adapter.Config, st *store.ScenarioStore, logger *slog.Logger) Model {
	if logger == nil {
		logger = adapter.NullLogger()
	}

	lv.SetBoundsDelegate(func(it *listview.Item) listview.Rect {
		i := lv.IndexOf(it)
		if i < 0 {
			return listview.Rect{}
		}
		return listview.Rect{X: 0, Y: i, W: 40, H: 1}
	})

	input := textinput.New()
	input.Prompt = "/"
	input.CharLimit = 64

	root, _ := uia.Root(lv)
	return Model{
		cfg:    cfg,
		logger: logger,
		store:  st,
		list:   lv,
		cursor: root,
		input:  input,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode != ModeNormal {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleInputKey feeds keystrokes into the filter or save prompt.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		m.matched = nil
		return m, nil

	case msg.Type == tea.KeyEnter:
		value := m.input.Value()
		mode := m.mode
		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		if mode == ModeSave {
			return m.saveScenario(value), nil
		}
		// Filter highlights persist until escape.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == ModeFilter {
		m.matched = m.runFilter(m.input.Value())
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Up):
		return m.moveCursor(uia.DirPrevSibling), nil
	case key.Matches(msg, Keys.Down):
		return m.moveCursor(uia.DirNextSibling), nil
	case key.Matches(msg, Keys.Left):
		return m.moveCursor(uia.DirParent), nil
	case key.Matches(msg, Keys.Right):
		return m.moveCursor(uia.DirFirstChild), nil
	case key.Matches(msg, Keys.End):
		return m.moveCursor(uia.DirLastChild), nil
	case key.Matches(msg, Keys.Home):
		if root, err := uia.Root(m.list); err == nil {
			m.cursor = root
		}
		return m, nil

	case key.Matches(msg, Keys.Toggle):
		m.cursor.Toggle()
		return m, nil

	case key.Matches(msg, Keys.Select):
		if it := m.cursor.Item(); it != nil && m.cursor.Kind() == uia.KindItem {
			it.SetSelected(!it.Selected())
			it.SetFocused(it.Selected())
		}
		return m, nil

	case key.Matches(msg, Keys.Collapse):
		if m.cursor.Kind() == uia.KindGroup {
			if m.cursor.Expanded() {
				m.cursor.Collapse()
			} else {
				m.cursor.Expand()
			}
		}
		return m, nil

	case key.Matches(msg, Keys.CycleView):
		m.list.SetView(nextView(m.list.View()))
		m.status = "view: " + m.list.View().String()
		return m.reanchor(), nil

	case key.Matches(msg, Keys.Groups):
		m.list.SetShowGroups(!m.list.ShowGroups())
		m.status = fmt.Sprintf("grouping: %t (active: %t)", m.list.ShowGroups(), m.list.GroupsActive())
		return m.reanchor(), nil

	case key.Matches(msg, Keys.Mount):
		if m.list.Mounted() {
			m.list.Unmount()
			m.status = "unmounted"
		} else {
			m.list.Mount()
			m.status = "mounted"
		}
		return m, nil

	case key.Matches(msg, Keys.CheckBoxes):
		m.list.SetCheckBoxes(!m.list.CheckBoxes())
		m.status = fmt.Sprintf("check boxes: %t", m.list.CheckBoxes())
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.mode = ModeFilter
		m.input.Prompt = "/"
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, Keys.Save):
		m.mode = ModeSave
		m.input.Prompt = "save as: "
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, Keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}
	return m, nil
}

// moveCursor follows one navigation direction, leaving the cursor in
// place when the tree has nothing in that direction.
func (m Model) moveCursor(dir uia.Direction) Model {
	if next, ok := m.cursor.Navigate(dir); ok {
		m.cursor = next
	}
	return m
}

// reanchor resets the cursor to the root. Structural mutations such as
// a grouping toggle can leave the cursor on a fragment whose parent
// chain has changed shape.
func (m Model) reanchor() Model {
	if root, err := uia.Root(m.list); err == nil {
		m.cursor = root
	}
	return m
}

func nextView(v listview.View) listview.View {
	for i, cur := range viewCycle {
		if cur == v {
			return viewCycle[(i+1)%len(viewCycle)]
		}
	}
	return listview.ViewDetails
}

// runFilter highlights visible items whose labels fuzzily match the
// query. When the subsequence matcher comes up empty the edit-distance
// ranker takes over, so a typoed query still finds its target.
func (m Model) runFilter(query string) map[*listview.Item]bool {
	if query == "" {
		return nil
	}
	idx := search.NewLabelIndex(m.list)
	matched := make(map[*listview.Item]bool)

	hits := idx.Filter(query)
	if len(hits) > 0 {
		for _, hit := range hits {
			matched[idx.Item(hit.Index)] = true
		}
		return matched
	}

	labels := make([]string, idx.Len())
	byLabel := make(map[string][]*listview.Item)
	for i := 0; i < idx.Len(); i++ {
		labels[i] = idx.String(i)
		byLabel[labels[i]] = append(byLabel[labels[i]], idx.Item(i))
	}
	for _, label := range search.Rank(query, labels) {
		for _, it := range byLabel[label] {
			matched[it] = true
		}
	}
	return matched
}

func (m Model) saveScenario(name string) Model {
	if m.store == nil {
		m.status = "no store configured"
		return m
	}
	sc := store.Snapshot(name, m.list)
	if err := m.store.Save(sc); err != nil {
		m.status = "save failed: " + err.Error()
		m.logger.Error("scenario save failed", "name", name, "error", err)
		return m
	}
	m.status = "saved scenario " + name
	m.logger.Info("scenario saved", "name", name, "items", m.list.Len())
	return m
}

func (m Model) View() string {
	control := styles.ControlPanelStyle.Render(renderControl(m.list))
	tree := styles.TreePanelStyle.Render(renderTree(m.list, m.cursor, m.matched))
	inspector := styles.InspectorPanelStyle.Render(renderInspector(m.cursor))

	if m.width > 0 {
		control = lipgloss.NewStyle().Width(m.width * 30 / 100).Render(control)
		tree = lipgloss.NewStyle().Width(m.width * 40 / 100).Render(tree)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, control, tree, inspector)

	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderFooter() string {
	if m.mode != ModeNormal {
		return m.input.View()
	}

	help := styles.DimStyle.Render("? help · q quit")
	if m.showHelp {
		help = styles.DimStyle.Render(
			"hjkl navigate · space toggle · enter select · v view · o groups · m mount · c checks · z collapse · / filter · s save · ? help · q quit",
		)
	}
	if m.status != "" {
		return styles.SuccessStyle.Render(m.status) + "  " + help
	}
	return help
}
