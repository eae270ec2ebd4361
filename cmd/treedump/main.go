package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/treeline-ui/treeline/internal/adapter"
	"github.com/treeline-ui/treeline/internal/store"
	"github.com/treeline-ui/treeline/internal/uia"
)

var (
	typeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	idStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func main() {
	var scenarioName string
	var listAll bool
	flag.StringVar(&scenarioName, "scenario", "", "scenario to dump (default: built-in sample)")
	flag.BoolVar(&listAll, "list", false, "list stored scenarios")
	flag.Parse()

	if err := run(scenarioName, listAll); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioName string, listAll bool) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.NewScenarioStore(cfg.Store.Dir)
	if err != nil {
		return fmt.Errorf("failed to open scenario store: %w", err)
	}
	defer st.Close()

	if listAll {
		for _, name := range st.List() {
			fmt.Println(name)
		}
		return nil
	}

	sc := store.Sample()
	if scenarioName != "" {
		loaded, ok := st.Get(scenarioName)
		if !ok {
			return fmt.Errorf("scenario %q not found", scenarioName)
		}
		sc = loaded
	}

	lv, err := sc.Build()
	if err != nil {
		return fmt.Errorf("failed to build scenario: %w", err)
	}

	root, err := uia.Root(lv)
	if err != nil {
		return err
	}

	// Plain output when piped, styled when on a terminal.
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	dump(root, 0, styled)
	return nil
}

// dump walks the fragment tree depth first using navigation only, so
// the output matches what an assistive client can actually reach.
func dump(f uia.Fragment, depth int, styled bool) {
	indent := strings.Repeat("  ", depth)

	ctype := f.ControlType().String()
	id := f.AutomationID()
	if styled {
		ctype = typeStyle.Render(ctype)
		id = idStyle.Render(id)
	}

	name := f.Name()
	if name == "" {
		name = "(unnamed)"
	}

	extra := describe(f)
	if styled && extra != "" {
		extra = idStyle.Render(extra)
	}
	fmt.Printf("%s%s %q %s%s\n", indent, ctype, name, id, extra)

	child, ok := f.Navigate(uia.DirFirstChild)
	for ok {
		dump(child, depth+1, styled)
		child, ok = child.Navigate(uia.DirNextSibling)
	}
}

var dumpPatterns = []uia.Pattern{
	uia.PatternSelectionItem,
	uia.PatternScrollItem,
	uia.PatternInvoke,
	uia.PatternToggle,
	uia.PatternExpandCollapse,
}

// describe summarizes state and supported patterns for one node.
func describe(f uia.Fragment) string {
	var cols []string

	if f.Kind() == uia.KindItem {
		cols = append(cols, "state="+f.State().String())
		if f.IsPatternSupported(uia.PatternToggle) {
			cols = append(cols, "toggle="+f.ToggleState().String())
		}
	}

	var supported []string
	for _, p := range dumpPatterns {
		if f.IsPatternSupported(p) {
			supported = append(supported, p.String())
		}
	}
	if len(supported) > 0 {
		cols = append(cols, "patterns="+strings.Join(supported, ","))
	}

	if len(cols) == 0 {
		return ""
	}
	return "  " + strings.Join(cols, "  ")
}
