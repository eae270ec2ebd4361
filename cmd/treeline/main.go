package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treeline-ui/treeline/internal/adapter"
	"github.com/treeline-ui/treeline/internal/listview"
	"github.com/treeline-ui/treeline/internal/store"
	"github.com/treeline-ui/treeline/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var scenarioName string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&scenarioName, "scenario", "", "scenario to load at startup")
	flag.Parse()

	if showVersion {
		fmt.Printf("treeline %s\n", Version)
		return
	}

	if err := run(scenarioName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioName string) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting treeline", "version", Version)

	st, err := store.NewScenarioStore(cfg.Store.Dir)
	if err != nil {
		return fmt.Errorf("failed to open scenario store: %w", err)
	}
	defer st.Close()

	lv, err := loadListView(cfg, st, scenarioName, logger)
	if err != nil {
		return err
	}

	model := tui.NewModel(lv, cfg, st, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// loadListView builds the startup list view: the requested scenario if
// stored, otherwise the built-in sample shaped by config defaults.
func loadListView(cfg *adapter.Config, st *store.ScenarioStore, name string, logger *slog.Logger) (*listview.ListView, error) {
	if name == "" {
		name = cfg.UI.Scenario
	}

	if name != "" {
		if sc, ok := st.Get(name); ok {
			logger.Info("loaded scenario", "name", name, "items", len(sc.Items))
			return sc.Build()
		}
		logger.Warn("scenario not found, using sample", "name", name)
	}

	sc := store.Sample()
	sc.View = cfg.UI.DefaultView
	sc.ShowGroups = cfg.UI.ShowGroups
	sc.CheckBoxes = cfg.UI.CheckBoxes
	return sc.Build()
}
