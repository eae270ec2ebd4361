package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds inspector UI configuration
type UIConfig struct {
	DefaultView string `mapstructure:"default_view"` // Details, LargeIcon, SmallIcon, List, Tile
	ShowGroups  bool   `mapstructure:"show_groups"`
	CheckBoxes  bool   `mapstructure:"check_boxes"`
	Scenario    string `mapstructure:"scenario"` // Scenario loaded at startup
}

// StoreConfig holds scenario store configuration
type StoreConfig struct {
	Dir string `mapstructure:"dir"` // Empty means memory-only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultView: "Details",
			ShowGroups:  true,
			CheckBoxes:  true,
		},
		Store: StoreConfig{
			Dir: defaultDataPath(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "treeline", "treeline.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "treeline", "treeline.log")
	}
}

// defaultDataPath returns the default scenario store directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "treeline", "data")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "treeline", "data")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "treeline")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "treeline")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("TREELINE")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("ui.default_view", cfg.UI.DefaultView)
	viper.Set("ui.show_groups", cfg.UI.ShowGroups)
	viper.Set("ui.check_boxes", cfg.UI.CheckBoxes)
	viper.Set("ui.scenario", cfg.UI.Scenario)

	viper.Set("store.dir", cfg.Store.Dir)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
