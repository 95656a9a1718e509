package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Backend names understood by internal/storage
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Timer   TimerConfig   `toml:"timer"`
}

// StorageConfig selects where tasks are persisted
type StorageConfig struct {
	Backend    string `toml:"backend"`
	Path       string `toml:"path"`
	SQLitePath string `toml:"sqlite_path"`
}

// LogConfig holds logging configuration. An empty path discards logs,
// since the terminal belongs to the UI.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// TimerConfig holds the countdown presets in minutes
type TimerConfig struct {
	Presets []int `toml:"presets"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Storage: StorageConfig{
			Backend:    BackendJSON,
			Path:       "todos.json",
			SQLitePath: filepath.Join(homeDir, ".config", "todo-tui", "todos.db"),
		},
		Log: LogConfig{
			Level: "info",
		},
		Timer: TimerConfig{
			Presets: []int{15, 30, 60},
		},
	}
}

// Path returns the standard config file location
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(homeDir, ".config", "todo-tui", "config.toml"), nil
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// No config file, return defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	cfg.Storage.SQLitePath = expandPath(cfg.Storage.SQLitePath)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks the values a config file may have overridden
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the json backend")
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if len(c.Timer.Presets) == 0 {
		return fmt.Errorf("timer.presets must not be empty")
	}
	for _, p := range c.Timer.Presets {
		if p <= 0 {
			return fmt.Errorf("timer preset %d must be positive", p)
		}
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
