package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEntriesPath = "~/Documents/encyclopedia"
	DefaultBackend     = BackendFilesystem
)

// Storage backends
const (
	BackendFilesystem = "filesystem"
	BackendSQLite     = "sqlite"
)

// Environment variables
const (
	EnvEntries  = "ENCYCLOPEDIA_ENTRIES"
	EnvBackend  = "ENCYCLOPEDIA_BACKEND"
	EnvDatabase = "ENCYCLOPEDIA_DB"
	EnvDebug    = "ENCYCLOPEDIA_DEBUG"
	EnvConfig   = "ENCYCLOPEDIA_CONFIG"
)

// Config holds the settings shared by the TUI, CLI, and MCP server
type Config struct {
	Entries  string `yaml:"entries"`  // Directory of <title>.md files
	Backend  string `yaml:"backend"`  // filesystem or sqlite
	Database string `yaml:"database"` // SQLite file, used by the sqlite backend
	Debug    bool   `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Entries:  DefaultEntriesPath,
		Backend:  DefaultBackend,
		Database: DefaultDatabasePath(),
	}
}

// Load builds the configuration from defaults, the config file, and the
// environment, in increasing order of precedence. A missing config file is
// not an error.
func Load() (Config, error) {
	cfg := Default()

	if err := cfg.mergeFile(FilePath()); err != nil {
		return cfg, err
	}
	cfg.mergeEnv()

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can be used to open a store
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFilesystem:
		if c.Entries == "" {
			return fmt.Errorf("entries path is required for the %s backend", c.Backend)
		}
	case BackendSQLite:
		if c.Database == "" {
			return fmt.Errorf("database path is required for the %s backend", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q (expected %s or %s)", c.Backend, BackendFilesystem, BackendSQLite)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.Entries != "" {
		c.Entries = file.Entries
	}
	if file.Backend != "" {
		c.Backend = file.Backend
	}
	if file.Database != "" {
		c.Database = file.Database
	}
	c.Debug = c.Debug || file.Debug
	return nil
}

func (c *Config) mergeEnv() {
	if env := os.Getenv(EnvEntries); env != "" {
		c.Entries = env
	}
	if env := os.Getenv(EnvBackend); env != "" {
		c.Backend = strings.ToLower(env)
	}
	if env := os.Getenv(EnvDatabase); env != "" {
		c.Database = env
	}
	if env := os.Getenv(EnvDebug); env != "" {
		if debug, err := strconv.ParseBool(env); err == nil {
			c.Debug = debug
		}
	}
}

// FilePath returns the config file location: $ENCYCLOPEDIA_CONFIG, or
// config.yaml under the XDG config directory
func FilePath() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "encyclopedia", "config.yaml")
}

// DefaultDatabasePath returns the SQLite database path under the XDG data directory
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "encyclopedia", "entries.db")
}
