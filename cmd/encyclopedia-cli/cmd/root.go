package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"encyclopedia/internal/adapters/backend"
	"encyclopedia/internal/config"
	"encyclopedia/internal/ports"
)

var (
	entriesPath string
	backendName string
	dbPath      string
	verbose     bool

	opened *backend.Opened
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "encyclopedia-cli",
	Short: "CLI for an encyclopedia of markdown entries",
	Long: `encyclopedia-cli reads and writes a wiki of markdown entries, one per
title. Titles are matched case-insensitively and keep the casing they were
saved with.

Configuration is read from $ENCYCLOPEDIA_CONFIG or
$XDG_CONFIG_HOME/encyclopedia/config.yaml, then ENCYCLOPEDIA_* environment
variables, then flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger = cfg.NewLogger(cmd.ErrOrStderr())
		opened, err = backend.Open(cfg, logger)
		return err
	},
}

// closeStore runs after every command, including ones that failed
func closeStore() {
	if opened == nil {
		return
	}
	if err := opened.Close(); err != nil {
		logger.Error("failed to close store", "error", err)
	}
	opened = nil
}

// loadConfig layers explicitly set flags over the file and environment
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("entries") {
		cfg.Entries = entriesPath
	}
	if flags.Changed("backend") {
		cfg.Backend = backendName
	}
	if flags.Changed("db") {
		cfg.Database = dbPath
	}
	if verbose {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnFinalize(closeStore)

	defaults := config.Default()
	rootCmd.PersistentFlags().StringVarP(&entriesPath, "entries", "e", defaults.Entries, "directory holding entry files")
	rootCmd.PersistentFlags().StringVarP(&backendName, "backend", "b", defaults.Backend, "storage backend: filesystem or sqlite")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaults.Database, "database path for the sqlite backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// GetStore returns the initialized entry store
func GetStore() ports.EntryStore {
	return opened.Store
}
