package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/adapters/backend"
	"encyclopedia/internal/adapters/clipboard"
	"encyclopedia/internal/adapters/editor"
	"encyclopedia/internal/adapters/obsidian"
	"encyclopedia/internal/adapters/tui"
	"encyclopedia/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.Entries, "entries", cfg.Entries, "directory holding entry files")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend: filesystem or sqlite")
	flag.StringVar(&cfg.Database, "db", cfg.Database, "database path for the sqlite backend")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to encyclopedia-debug.log")
	vault := flag.String("vault", "", "Obsidian vault containing the entries directory (default: the entries directory)")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if cfg.Debug {
		// The TUI owns the terminal, so logs go to a file
		f, err := tea.LogToFile("encyclopedia-debug.log", "")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = cfg.NewLogger(f)
	}

	opened, err := backend.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer opened.Close()

	opts := tui.Options{
		Editor:    editor.NewOpener(),
		Clipboard: clipboard.System{},
		Logger:    logger,
	}

	if files := opened.Files; files != nil {
		var obsidianOpts []obsidian.Option
		if *vault != "" {
			obsidianOpts = append(obsidianOpts, obsidian.WithVault(*vault))
		}
		opts.Obsidian = obsidian.NewOpener(files.Dir(), obsidianOpts...)

		watcher, err := files.Watch()
		if err != nil {
			logger.Warn("live reload disabled", "err", err)
		} else {
			defer watcher.Close()
			opts.Changes = watcher.Changes()
		}
	}

	app := tui.NewApp(opened.Store, opts)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
