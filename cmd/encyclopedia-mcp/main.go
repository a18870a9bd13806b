package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"encyclopedia/internal/adapters/backend"
	mcpadapter "encyclopedia/internal/adapters/mcp"
	"encyclopedia/internal/config"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "encyclopedia-mcp: %v\n", err)
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
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug output")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr
	logger := cfg.NewLogger(os.Stderr)

	opened, err := backend.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer opened.Close()

	s := mcpadapter.NewServer("encyclopedia-mcp", version, opened.Store, logger)

	logger.Info("serving", "backend", cfg.Backend)
	return server.ServeStdio(s)
}
