// Package backend opens the EntryStore selected by configuration.
package backend

import (
	"fmt"
	"log/slog"

	"encyclopedia/internal/adapters/filesystem"
	"encyclopedia/internal/adapters/sqlite"
	"encyclopedia/internal/config"
	"encyclopedia/internal/ports"
)

// Opened is a configured store plus whatever must happen on shutdown
type Opened struct {
	Store ports.EntryStore
	// Files is set for the filesystem backend, which supports watching
	// and addressing entries by path.
	Files *filesystem.Store
	close func() error
}

// Close releases the store's resources
func (o *Opened) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

// Open builds the store for cfg.Backend
func Open(cfg config.Config, logger *slog.Logger) (*Opened, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := sqlite.Open(cfg.Database, sqlite.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		logger.Debug("opened store", "backend", cfg.Backend, "path", store.Path())
		return &Opened{Store: store, close: store.Close}, nil

	case config.BackendFilesystem:
		store := filesystem.NewStore(cfg.Entries, filesystem.WithLogger(logger))
		logger.Debug("opened store", "backend", cfg.Backend, "path", store.Dir())
		return &Opened{Store: store, Files: store}, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
