package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.EntryStore on a single SQLite table.
// Each row is one entry: the title is the key and the body is stored as-is.
type Store struct {
	db     *sql.DB
	dbPath string
	logger *slog.Logger
}

// Ensure Store implements EntryStore
var _ ports.EntryStore = (*Store)(nil)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for write diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open opens or creates the database at dbPath
func Open(dbPath string, opts ...Option) (*Store, error) {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	s := &Store{
		dbPath: dbPath,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS entries (
			title TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
	`, schemaVersion)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return s, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ListTitles returns all titles in byte-wise order
func (s *Store) ListTitles() ([]string, error) {
	rows, err := s.db.Query(`SELECT title FROM entries ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}

	return titles, rows.Err()
}

// GetBody returns the body stored under exactly title
func (s *Store) GetBody(title string) (string, bool, error) {
	if domain.ValidateTitle(title) != nil {
		return "", false, nil
	}

	var body string
	err := s.db.QueryRow(`SELECT body FROM entries WHERE title = ?`, title).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read entry %q: %w", title, err)
	}

	return body, true, nil
}

// Save upserts the entry and drops rows for other case variants of title
// in the same transaction.
func (s *Store) Save(title, body string) error {
	if err := domain.ValidateTitle(title); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	variants, err := caseVariants(tx, title)
	if err != nil {
		return err
	}
	for _, other := range variants {
		if _, err := tx.Exec(`DELETE FROM entries WHERE title = ?`, other); err != nil {
			return fmt.Errorf("failed to replace entry %q: %w", other, err)
		}
		s.logger.Debug("replaced case variant", "title", title, "replaced", other)
	}

	_, err = tx.Exec(`
		INSERT INTO entries (title, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, title, body, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write entry %q: %w", title, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entry %q: %w", title, err)
	}

	s.logger.Debug("saved entry", "title", title, "bytes", len(body))
	return nil
}

// caseVariants returns stored titles equal to title ignoring case, except title itself.
// Matching happens in Go so case folding agrees with the resolver.
func caseVariants(tx *sql.Tx, title string) ([]string, error) {
	rows, err := tx.Query(`SELECT title FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var existing string
		if err := rows.Scan(&existing); err != nil {
			return nil, err
		}
		if existing != title && domain.SameTitle(existing, title) {
			variants = append(variants, existing)
		}
	}

	return variants, rows.Err()
}
