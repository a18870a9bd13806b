package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/natefinch/atomic"

	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Store implements ports.EntryStore as a flat directory of markdown files.
// Each entry is stored as <title>.md with the raw body as contents.
type Store struct {
	dir    string
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

// NewStore creates a store rooted at dir
func NewStore(dir string, opts ...Option) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}

	s := &Store{
		dir:    dir,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the entries directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file that holds the entry with the given title
func (s *Store) Path(title string) string {
	return filepath.Join(s.dir, domain.FileName(title))
}

// ListTitles returns the titles of all *.md files in the entries directory
func (s *Store) ListTitles() ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(s.dir), "*"+domain.EntryExt,
		doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	titles := make([]string, 0, len(matches))
	for _, name := range matches {
		if title, ok := domain.TitleFromFileName(name); ok {
			titles = append(titles, title)
		}
	}
	sort.Strings(titles)

	return titles, nil
}

// GetBody reads the entry stored under exactly title.
// Only listed titles are read, which keeps lookups inside the entries
// directory and case-sensitive on case-insensitive filesystems. Files whose
// names Save would reject are still readable.
func (s *Store) GetBody(title string) (string, bool, error) {
	titles, err := s.ListTitles()
	if err != nil {
		return "", false, err
	}
	if !slices.Contains(titles, title) {
		return "", false, nil
	}

	data, err := os.ReadFile(s.Path(title))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read entry %q: %w", title, err)
	}

	return string(data), true, nil
}

// Save atomically writes body to <title>.md and removes files of other
// case variants of title, so a single entry remains.
func (s *Store) Save(title, body string) error {
	if err := domain.ValidateTitle(title); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, dirPerms); err != nil {
		return fmt.Errorf("failed to create entries directory: %w", err)
	}

	existing, err := s.ListTitles()
	if err != nil {
		return err
	}

	path := s.Path(title)
	if err := atomic.WriteFile(path, strings.NewReader(body)); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", title, err)
	}

	// atomic.WriteFile doesn't set permissions for new files
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	for _, other := range existing {
		if other == title || !domain.SameTitle(other, title) {
			continue
		}

		otherPath := s.Path(other)
		if sameFile(path, otherPath) {
			// Case-insensitive filesystem: the write already replaced it
			continue
		}
		if err := os.Remove(otherPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to replace entry %q: %w", other, err)
		}
		s.logger.Debug("replaced case variant", "title", title, "replaced", other)
	}

	s.logger.Debug("saved entry", "title", title, "bytes", len(body))
	return nil
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
