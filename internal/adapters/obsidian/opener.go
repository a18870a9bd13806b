package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"encyclopedia/internal/domain"
)

// Opener implements ports.ObsidianOpener.
// The entries directory is opened as a vault, or as a folder inside one.
type Opener struct {
	entriesDir string
	vaultPath  string
	vaultName  string
	run        func(uri string) error
}

// Option configures an Opener
type Option func(*Opener)

// WithVault sets the vault root when the entries directory lives inside a
// larger vault
func WithVault(vaultPath string) Option {
	return func(o *Opener) {
		o.vaultPath = vaultPath
		o.vaultName = filepath.Base(vaultPath)
	}
}

// NewOpener creates a new Obsidian opener for the given entries directory
func NewOpener(entriesDir string, opts ...Option) *Opener {
	o := &Opener{
		entriesDir: entriesDir,
		vaultPath:  entriesDir,
		vaultName:  filepath.Base(entriesDir),
		run:        openURI,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OpenEntry opens an entry in Obsidian using the obsidian:// URI scheme
func (o *Opener) OpenEntry(title string) error {
	uri, err := o.BuildURI(title)
	if err != nil {
		return err
	}
	return o.run(uri)
}

// BuildURI constructs the obsidian:// URI for an entry
func (o *Opener) BuildURI(title string) (string, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return "", err
	}

	filePath := filepath.Join(o.entriesDir, domain.FileName(title))
	relPath, err := filepath.Rel(o.vaultPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entries directory is outside the vault: %s", o.entriesDir)
	}

	// Obsidian expects forward slashes in paths
	relPath = filepath.ToSlash(relPath)

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		queryEscape(o.vaultName),
		queryEscape(relPath),
	), nil
}

// queryEscape escapes spaces as %20, which Obsidian requires
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
