package editor

import (
	"fmt"
	"os"
	"strings"
)

// Draft is a temporary markdown file holding an entry body while it is
// edited outside the application
type Draft struct {
	path string
}

// NewDraft writes body to a fresh temp file. The file name carries the
// title so the editor window shows what is being edited.
func NewDraft(title, body string) (*Draft, error) {
	f, err := os.CreateTemp("", draftPattern(title))
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(body); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write draft: %w", err)
	}

	return &Draft{path: f.Name()}, nil
}

// Path returns the draft file location
func (d *Draft) Path() string {
	return d.path
}

// Read returns the current draft contents
func (d *Draft) Read() (string, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return string(data), nil
}

// Remove deletes the draft file
func (d *Draft) Remove() error {
	if err := os.Remove(d.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func draftPattern(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == '*' || r == '/' || r == '\\':
			return '_'
		case r < ' ':
			return -1
		}
		return r
	}, title)
	if name == "" {
		name = "entry"
	}
	return "encyclopedia-" + name + "-*.md"
}
