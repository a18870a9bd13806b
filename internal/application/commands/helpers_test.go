package commands

import (
	"errors"

	"encyclopedia/internal/adapters/memory"
	"encyclopedia/internal/domain"
)

var errDisk = errors.New("disk on fire")

// failingStore fails every operation
type failingStore struct{}

func (failingStore) ListTitles() ([]string, error)        { return nil, errDisk }
func (failingStore) GetBody(string) (string, bool, error) { return "", false, errDisk }
func (failingStore) Save(string, string) error            { return errDisk }

func seededStore() *memory.Store {
	return memory.NewStore(
		domain.Entry{Title: "CSS", Body: "# CSS\n\nStyle sheets."},
		domain.Entry{Title: "HTML", Body: "# HTML\n\nMarkup."},
		domain.Entry{Title: "Python", Body: "# Python\n\nA language."},
	)
}
