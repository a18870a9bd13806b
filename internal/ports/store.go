package ports

// EntryStore persists wiki entries, one text blob per title
type EntryStore interface {
	// ListTitles returns every stored title in canonical casing.
	// The order is stable for a given store state.
	ListTitles() ([]string, error)

	// GetBody looks up an entry by exact, case-sensitive title.
	// A missing entry is reported with ok == false and a nil error.
	// Every title returned by ListTitles can be read.
	GetBody(title string) (body string, ok bool, err error)

	// Save writes or overwrites the entry with the given title. An existing
	// entry whose title differs only in case is replaced.
	// Titles that fail domain.ValidateTitle are rejected with domain.ErrInvalidTitle.
	Save(title, body string) error
}
