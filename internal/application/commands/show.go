package commands

import (
	"context"
	"fmt"

	"encyclopedia/internal/application"
	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// ShowEntryCommand loads an entry for display.
// The title may use any casing; the result carries the stored casing.
type ShowEntryCommand struct {
	store ports.EntryStore
	Title string
}

// NewShowEntryCommand creates a new ShowEntryCommand
func NewShowEntryCommand(store ports.EntryStore, title string) *ShowEntryCommand {
	return &ShowEntryCommand{
		store: store,
		Title: title,
	}
}

// Validate checks if the show operation is valid
func (c *ShowEntryCommand) Validate() error {
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the show command
func (c *ShowEntryCommand) Execute(ctx context.Context) (*domain.Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	titles, err := c.store.ListTitles()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	title, ok := domain.ReconcileTitle(c.Title, titles)
	if !ok {
		return nil, &application.NotFoundError{Title: c.Title}
	}

	body, ok, err := c.store.GetBody(title)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}
	if !ok {
		// Removed between listing and reading
		return nil, &application.NotFoundError{Title: c.Title}
	}

	return &domain.Entry{Title: title, Body: body}, nil
}
