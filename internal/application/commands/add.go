package commands

import (
	"context"
	"fmt"

	"encyclopedia/internal/application"
	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// EntryResult contains the result of writing an entry
type EntryResult struct {
	Title   string
	Message string
}

// AddEntryCommand creates a new entry.
// Creating an entry whose title already exists in any casing is refused.
type AddEntryCommand struct {
	store ports.EntryStore
	Title string
	Body  string
}

// NewAddEntryCommand creates a new AddEntryCommand
func NewAddEntryCommand(store ports.EntryStore, title, body string) *AddEntryCommand {
	return &AddEntryCommand{
		store: store,
		Title: title,
		Body:  body,
	}
}

// Validate checks if the add operation is valid
func (c *AddEntryCommand) Validate() error {
	if err := application.ValidateTitle("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("body", c.Body)
}

// Execute runs the add command
func (c *AddEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	titles, err := c.store.ListTitles()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if existing, ok := domain.ReconcileTitle(c.Title, titles); ok {
		return nil, &application.EntryExistsError{Title: existing}
	}

	if err := c.store.Save(c.Title, c.Body); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return &EntryResult{
		Title:   c.Title,
		Message: fmt.Sprintf("Created entry: %s", c.Title),
	}, nil
}
