package commands

import (
	"context"
	"fmt"

	"encyclopedia/internal/application"
	"encyclopedia/internal/ports"
)

// EditEntryCommand overwrites an entry's body.
// Saving under a different casing replaces the stored entry, last write wins.
type EditEntryCommand struct {
	store ports.EntryStore
	Title string
	Body  string
}

// NewEditEntryCommand creates a new EditEntryCommand
func NewEditEntryCommand(store ports.EntryStore, title, body string) *EditEntryCommand {
	return &EditEntryCommand{
		store: store,
		Title: title,
		Body:  body,
	}
}

// Validate checks if the edit operation is valid
func (c *EditEntryCommand) Validate() error {
	if err := application.ValidateTitle("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("body", c.Body)
}

// Execute runs the edit command
func (c *EditEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Save(c.Title, c.Body); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return &EntryResult{
		Title:   c.Title,
		Message: fmt.Sprintf("Saved entry: %s", c.Title),
	}, nil
}
