package commands

import (
	"context"
	"fmt"

	"encyclopedia/internal/ports"
)

// ListEntriesCommand lists every entry title
type ListEntriesCommand struct {
	store ports.EntryStore
}

// NewListEntriesCommand creates a new ListEntriesCommand
func NewListEntriesCommand(store ports.EntryStore) *ListEntriesCommand {
	return &ListEntriesCommand{store: store}
}

// Execute runs the list command
func (c *ListEntriesCommand) Execute(ctx context.Context) ([]string, error) {
	titles, err := c.store.ListTitles()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return titles, nil
}
