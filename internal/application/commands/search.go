package commands

import (
	"context"
	"fmt"

	"encyclopedia/internal/application"
	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// SearchCommand resolves a query against the current entry index.
// An exact title match redirects; anything else is a substring search.
type SearchCommand struct {
	store ports.EntryStore
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store ports.EntryStore, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		Query: query,
	}
}

// Validate checks that a query was given
func (c *SearchCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) (domain.QueryResult, error) {
	if err := c.Validate(); err != nil {
		return domain.QueryResult{}, err
	}

	titles, err := c.store.ListTitles()
	if err != nil {
		return domain.QueryResult{}, fmt.Errorf("failed to list entries: %w", err)
	}

	// The raw query is resolved; validation only rejects blank input.
	return domain.ResolveQuery(c.Query, titles), nil
}
