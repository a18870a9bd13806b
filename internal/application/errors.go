package application

import (
	"errors"
	"fmt"

	"encyclopedia/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("entry not found")
	ErrEntryExists  = errors.New("entry already exists")
	ErrInvalidTitle = domain.ErrInvalidTitle
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error // Underlying cause, if any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports the title that could not be resolved
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound, e.Title)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EntryExistsError is returned when creating an entry whose title is taken.
// Title holds the canonical casing of the existing entry.
type EntryExistsError struct {
	Title string
}

func (e *EntryExistsError) Error() string {
	return fmt.Sprintf("an entry titled %q already exists", e.Title)
}

func (e *EntryExistsError) Is(target error) bool {
	return target == ErrEntryExists
}
