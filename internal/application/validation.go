package application

import (
	"errors"
	"fmt"
	"strings"

	"encyclopedia/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateTitle checks that a title is present and usable as a storage key.
// Sanitization failures unwrap to ErrInvalidTitle.
func ValidateTitle(fieldName, title string) error {
	if err := ValidateRequired(fieldName, title); err != nil {
		return err
	}

	if err := domain.ValidateTitle(title); err != nil {
		msg := err.Error()
		var titleErr *domain.InvalidTitleError
		if errors.As(err, &titleErr) {
			msg = titleErr.Reason
		}
		return &ValidationError{Field: fieldName, Message: msg, Err: err}
	}
	return nil
}
