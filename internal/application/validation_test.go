package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "title",
			value:     "Python",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "title",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "query",
			value:     "   ",
			wantErr:   true,
		},
		{
			name:      "surrounding whitespace is fine",
			fieldName: "query",
			value:     " py ",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if valErr.Message != tt.fieldName+" is required" {
					t.Errorf("unexpected message %q", valErr.Message)
				}
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		wantErr      bool
		wantSanitize bool
	}{
		{
			name:  "valid title",
			title: "Python",
		},
		{
			name:    "missing title",
			title:   "",
			wantErr: true,
		},
		{
			name:         "path traversal",
			title:        "../../etc/passwd",
			wantErr:      true,
			wantSanitize: true,
		},
		{
			name:         "illegal character",
			title:        "What?",
			wantErr:      true,
			wantSanitize: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle("title", tt.title)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTitle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if valErr.Field != "title" {
				t.Errorf("expected field title, got %s", valErr.Field)
			}
			if got := errors.Is(err, ErrInvalidTitle); got != tt.wantSanitize {
				t.Errorf("errors.Is(err, ErrInvalidTitle) = %v, want %v", got, tt.wantSanitize)
			}
		})
	}
}

func TestErrorTypes_Is(t *testing.T) {
	if !errors.Is(&NotFoundError{Title: "Rust"}, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if !errors.Is(&EntryExistsError{Title: "Python"}, ErrEntryExists) {
		t.Error("EntryExistsError should match ErrEntryExists")
	}
	if errors.Is(&EntryExistsError{Title: "Python"}, ErrNotFound) {
		t.Error("EntryExistsError should not match ErrNotFound")
	}
}
