package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"encyclopedia/internal/application"
)

func TestEditEntryCommand_Overwrites(t *testing.T) {
	store := seededStore()

	result, err := NewEditEntryCommand(store, "CSS", "# CSS\n\nCascading.").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Saved entry: CSS" {
		t.Errorf("unexpected message %q", result.Message)
	}

	body, _, _ := store.GetBody("CSS")
	if body != "# CSS\n\nCascading." {
		t.Errorf("unexpected body %q", body)
	}
}

func TestEditEntryCommand_CaseVariantLastWriteWins(t *testing.T) {
	store := seededStore()
	ctx := context.Background()

	if _, err := NewEditEntryCommand(store, "python", "b").Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	titles, _ := store.ListTitles()
	if diff := cmp.Diff([]string{"CSS", "HTML", "python"}, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}

	entry, err := NewShowEntryCommand(store, "Python").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Body != "b" {
		t.Errorf("expected body b, got %q", entry.Body)
	}
}

func TestEditEntryCommand_CreatesMissingEntry(t *testing.T) {
	store := seededStore()

	if _, err := NewEditEntryCommand(store, "Django", "# Django").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := store.GetBody("Django"); !ok {
		t.Error("expected edit of a new title to create it")
	}
}

func TestEditEntryCommand_Validate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
	}{
		{"empty title", "", "body"},
		{"empty body", "CSS", ""},
		{"invalid title", "C*S", "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore()
			_, err := NewEditEntryCommand(store, tt.title, tt.body).Execute(context.Background())

			var valErr *application.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if store.Saves() != 0 {
				t.Errorf("rejected edit must not save, got %d saves", store.Saves())
			}
		})
	}
}

func TestListEntriesCommand(t *testing.T) {
	titles, err := NewListEntriesCommand(seededStore()).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"CSS", "HTML", "Python"}, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewListEntriesCommand(failingStore{}).Execute(context.Background()); !errors.Is(err, errDisk) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}
