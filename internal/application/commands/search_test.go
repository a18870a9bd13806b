package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"encyclopedia/internal/application"
	"encyclopedia/internal/domain"
)

func TestSearchCommand_Execute(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.QueryResult
	}{
		{
			name:  "substring",
			query: "ht",
			want:  domain.QueryResult{Kind: domain.QuerySearch, Results: []string{"HTML"}},
		},
		{
			name:  "exact match redirects",
			query: "python",
			want:  domain.QueryResult{Kind: domain.QueryRedirect, Title: "Python"},
		},
		{
			name:  "no results",
			query: "rust",
			want:  domain.QueryResult{Kind: domain.QuerySearch, Results: []string{}},
		},
		{
			name:  "shared letter",
			query: "s",
			want:  domain.QueryResult{Kind: domain.QuerySearch, Results: []string{"CSS"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSearchCommand(seededStore(), tt.query).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Execute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchCommand_Validate(t *testing.T) {
	for _, query := range []string{"", "   "} {
		err := NewSearchCommand(seededStore(), query).Validate()

		var valErr *application.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("Validate(%q) = %v, want ValidationError", query, err)
			continue
		}
		if valErr.Field != "query" {
			t.Errorf("expected field query, got %s", valErr.Field)
		}
	}
}

func TestSearchCommand_StoreError(t *testing.T) {
	_, err := NewSearchCommand(failingStore{}, "css").Execute(context.Background())
	if !errors.Is(err, errDisk) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}
