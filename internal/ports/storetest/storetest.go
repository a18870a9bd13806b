// Package storetest holds the behaviour every ports.EntryStore must share.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) ports.EntryStore

// Run exercises the EntryStore contract against stores built by newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		s := newStore(t)
		titles := mustList(t, s)
		if len(titles) != 0 {
			t.Errorf("expected no titles, got %v", titles)
		}
	})

	t.Run("save then get returns body", func(t *testing.T) {
		s := newStore(t)
		mustSave(t, s, "Python", "# Python\n\nA language.")

		body, ok, err := s.GetBody("Python")
		if err != nil {
			t.Fatalf("GetBody failed: %v", err)
		}
		if !ok {
			t.Fatal("expected entry to exist")
		}
		if body != "# Python\n\nA language." {
			t.Errorf("unexpected body %q", body)
		}
	})

	t.Run("missing entry is absent not an error", func(t *testing.T) {
		s := newStore(t)
		mustSave(t, s, "Python", "a")

		body, ok, err := s.GetBody("Rust")
		if err != nil {
			t.Fatalf("GetBody failed: %v", err)
		}
		if ok || body != "" {
			t.Errorf("expected absent entry, got (%q, %v)", body, ok)
		}
	})

	t.Run("get is case-sensitive", func(t *testing.T) {
		s := newStore(t)
		mustSave(t, s, "Python", "a")

		_, ok, err := s.GetBody("python")
		if err != nil {
			t.Fatalf("GetBody failed: %v", err)
		}
		if ok {
			t.Error("expected exact-case lookup to miss")
		}
	})

	t.Run("list is sorted in canonical casing", func(t *testing.T) {
		s := newStore(t)
		for _, title := range []string{"Python", "CSS", "HTML"} {
			mustSave(t, s, title, title+" body")
		}

		want := []string{"CSS", "HTML", "Python"}
		if diff := cmp.Diff(want, mustList(t, s)); diff != "" {
			t.Errorf("ListTitles mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("save overwrites", func(t *testing.T) {
		s := newStore(t)
		mustSave(t, s, "Git", "old")
		mustSave(t, s, "Git", "new")

		body, _, _ := s.GetBody("Git")
		if body != "new" {
			t.Errorf("expected overwritten body, got %q", body)
		}
		if n := len(mustList(t, s)); n != 1 {
			t.Errorf("expected 1 entry, got %d", n)
		}
	})

	t.Run("case variant save replaces entry", func(t *testing.T) {
		s := newStore(t)
		mustSave(t, s, "Python", "a")
		mustSave(t, s, "python", "b")

		titles := mustList(t, s)
		if len(titles) != 1 {
			t.Fatalf("expected exactly one entry, got %v", titles)
		}

		body, ok, err := s.GetBody(titles[0])
		if err != nil || !ok {
			t.Fatalf("GetBody(%q) = (%v, %v)", titles[0], ok, err)
		}
		if body != "b" {
			t.Errorf("expected last write to win, got %q", body)
		}

		body, ok, _ = s.GetBody("python")
		if !ok || body != "b" {
			t.Errorf("expected exact-case get of last saved title to return b, got (%q, %v)", body, ok)
		}
	})

	t.Run("invalid titles are rejected", func(t *testing.T) {
		s := newStore(t)
		for _, title := range []string{"", "../escape", "a/b", ".hidden", "nul\x00"} {
			err := s.Save(title, "body")
			if !errors.Is(err, domain.ErrInvalidTitle) {
				t.Errorf("Save(%q) error = %v, want ErrInvalidTitle", title, err)
			}
		}
		if titles := mustList(t, s); len(titles) != 0 {
			t.Errorf("rejected saves must not store anything, got %v", titles)
		}
	})

	t.Run("get of invalid title is absent", func(t *testing.T) {
		s := newStore(t)
		_, ok, err := s.GetBody("../escape")
		if err != nil || ok {
			t.Errorf("GetBody(invalid) = (%v, %v), want (false, nil)", ok, err)
		}
	})

	t.Run("empty body round trips", func(t *testing.T) {
		s := newStore(t)
		mustSave(t, s, "Stub", "")

		body, ok, err := s.GetBody("Stub")
		if err != nil || !ok || body != "" {
			t.Errorf("GetBody(Stub) = (%q, %v, %v)", body, ok, err)
		}
	})
}

func mustSave(t *testing.T, s ports.EntryStore, title, body string) {
	t.Helper()
	if err := s.Save(title, body); err != nil {
		t.Fatalf("Save(%q) failed: %v", title, err)
	}
}

func mustList(t *testing.T, s ports.EntryStore) []string {
	t.Helper()
	titles, err := s.ListTitles()
	if err != nil {
		t.Fatalf("ListTitles failed: %v", err)
	}
	return titles
}
