package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDraft_RoundTrip(t *testing.T) {
	d, err := NewDraft("Python", "# Python\n")
	if err != nil {
		t.Fatalf("NewDraft() error: %v", err)
	}
	defer d.Remove()

	if !strings.HasSuffix(d.Path(), ".md") {
		t.Errorf("draft path %q should end in .md", d.Path())
	}
	if !strings.Contains(filepath.Base(d.Path()), "Python") {
		t.Errorf("draft path %q should carry the title", d.Path())
	}

	got, err := d.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "# Python\n" {
		t.Errorf("Read() = %q", got)
	}

	// Simulate the editor saving changes
	if err := os.WriteFile(d.Path(), []byte("# Python\n\nEdited."), 0o600); err != nil {
		t.Fatal(err)
	}
	got, _ = d.Read()
	if got != "# Python\n\nEdited." {
		t.Errorf("Read() after edit = %q", got)
	}

	if err := d.Remove(); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, err := os.Stat(d.Path()); !os.IsNotExist(err) {
		t.Errorf("draft should be gone, stat err = %v", err)
	}
	if err := d.Remove(); err != nil {
		t.Errorf("second Remove() should be a no-op, got %v", err)
	}
}

func TestDraftPattern(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Python", "encyclopedia-Python-*.md"},
		{"", "encyclopedia-entry-*.md"},
		{"a*b", "encyclopedia-a_b-*.md"},
		{"a/b", "encyclopedia-a_b-*.md"},
	}

	for _, tt := range tests {
		if got := draftPattern(tt.title); got != tt.want {
			t.Errorf("draftPattern(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFindEditor(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{
			name: "editor wins",
			env:  map[string]string{"EDITOR": "hx", "VISUAL": "code"},
			want: []string{"hx"},
		},
		{
			name: "visual fallback",
			env:  map[string]string{"VISUAL": "code"},
			want: []string{"code"},
		},
		{
			name: "editor with flags",
			env:  map[string]string{"EDITOR": "code --wait"},
			want: []string{"code", "--wait"},
		},
		{
			name: "blank editor ignored",
			env:  map[string]string{"EDITOR": "  ", "VISUAL": "vim"},
			want: []string{"vim"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{getenv: func(k string) string { return tt.env[k] }}
			if diff := cmp.Diff(tt.want, o.findEditor()); diff != "" {
				t.Errorf("findEditor() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommand_AppendsPath(t *testing.T) {
	o := &Opener{getenv: func(k string) string {
		if k == "EDITOR" {
			return "code --wait"
		}
		return ""
	}}

	cmd, err := o.Command("/tmp/draft.md")
	if err != nil {
		t.Fatalf("Command() error: %v", err)
	}
	if diff := cmp.Diff([]string{"code", "--wait", "/tmp/draft.md"}, cmd.Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
}
