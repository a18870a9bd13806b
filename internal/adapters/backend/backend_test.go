package backend

import (
	"log/slog"
	"path/filepath"
	"testing"

	"encyclopedia/internal/config"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name      string
		cfg       config.Config
		wantFiles bool
		wantErr   bool
	}{
		{
			name:      "filesystem",
			cfg:       config.Config{Backend: config.BackendFilesystem, Entries: filepath.Join(dir, "entries")},
			wantFiles: true,
		},
		{
			name: "sqlite",
			cfg:  config.Config{Backend: config.BackendSQLite, Database: filepath.Join(dir, "db", "entries.db")},
		},
		{
			name:    "unknown",
			cfg:     config.Config{Backend: "redis"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened, err := Open(tt.cfg, logger)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer opened.Close()

			if (opened.Files != nil) != tt.wantFiles {
				t.Errorf("Files set = %v, want %v", opened.Files != nil, tt.wantFiles)
			}

			if err := opened.Store.Save("CSS", "# CSS"); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			titles, err := opened.Store.ListTitles()
			if err != nil || len(titles) != 1 || titles[0] != "CSS" {
				t.Errorf("ListTitles() = (%v, %v)", titles, err)
			}
		})
	}
}
