package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileProvider_FiltersAndLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	payload := `[
		{"title": "Go Testing", "url": "https://go.dev/doc", "snippet": "about testing"},
		{"title": "Unrelated", "url": "https://other.io/x", "snippet": "nothing here"},
		{"title": "missing url", "url": "", "snippet": "dropped"}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	prov := &FileProvider{Path: path}
	results, err := prov.Search(context.Background(), "testing", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	if results[0].Source != "go.dev" {
		t.Fatalf("expected derived host label, got %q", results[0].Source)
	}
}

func TestFileProvider_EmptyPath(t *testing.T) {
	prov := &FileProvider{}
	if _, err := prov.Search(context.Background(), "q", 5); err == nil {
		t.Fatal("expected error for empty path")
	}
}
