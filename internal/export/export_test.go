package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inkwellhq/researchd/internal/domain"
)

func exportReport() *domain.Report {
	return &domain.Report{
		ID:        7,
		Topic:     "solar power",
		Title:     "Solar Power: A Bright Outlook",
		Summary:   "Panels keep getting cheaper.",
		Content:   "## Background and Context\n\nPanel prices fell again this year.",
		WordCount: 9,
		Sources: domain.SourceList{
			{Title: "Panel Report", URL: "https://example.edu/panels"},
			{Title: "Grid Study", URL: "https://example.org/grid"},
		},
	}
}

func TestExportMarkdown(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	path, name, err := exporter.Export(exportReport(), FormatMarkdown)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(name, "report_7_") || !strings.HasSuffix(name, ".md") {
		t.Fatalf("unexpected filename %q", name)
	}
	if filepath.Base(path) != name {
		t.Fatalf("path %q does not end in %q", path, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		"# Solar Power: A Bright Outlook",
		"**Summary:** Panels keep getting cheaper.",
		"## Sources",
		"1. [Panel Report](https://example.edu/panels)",
		"2. [Grid Study](https://example.org/grid)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestExportHTML(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	path, name, err := exporter.Export(exportReport(), FormatHTML)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(name, ".html") {
		t.Fatalf("unexpected filename %q", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "<!DOCTYPE html>") {
		t.Fatal("expected standalone document")
	}
	if !strings.Contains(text, "<title>Solar Power: A Bright Outlook</title>") {
		t.Fatal("expected title element")
	}
	if !strings.Contains(text, "Panel prices fell again this year.") {
		t.Fatal("expected article body")
	}
}

func TestExportPDF(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	path, name, err := exporter.Export(exportReport(), FormatPDF)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("unexpected filename %q", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Fatal("expected PDF header")
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	_, _, err := exporter.Export(exportReport(), "docx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExportCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	exporter := NewExporter(dir)
	if _, _, err := exporter.Export(exportReport(), FormatMarkdown); err != nil {
		t.Fatalf("export into missing dir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("export dir not created: %v", err)
	}
}
