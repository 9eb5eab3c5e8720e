// Package export writes stored reports to files in markdown, styled HTML,
// or PDF form. Files land in the configured exports directory with a
// timestamp-qualified name.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inkwellhq/researchd/internal/compose"
	"github.com/inkwellhq/researchd/internal/domain"
)

// Format names accepted by Export.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// ErrUnsupportedFormat is returned for unknown export formats.
var ErrUnsupportedFormat = fmt.Errorf("unsupported format, use: markdown, html, pdf")

// Exporter writes report files under Dir.
type Exporter struct {
	Dir string
}

// NewExporter creates an Exporter rooted at dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir}
}

// Export renders the report in the requested format and writes it to disk.
// It returns the full path and the bare filename.
func (e *Exporter) Export(report *domain.Report, format string) (string, string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create export dir: %w", err)
	}
	base := fmt.Sprintf("report_%d_%s", report.ID, time.Now().Format("20060102_150405"))

	switch format {
	case FormatMarkdown:
		name := base + ".md"
		path := filepath.Join(e.Dir, name)
		if err := os.WriteFile(path, []byte(Markdown(report)), 0o644); err != nil {
			return "", "", fmt.Errorf("write markdown: %w", err)
		}
		return path, name, nil
	case FormatHTML:
		name := base + ".html"
		path := filepath.Join(e.Dir, name)
		if err := os.WriteFile(path, []byte(HTMLDocument(report)), 0o644); err != nil {
			return "", "", fmt.Errorf("write html: %w", err)
		}
		return path, name, nil
	case FormatPDF:
		name := base + ".pdf"
		path := filepath.Join(e.Dir, name)
		if err := writePDF(report, path); err != nil {
			return "", "", fmt.Errorf("write pdf: %w", err)
		}
		return path, name, nil
	default:
		return "", "", ErrUnsupportedFormat
	}
}

// Markdown renders the report as plain markdown with a numbered source list.
func Markdown(report *domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", report.Title)
	fmt.Fprintf(&b, "**Summary:** %s\n\n", report.Summary)
	fmt.Fprintf(&b, "%s\n\n", report.Content)
	b.WriteString("## Sources\n\n")
	for i, s := range report.Sources {
		fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, s.Title, s.URL)
	}
	return b.String()
}

// HTMLDocument wraps the article rendering in a full standalone document.
func HTMLDocument(report *domain.Report) string {
	article := compose.RenderArticleHTML(report)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body { font-family: Georgia, serif; max-width: 800px; margin: 40px auto; padding: 20px; line-height: 1.6; }
        h1 { font-size: 2.5em; margin-bottom: 10px; }
        .summary { font-size: 1.2em; font-style: italic; margin: 20px 0; padding: 15px; background: #f5f5f5; }
        .metadata { color: #666; margin: 10px 0; }
        .content { margin: 30px 0; }
        h2 { margin-top: 30px; }
        .sources { margin-top: 40px; border-top: 2px solid #333; padding-top: 20px; }
    </style>
</head>
<body>
    %s
</body>
</html>`, report.Title, article)
}
