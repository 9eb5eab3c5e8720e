package compose

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inkwellhq/researchd/internal/domain"
)

var (
	h2Re   = regexp.MustCompile(`(?m)^## (.+)$`)
	h3Re   = regexp.MustCompile(`(?m)^### (.+)$`)
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// RenderArticleHTML formats a stored report as an HTML article fragment,
// used by the styled HTML export.
func RenderArticleHTML(report *domain.Report) string {
	var b strings.Builder
	b.WriteString("<article class='research-report'>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", report.Title)
	fmt.Fprintf(&b, "<div class='summary'>%s</div>\n", report.Summary)
	fmt.Fprintf(&b, "<div class='metadata'>Words: %d | Sources: %d</div>\n", report.WordCount, len(report.Sources))
	fmt.Fprintf(&b, "<div class='content'>%s</div>\n", MarkdownToHTML(report.Content))
	b.WriteString("<div class='sources'><h3>Sources</h3><ol>\n")
	for _, s := range report.Sources {
		fmt.Fprintf(&b, "<li><a href='%s' target='_blank'>%s</a> - %s</li>\n", s.URL, s.Title, s.Source)
	}
	b.WriteString("</ol></div>\n</article>")
	return b.String()
}

// MarkdownToHTML performs the minimal markdown conversion the composer
// needs: ## and ### headings, **bold**, and paragraph wrapping.
func MarkdownToHTML(text string) string {
	text = h2Re.ReplaceAllString(text, "<h2>$1</h2>")
	text = h3Re.ReplaceAllString(text, "<h3>$1</h3>")
	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")

	paragraphs := strings.Split(text, "\n\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, "<h") {
			out = append(out, p)
			continue
		}
		out = append(out, "<p>"+p+"</p>")
	}
	return strings.Join(out, "\n")
}
