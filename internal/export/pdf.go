package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/inkwellhq/researchd/internal/domain"
)

// writePDF renders a report as a paginated A4 document: title, metadata
// line, executive summary, body with sized headings, and a numbered source
// list with clickable links. Markdown markers beyond headings and bold are
// rendered as plain text.
func writePDF(report *domain.Report, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, report.Title, "", "C", false)
	pdf.Ln(2)

	// Metadata line
	pdf.SetFont("Helvetica", "", 10)
	meta := fmt.Sprintf("Generated on %s | %d words | %d sources",
		time.Now().Format("January 2, 2006"), report.WordCount, len(report.Sources))
	pdf.CellFormat(0, 6, meta, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Executive summary
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Executive Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, report.Summary, "", "L", false)
	pdf.Ln(4)

	// Body: split into paragraphs, promote markdown headings.
	pdf.SetFont("Times", "", 11)
	for _, section := range strings.Split(report.Content, "\n\n") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			switch {
			case strings.HasPrefix(line, "### "):
				pdf.SetFont("Helvetica", "B", 11)
				pdf.MultiCell(0, 6, strings.TrimPrefix(line, "### "), "", "L", false)
				pdf.SetFont("Times", "", 11)
			case strings.HasPrefix(line, "## "):
				pdf.Ln(2)
				pdf.SetFont("Helvetica", "B", 14)
				pdf.MultiCell(0, 8, strings.TrimPrefix(line, "## "), "", "L", false)
				pdf.SetFont("Times", "", 11)
			default:
				pdf.MultiCell(0, 5, strings.ReplaceAll(line, "**", ""), "", "L", false)
			}
		}
		pdf.Ln(2)
	}

	// Sources
	if len(report.Sources) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Sources & References", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for i, s := range report.Sources {
			pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s (%s)", i+1, s.Title, s.Source), "", "L", false)
			pdf.SetTextColor(30, 64, 175)
			pdf.WriteLinkString(5, s.URL, s.URL)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(6)
		}
	}

	return pdf.OutputFileAndClose(outPath)
}
