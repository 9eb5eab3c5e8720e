package service

import (
	"strings"

	"github.com/inkwellhq/researchd/internal/common"
	"github.com/inkwellhq/researchd/internal/domain"
	"github.com/inkwellhq/researchd/internal/keywords"
)

const (
	minCompareReports = 2
	maxCompareReports = 4
)

// ComparisonEntry is one report's side of a comparison.
type ComparisonEntry struct {
	Report   domain.ReportSummary `json:"report"`
	Keywords []string             `json:"keywords"`
}

// Comparison is a side-by-side view of several reports with the keywords
// they share.
type Comparison struct {
	Reports        []ComparisonEntry `json:"reports"`
	CommonKeywords []string          `json:"common_keywords"`
}

// Compare loads the named reports and intersects their extracted keywords.
// Fewer than 2 or more than 4 ids is a validation error.
func (s *ReportService) Compare(ids []uint) (*Comparison, error) {
	if len(ids) < minCompareReports || len(ids) > maxCompareReports {
		return nil, common.ErrInvalidInput
	}

	entries := make([]ComparisonEntry, 0, len(ids))
	var shared map[string]struct{}
	for _, id := range ids {
		report, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		extracted := keywords.Extract(report.Content, 20)
		entries = append(entries, ComparisonEntry{
			Report:   report.Summarize(),
			Keywords: extracted.Keywords,
		})

		set := map[string]struct{}{}
		for _, k := range extracted.Keywords {
			set[strings.ToLower(k)] = struct{}{}
		}
		if shared == nil {
			shared = set
			continue
		}
		for k := range shared {
			if _, ok := set[k]; !ok {
				delete(shared, k)
			}
		}
	}

	// Report common keywords in the first report's keyword order so the
	// result is deterministic.
	commonKeywords := []string{}
	for _, k := range entries[0].Keywords {
		if _, ok := shared[strings.ToLower(k)]; ok {
			commonKeywords = append(commonKeywords, k)
		}
	}
	return &Comparison{Reports: entries, CommonKeywords: commonKeywords}, nil
}
