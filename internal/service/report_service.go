package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/inkwellhq/researchd/internal/analytics"
	"github.com/inkwellhq/researchd/internal/common"
	"github.com/inkwellhq/researchd/internal/compose"
	"github.com/inkwellhq/researchd/internal/domain"
	"github.com/inkwellhq/researchd/internal/keywords"
	"github.com/inkwellhq/researchd/internal/repository"
	"github.com/inkwellhq/researchd/internal/research"
)

// ReportService owns the research workflow and everything CRUD-shaped on top
// of stored reports. Handlers stay thin; policy lives here.
type ReportService struct {
	engine     *research.Engine
	journalist *compose.Journalist
	reports    *repository.ReportRepository
	versions   *repository.VersionRepository
}

// NewReportService creates a ReportService.
func NewReportService(
	engine *research.Engine,
	journalist *compose.Journalist,
	reports *repository.ReportRepository,
	versions *repository.VersionRepository,
) *ReportService {
	return &ReportService{
		engine:     engine,
		journalist: journalist,
		reports:    reports,
		versions:   versions,
	}
}

// Research runs the pipeline for a topic, composes the article, and persists
// the result. An empty topic is a validation error; an upstream search with
// zero results still produces a report with empty sources.
func (s *ReportService) Research(ctx context.Context, topic string) (*domain.Report, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, common.ErrEmptyTopic
	}

	data, err := s.engine.Research(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("research: %w", err)
	}
	draft := s.journalist.Write(data)

	report := &domain.Report{
		Topic:     topic,
		Title:     draft.Title,
		Content:   draft.Content,
		Summary:   draft.Summary,
		Sources:   domain.SourceList(draft.Sources),
		WordCount: draft.WordCount,
		Status:    "completed",
	}
	if err := s.reports.Create(report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	log.Info().Uint("id", report.ID).Str("topic", topic).Int("words", report.WordCount).Msg("report saved")
	return report, nil
}

// List returns recent reports as listing summaries.
func (s *ReportService) List(limit int) ([]domain.ReportSummary, error) {
	reports, err := s.reports.List(limit)
	if err != nil {
		return nil, err
	}
	return summarize(reports), nil
}

// Get returns a full report by ID.
func (s *ReportService) Get(id uint) (*domain.Report, error) {
	report, err := s.reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, common.ErrReportNotFound
	}
	return report, nil
}

// Delete removes a report with its sources and versions.
func (s *ReportService) Delete(id uint) error {
	deleted, err := s.reports.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return common.ErrReportNotFound
	}
	return nil
}

// Search matches the query as a substring of topic or title.
func (s *ReportService) Search(query string) ([]domain.ReportSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.ErrInvalidInput
	}
	reports, err := s.reports.Search(query)
	if err != nil {
		return nil, err
	}
	return summarize(reports), nil
}

// ToggleFavorite flips the favorite flag and returns the updated report.
func (s *ReportService) ToggleFavorite(id uint) (*domain.Report, error) {
	report, err := s.reports.ToggleFavorite(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, common.ErrReportNotFound
	}
	return report, nil
}

// ListFavorites returns favorite reports as listing summaries.
func (s *ReportService) ListFavorites() ([]domain.ReportSummary, error) {
	reports, err := s.reports.ListFavorites()
	if err != nil {
		return nil, err
	}
	return summarize(reports), nil
}

// Analytics computes the comprehensive analytics payload over every stored
// report.
func (s *ReportService) Analytics() (analytics.Comprehensive, error) {
	reports, err := s.reports.ListAll()
	if err != nil {
		return analytics.Comprehensive{}, err
	}
	return analytics.GetComprehensive(reports), nil
}

// Keywords extracts categorized keywords and the highlight map for one
// report's content.
func (s *ReportService) Keywords(id uint) (*keywords.HighlightData, error) {
	report, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	data := keywords.Highlight(report.Content)
	return &data, nil
}

func summarize(reports []domain.Report) []domain.ReportSummary {
	out := make([]domain.ReportSummary, 0, len(reports))
	for i := range reports {
		out = append(out, reports[i].Summarize())
	}
	return out
}
