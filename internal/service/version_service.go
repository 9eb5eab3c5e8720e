package service

import (
	"github.com/inkwellhq/researchd/internal/common"
	"github.com/inkwellhq/researchd/internal/domain"
)

// ListVersions returns the version history of a report, newest number first.
func (s *ReportService) ListVersions(reportID uint) ([]domain.VersionSummary, error) {
	if _, err := s.Get(reportID); err != nil {
		return nil, err
	}
	versions, err := s.versions.ListByReport(reportID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.VersionSummary, 0, len(versions))
	for i := range versions {
		out = append(out, versions[i].Summarize())
	}
	return out, nil
}

// GetVersion returns one full version snapshot.
func (s *ReportService) GetVersion(reportID uint, versionNumber int) (*domain.ReportVersion, error) {
	version, err := s.versions.Get(reportID, versionNumber)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, common.ErrVersionNotFound
	}
	return version, nil
}

// SaveVersion snapshots the current report state as the next version number.
func (s *ReportService) SaveVersion(reportID uint, changeDescription string) (*domain.ReportVersion, error) {
	if changeDescription == "" {
		changeDescription = "Manual save"
	}
	version, err := s.versions.Snapshot(reportID, changeDescription)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, common.ErrReportNotFound
	}
	return version, nil
}

// RestoreVersion snapshots the current state, then overwrites the live
// report from the target version. History is never lost.
func (s *ReportService) RestoreVersion(reportID uint, versionNumber int) (*domain.Report, error) {
	report, err := s.versions.Restore(reportID, versionNumber)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, common.ErrVersionNotFound
	}
	return report, nil
}
