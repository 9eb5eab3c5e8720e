package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkwellhq/researchd/internal/domain"
)

// VersionRepository handles report version snapshots
type VersionRepository struct {
	db *gorm.DB
}

// NewVersionRepository creates a new VersionRepository
func NewVersionRepository(db *gorm.DB) *VersionRepository {
	return &VersionRepository{db: db}
}

// ListByReport retrieves all versions of a report, newest number first.
func (r *VersionRepository) ListByReport(reportID uint) ([]domain.ReportVersion, error) {
	var versions []domain.ReportVersion
	err := r.db.Where("report_id = ?", reportID).
		Order("version_number DESC").
		Find(&versions).Error
	return versions, err
}

// Get retrieves a single version by report ID and version number.
// Returns (nil, nil) when missing.
func (r *VersionRepository) Get(reportID uint, versionNumber int) (*domain.ReportVersion, error) {
	var version domain.ReportVersion
	err := r.db.Where("report_id = ? AND version_number = ?", reportID, versionNumber).
		First(&version).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &version, nil
}

// Snapshot copies the current state of a report into a new version row with
// the next version number (max + 1, starting at 1). Returns (nil, nil) when
// the report does not exist.
func (r *VersionRepository) Snapshot(reportID uint, changeDescription string) (*domain.ReportVersion, error) {
	var out *domain.ReportVersion
	err := r.db.Transaction(func(tx *gorm.DB) error {
		v, err := snapshotInTx(tx, reportID, changeDescription)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// Restore snapshots the current report state as a new version, then copies
// the target version's fields onto the live report row. The whole operation
// runs in one transaction and rolls back entirely on any failure, so history
// is never lost. Returns (nil, nil) when the report or version is missing.
func (r *VersionRepository) Restore(reportID uint, versionNumber int) (*domain.Report, error) {
	var restored *domain.Report
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var target domain.ReportVersion
		if err := tx.Where("report_id = ? AND version_number = ?", reportID, versionNumber).
			First(&target).Error; err != nil {
			return err
		}

		desc := fmt.Sprintf("Auto-save before restoring to version %d", versionNumber)
		if _, err := snapshotInTx(tx, reportID, desc); err != nil {
			return err
		}

		var report domain.Report
		if err := tx.First(&report, reportID).Error; err != nil {
			return err
		}
		report.Title = target.Title
		report.Content = target.Content
		report.Summary = target.Summary
		report.Sources = target.Sources
		report.WordCount = target.WordCount
		if err := tx.Model(&report).Updates(map[string]interface{}{
			"title":      report.Title,
			"content":    report.Content,
			"summary":    report.Summary,
			"sources":    report.Sources,
			"word_count": report.WordCount,
		}).Error; err != nil {
			return err
		}
		restored = &report
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return restored, nil
}

func snapshotInTx(tx *gorm.DB, reportID uint, changeDescription string) (*domain.ReportVersion, error) {
	var report domain.Report
	if err := tx.First(&report, reportID).Error; err != nil {
		return nil, err
	}

	var maxNumber int
	row := tx.Model(&domain.ReportVersion{}).
		Where("report_id = ?", reportID).
		Select("COALESCE(MAX(version_number), 0)").
		Row()
	if err := row.Scan(&maxNumber); err != nil {
		return nil, err
	}

	version := domain.ReportVersion{
		ReportID:          reportID,
		VersionNumber:     maxNumber + 1,
		Title:             report.Title,
		Content:           report.Content,
		Summary:           report.Summary,
		Sources:           report.Sources,
		WordCount:         report.WordCount,
		CreatedAt:         time.Now(),
		ChangeDescription: changeDescription,
	}
	if err := tx.Create(&version).Error; err != nil {
		return nil, err
	}
	return &version, nil
}
