package repository

import (
	"gorm.io/gorm"

	"github.com/inkwellhq/researchd/internal/domain"
)

// ReportRepository handles report data operations
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists a report and its per-source rows inside one transaction so
// a failure cannot leave source rows orphaned from a half-written report.
func (r *ReportRepository) Create(report *domain.Report) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		for _, s := range report.Sources {
			row := domain.SourceRow{
				ReportID:    report.ID,
				URL:         s.URL,
				Title:       s.Title,
				Snippet:     s.Snippet,
				Credibility: s.Credibility,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a report by ID. Returns (nil, nil) when missing.
func (r *ReportRepository) GetByID(id uint) (*domain.Report, error) {
	var report domain.Report
	err := r.db.First(&report, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// List retrieves reports, most recent first.
func (r *ReportRepository) List(limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = 50
	}
	var reports []domain.Report
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&reports).Error
	return reports, err
}

// ListAll retrieves every report, oldest first. Used by analytics.
func (r *ReportRepository) ListAll() ([]domain.Report, error) {
	var reports []domain.Report
	err := r.db.Order("created_at ASC, id ASC").Find(&reports).Error
	return reports, err
}

// Search matches the query as a substring of topic or title, newest first.
func (r *ReportRepository) Search(query string) ([]domain.Report, error) {
	var reports []domain.Report
	term := "%" + query + "%"
	err := r.db.Where("topic LIKE ? OR title LIKE ?", term, term).
		Order("created_at DESC, id DESC").
		Find(&reports).Error
	return reports, err
}

// Delete removes a report with its source rows and versions. Returns whether
// a report row was actually deleted.
func (r *ReportRepository) Delete(id uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).Delete(&domain.SourceRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", id).Delete(&domain.ReportVersion{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Report{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// ToggleFavorite flips the favorite flag and returns the updated report.
// Returns (nil, nil) when the report is missing.
func (r *ReportRepository) ToggleFavorite(id uint) (*domain.Report, error) {
	var report domain.Report
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, id).Error; err != nil {
			return err
		}
		report.IsFavorite = !report.IsFavorite
		return tx.Model(&report).Update("is_favorite", report.IsFavorite).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// ListFavorites retrieves favorite reports, newest first.
func (r *ReportRepository) ListFavorites() ([]domain.Report, error) {
	var reports []domain.Report
	err := r.db.Where("is_favorite = ?", true).
		Order("created_at DESC, id DESC").
		Find(&reports).Error
	return reports, err
}
