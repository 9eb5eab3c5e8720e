package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Source is a single research source attached to a report. The full list is
// serialized as JSON into the parent report row; a projection of each entry
// is also written to the sources table.
type Source struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Snippet     string  `json:"snippet"`
	Content     string  `json:"content,omitempty"` // extracted page text, absent on fetch failure
	Source      string  `json:"source"`            // site label (URL host)
	Credibility float64 `json:"credibility"`
}

// SourceList is stored as a JSON text column.
type SourceList []Source

// Value implements driver.Valuer.
func (s SourceList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *SourceList) Scan(value interface{}) error {
	if value == nil {
		*s = SourceList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for SourceList")
	}
	if len(b) == 0 {
		*s = SourceList{}
		return nil
	}
	return json.Unmarshal(b, s)
}

// Report is a persisted research report.
type Report struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Topic      string     `gorm:"not null;index" json:"topic"`
	Title      string     `gorm:"not null" json:"title"`
	Content    string     `gorm:"not null" json:"content"`
	Summary    string     `json:"summary"`
	Sources    SourceList `gorm:"type:text" json:"sources"`
	CreatedAt  time.Time  `json:"created_at"`
	WordCount  int        `json:"word_count"`
	Status     string     `gorm:"default:completed" json:"status"`
	IsFavorite bool       `gorm:"default:false" json:"is_favorite"`
}

// TableName returns the table name
func (Report) TableName() string { return "reports" }

// SourceRow is the per-source projection stored in the sources table.
type SourceRow struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ReportID    uint    `gorm:"index;constraint:OnDelete:CASCADE" json:"report_id"`
	URL         string  `gorm:"not null" json:"url"`
	Title       string  `json:"title"`
	Snippet     string  `json:"snippet"`
	Credibility float64 `gorm:"column:credibility_score" json:"credibility"`
}

// TableName returns the table name
func (SourceRow) TableName() string { return "sources" }

// ReportVersion is an append-only snapshot of a report. Version numbers are
// unique and strictly increasing per report; snapshots are never mutated.
type ReportVersion struct {
	ID                uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ReportID          uint       `gorm:"uniqueIndex:idx_report_version" json:"report_id"`
	VersionNumber     int        `gorm:"uniqueIndex:idx_report_version" json:"version_number"`
	Title             string     `json:"title"`
	Content           string     `json:"content"`
	Summary           string     `json:"summary"`
	Sources           SourceList `gorm:"type:text" json:"sources"`
	WordCount         int        `json:"word_count"`
	CreatedAt         time.Time  `json:"created_at"`
	ChangeDescription string     `json:"change_description"`
}

// TableName returns the table name
func (ReportVersion) TableName() string { return "report_versions" }

// ReportSummary is the listing projection of a report.
type ReportSummary struct {
	ID         uint      `json:"id"`
	Topic      string    `json:"topic"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
	WordCount  int       `json:"word_count"`
	Status     string    `json:"status"`
	IsFavorite bool      `json:"is_favorite"`
}

// Summarize projects a report to its listing form.
func (r *Report) Summarize() ReportSummary {
	return ReportSummary{
		ID:         r.ID,
		Topic:      r.Topic,
		Title:      r.Title,
		Summary:    r.Summary,
		CreatedAt:  r.CreatedAt,
		WordCount:  r.WordCount,
		Status:     r.Status,
		IsFavorite: r.IsFavorite,
	}
}

// VersionSummary is the listing projection of a version.
type VersionSummary struct {
	ID                uint      `json:"id"`
	ReportID          uint      `json:"report_id"`
	VersionNumber     int       `json:"version_number"`
	Title             string    `json:"title"`
	WordCount         int       `json:"word_count"`
	CreatedAt         time.Time `json:"created_at"`
	ChangeDescription string    `json:"change_description"`
}

// Summarize projects a version to its listing form.
func (v *ReportVersion) Summarize() VersionSummary {
	return VersionSummary{
		ID:                v.ID,
		ReportID:          v.ReportID,
		VersionNumber:     v.VersionNumber,
		Title:             v.Title,
		WordCount:         v.WordCount,
		CreatedAt:         v.CreatedAt,
		ChangeDescription: v.ChangeDescription,
	}
}
