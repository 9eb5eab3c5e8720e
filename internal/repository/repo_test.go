package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/inkwellhq/researchd/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Report{}, &domain.SourceRow{}, &domain.ReportVersion{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleReport() *domain.Report {
	return &domain.Report{
		Topic:     "test topic",
		Title:     "Test Topic: A Study",
		Content:   "## Background and Context\n\nBody text here.",
		Summary:   "A short summary.",
		WordCount: 6,
		Status:    "completed",
		Sources: domain.SourceList{
			{Title: "Src A", URL: "https://a.io/1", Snippet: "snip a", Source: "a.io", Credibility: 0.8},
			{Title: "Src B", URL: "https://b.io/2", Snippet: "snip b", Source: "b.io", Credibility: 0.5},
		},
	}
}

func TestReportRepository_CreateAndRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)

	report := sampleReport()
	if err := repo.Create(report); err != nil {
		t.Fatalf("create: %v", err)
	}
	if report.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	got, err := repo.GetByID(report.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected report, got nil")
	}
	if got.Title != report.Title || got.Content != report.Content ||
		got.Summary != report.Summary || got.WordCount != report.WordCount {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if len(got.Sources) != 2 {
		t.Fatalf("expected 2 sources after deserialization, got %d", len(got.Sources))
	}
	if got.Sources[0] != report.Sources[0] {
		t.Fatalf("source mismatch: %+v vs %+v", got.Sources[0], report.Sources[0])
	}

	// Source rows are projected alongside the JSON column.
	var rows []domain.SourceRow
	if err := db.Where("report_id = ?", report.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load source rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 source rows, got %d", len(rows))
	}
}

func TestReportRepository_GetMissing(t *testing.T) {
	repo := NewReportRepository(openTestDB(t))
	got, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing report")
	}
}

func TestReportRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	report := sampleReport()
	if err := repo.Create(report); err != nil {
		t.Fatal(err)
	}

	deleted, err := repo.Delete(report.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report success")
	}

	var count int64
	db.Model(&domain.SourceRow{}).Where("report_id = ?", report.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected cascaded source rows removal, %d left", count)
	}

	deleted, err = repo.Delete(report.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatal("expected delete of missing report to report false")
	}
}

func TestReportRepository_Search(t *testing.T) {
	repo := NewReportRepository(openTestDB(t))
	a := sampleReport()
	a.Topic = "quantum computing"
	a.Title = "Quantum Leaps"
	if err := repo.Create(a); err != nil {
		t.Fatal(err)
	}
	b := sampleReport()
	b.Topic = "gardening"
	b.Title = "Growing Tomatoes"
	if err := repo.Create(b); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Search("quant")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Topic != "quantum computing" {
		t.Fatalf("unexpected search result: %+v", got)
	}

	// Title is matched too.
	got, err = repo.Search("Tomatoes")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Topic != "gardening" {
		t.Fatalf("unexpected title search result: %+v", got)
	}
}

func TestReportRepository_ToggleFavoriteTwiceReturnsToOriginal(t *testing.T) {
	repo := NewReportRepository(openTestDB(t))
	report := sampleReport()
	if err := repo.Create(report); err != nil {
		t.Fatal(err)
	}

	first, err := repo.ToggleFavorite(report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !first.IsFavorite {
		t.Fatal("expected favorite after first toggle")
	}

	favs, err := repo.ListFavorites()
	if err != nil {
		t.Fatal(err)
	}
	if len(favs) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favs))
	}

	second, err := repo.ToggleFavorite(report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if second.IsFavorite {
		t.Fatal("expected original value after second toggle")
	}
}

func TestReportRepository_ToggleFavoriteMissing(t *testing.T) {
	repo := NewReportRepository(openTestDB(t))
	got, err := repo.ToggleFavorite(404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing report")
	}
}
