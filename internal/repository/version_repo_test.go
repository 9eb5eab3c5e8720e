package repository

import (
	"fmt"
	"testing"

	"github.com/inkwellhq/researchd/internal/domain"
)

func TestVersionRepository_SequentialNumbers(t *testing.T) {
	db := openTestDB(t)
	reports := NewReportRepository(db)
	versions := NewVersionRepository(db)

	report := sampleReport()
	if err := reports.Create(report); err != nil {
		t.Fatal(err)
	}

	const n = 4
	for i := 0; i < n; i++ {
		v, err := versions.Snapshot(report.ID, fmt.Sprintf("save %d", i+1))
		if err != nil {
			t.Fatalf("snapshot %d: %v", i+1, err)
		}
		if v == nil {
			t.Fatalf("snapshot %d: nil version", i+1)
		}
		if v.VersionNumber != i+1 {
			t.Fatalf("snapshot %d: got version number %d", i+1, v.VersionNumber)
		}
	}

	list, err := versions.ListByReport(report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != n {
		t.Fatalf("expected %d versions, got %d", n, len(list))
	}
	// Newest first, numbered n..1 with no gaps.
	for i, v := range list {
		if v.VersionNumber != n-i {
			t.Fatalf("position %d: version number %d", i, v.VersionNumber)
		}
	}
}

func TestVersionRepository_SnapshotMissingReport(t *testing.T) {
	versions := NewVersionRepository(openTestDB(t))
	v, err := versions.Snapshot(12345, "save")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Fatal("expected nil for missing report")
	}
}

func TestVersionRepository_SnapshotCopiesLiveState(t *testing.T) {
	db := openTestDB(t)
	reports := NewReportRepository(db)
	versions := NewVersionRepository(db)

	report := sampleReport()
	if err := reports.Create(report); err != nil {
		t.Fatal(err)
	}

	v, err := versions.Snapshot(report.ID, "Manual save")
	if err != nil {
		t.Fatal(err)
	}
	if v.Title != report.Title || v.Content != report.Content ||
		v.Summary != report.Summary || v.WordCount != report.WordCount {
		t.Fatalf("snapshot does not match live report: %+v", v)
	}
	if len(v.Sources) != len(report.Sources) {
		t.Fatalf("expected %d sources in snapshot, got %d", len(report.Sources), len(v.Sources))
	}
	if v.ChangeDescription != "Manual save" {
		t.Fatalf("unexpected change description %q", v.ChangeDescription)
	}
}

func TestVersionRepository_Restore(t *testing.T) {
	db := openTestDB(t)
	reports := NewReportRepository(db)
	versions := NewVersionRepository(db)

	report := sampleReport()
	report.Content = "original content"
	if err := reports.Create(report); err != nil {
		t.Fatal(err)
	}

	// Version 1 captures the original content.
	if _, err := versions.Snapshot(report.ID, "first"); err != nil {
		t.Fatal(err)
	}

	// Mutate the live report so the restore is observable.
	if err := db.Model(&domain.Report{}).Where("id = ?", report.ID).
		Update("content", "edited content").Error; err != nil {
		t.Fatal(err)
	}

	restored, err := versions.Restore(report.ID, 1)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil {
		t.Fatal("expected restored report")
	}
	if restored.Content != "original content" {
		t.Fatalf("live content not restored: %q", restored.Content)
	}

	// Restore creates exactly one auto-save snapshot of the pre-restore state.
	list, err := versions.ListByReport(report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 versions after restore, got %d", len(list))
	}
	auto := list[0]
	if auto.VersionNumber != 2 {
		t.Fatalf("auto-save version number %d", auto.VersionNumber)
	}
	if auto.Content != "edited content" {
		t.Fatalf("auto-save captured %q, want pre-restore content", auto.Content)
	}
	if auto.ChangeDescription != "Auto-save before restoring to version 1" {
		t.Fatalf("unexpected auto-save description %q", auto.ChangeDescription)
	}

	// The live row reflects the restore as well.
	live, err := reports.GetByID(report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if live.Content != "original content" {
		t.Fatalf("stored content %q", live.Content)
	}
}

func TestVersionRepository_RestoreMissingVersion(t *testing.T) {
	db := openTestDB(t)
	reports := NewReportRepository(db)
	versions := NewVersionRepository(db)

	report := sampleReport()
	if err := reports.Create(report); err != nil {
		t.Fatal(err)
	}

	restored, err := versions.Restore(report.ID, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != nil {
		t.Fatal("expected nil for missing version")
	}

	// A failed restore must not leave a stray auto-save behind.
	list, err := versions.ListByReport(report.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no versions, got %d", len(list))
	}
}

func TestVersionRepository_Get(t *testing.T) {
	db := openTestDB(t)
	reports := NewReportRepository(db)
	versions := NewVersionRepository(db)

	report := sampleReport()
	if err := reports.Create(report); err != nil {
		t.Fatal(err)
	}
	if _, err := versions.Snapshot(report.ID, "first"); err != nil {
		t.Fatal(err)
	}

	v, err := versions.Get(report.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v == nil || v.VersionNumber != 1 {
		t.Fatalf("unexpected version: %+v", v)
	}

	missing, err := versions.Get(report.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing version number")
	}
}
