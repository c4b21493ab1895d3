package history_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"gedcard/internal/history"
	"gedcard/internal/testsupport"
)

func sampleEntry(exportID, personID string) history.Entry {
	return history.Entry{
		ExportID:    exportID,
		PersonID:    personID,
		Title:       "John James Smith (1850–1920, " + personID + ")",
		SourceURL:   "https://www.familysearch.org/tree/person/details/" + personID,
		FilePath:    "/tmp/out/" + personID + ".ged",
		SHA256:      "abc123",
		SizeBytes:   2048,
		Individuals: 3,
		Unions:      1,
		ViewedAt:    time.Date(2024, 6, 28, 15, 4, 5, 0, time.UTC),
	}
}

func TestRecordAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	entry, err := store.Record(ctx, sampleEntry("export-1", "ABCD-123"))
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("expected row id to be assigned")
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
	if entry.PersonID != "ABCD-123" || entry.Individuals != 3 || entry.SizeBytes != 2048 {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if !entry.ViewedAt.Equal(time.Date(2024, 6, 28, 15, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected viewed_at %v", entry.ViewedAt)
	}

	missing, err := store.GetByID(ctx, entry.ID+100)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing row, got %#v", missing)
	}
}

func TestRecordRequiresIDs(t *testing.T) {
	store := testsupport.MustOpenHistory(t, testsupport.NewConfig(t))
	ctx := context.Background()
	if _, err := store.Record(ctx, sampleEntry("", "ABCD-123")); err == nil {
		t.Fatal("expected error without export id")
	}
	if _, err := store.Record(ctx, sampleEntry("export-1", " ")); err == nil {
		t.Fatal("expected error without person id")
	}
	if _, err := store.Record(ctx, sampleEntry("dup", "ABCD-123")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, err := store.Record(ctx, sampleEntry("dup", "ABCD-123")); err == nil {
		t.Fatal("expected duplicate export id to be rejected")
	}
}

func TestListFindAndClear(t *testing.T) {
	store := testsupport.MustOpenHistory(t, testsupport.NewConfig(t))
	ctx := context.Background()

	for i, pid := range []string{"ABCD-123", "EFGH-456", "ABCD-123"} {
		if _, err := store.Record(ctx, sampleEntry("export-"+string(rune('a'+i)), pid)); err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 || all[0].ExportID != "export-c" {
		t.Fatalf("expected newest first, got %#v", all)
	}

	limited, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(limited))
	}

	mine, err := store.FindByPerson(ctx, "ABCD-123")
	if err != nil {
		t.Fatalf("FindByPerson failed: %v", err)
	}
	if len(mine) != 2 || mine[0].ExportID != "export-c" || mine[1].ExportID != "export-a" {
		t.Fatalf("unexpected entries %#v", mine)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	empty, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(empty))
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()

	db, err := sql.Open("sqlite", cfg.Paths.HistoryDB)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	db.Close()

	if _, err := history.Open(cfg); !errors.Is(err, history.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.Record(context.Background(), sampleEntry("export-1", "ABCD-123")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	store.Close()

	reopened := testsupport.MustOpenHistory(t, cfg)
	entries, err := reopened.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after reopen, got %d", len(entries))
	}
}
