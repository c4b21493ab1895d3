package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gedcard/internal/testsupport"
)

const pageHTML = `<!DOCTYPE html>
<html><head>
<title>Ann Lee (1800–1850) • FamilySearch</title>
<link rel="canonical" href="https://www.familysearch.org/tree/person/details/LEE-001">
</head><body>
<div data-testid="conclusionDisplay:NAME"><span data-testid="conclusion-body">Ann Lee</span></div>
</body></html>`

func TestLoadSnapshotHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(pageHTML), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
	snap, err := loadSnapshot(path, snapshotFlags{viewed: "2024-06-28T10:00:00Z"}, nil)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if snap.FocalID() != "LEE-001" {
		t.Fatalf("unexpected focal id %q", snap.FocalID())
	}
	if !snap.Source.Viewed.Equal(time.Date(2024, 6, 28, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected viewed %v", snap.Source.Viewed)
	}
	if snap.Vitals == nil || snap.Vitals.FullName != "Ann Lee" {
		t.Fatalf("unexpected vitals %#v", snap.Vitals)
	}
}

func TestLoadSnapshotJSONOverrides(t *testing.T) {
	snap := testsupport.SmithSnapshot()
	path := testsupport.WriteSnapshot(t, t.TempDir(), snap)

	loaded, err := loadSnapshot(path, snapshotFlags{
		url:    "https://www.familysearch.org/tree/person/details/EFGH-456",
		viewed: "2024-07-01",
	}, nil)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if loaded.FocalID() != "EFGH-456" {
		t.Fatalf("expected URL override to change focal id, got %q", loaded.FocalID())
	}
	if !loaded.Source.Viewed.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected viewed %v", loaded.Source.Viewed)
	}
}

func TestParseViewed(t *testing.T) {
	if v, err := parseViewed(""); err != nil || !v.IsZero() {
		t.Fatalf("expected zero time for empty input, got %v %v", v, err)
	}
	if _, err := parseViewed("yesterday"); err == nil {
		t.Fatal("expected error for unparseable value")
	}
}
