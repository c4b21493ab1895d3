package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gedcard/internal/fileutil"
	"gedcard/internal/gedcom"
	"gedcard/internal/testsupport"
)

func fixedExporter(e *Exporter) *Exporter {
	counter := 0
	e.newID = func() string {
		counter++
		return "export-" + string(rune('0'+counter))
	}
	e.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return e
}

func TestRunWritesDocumentAndHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	exp := fixedExporter(New(cfg, store, nil))
	ctx := context.Background()

	result, err := exp.Run(ctx, testsupport.SmithSnapshot(), Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	wantPath := filepath.Join(cfg.Paths.OutputDir, "John James Smith (1850–1920, ABCD-123).ged")
	if result.Path != wantPath {
		t.Fatalf("unexpected path %q, want %q", result.Path, wantPath)
	}
	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if string(data) != result.Document {
		t.Fatal("file content differs from rendered document")
	}
	sum := sha256.Sum256(data)
	if result.SHA256 != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected sha256 %q", result.SHA256)
	}
	if result.Individuals != 5 || result.Unions != 2 {
		t.Fatalf("unexpected counts %d/%d", result.Individuals, result.Unions)
	}
	if result.History == nil || result.History.ExportID != "export-1" || result.History.PersonID != "ABCD-123" {
		t.Fatalf("unexpected history entry %#v", result.History)
	}
	if result.PreviousExports != 0 {
		t.Fatalf("expected no previous exports, got %d", result.PreviousExports)
	}
	if !strings.Contains(result.Document, "1 TEXT John James Smith (1850–1920, ABCD-123)\n") {
		t.Fatalf("expected summary text in source record:\n%s", result.Document)
	}

	if _, err := exp.Run(ctx, testsupport.SmithSnapshot(), Options{}); !errors.Is(err, fileutil.ErrExists) {
		t.Fatalf("expected ErrExists on second run, got %v", err)
	}

	again, err := exp.Run(ctx, testsupport.SmithSnapshot(), Options{Overwrite: true})
	if err != nil {
		t.Fatalf("Run with overwrite failed: %v", err)
	}
	if again.PreviousExports != 1 {
		t.Fatalf("expected one previous export, got %d", again.PreviousExports)
	}
	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(entries))
	}
}

func TestRunWithoutHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutHistory())
	result, err := New(cfg, nil, nil).Run(context.Background(), testsupport.SmithSnapshot(), Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.History != nil {
		t.Fatalf("expected no history entry, got %#v", result.History)
	}
	if _, err := os.Stat(result.Path); err != nil {
		t.Fatalf("expected document on disk: %v", err)
	}
}

func TestRenderFocalNotFound(t *testing.T) {
	snap := testsupport.SmithSnapshot()
	snap.Source.PID = ""
	snap.Source.URL = "https://www.familysearch.org/search"
	_, err := New(testsupport.NewConfig(t), nil, nil).Render(context.Background(), snap)
	if !errors.Is(err, gedcom.ErrFocalNotFound) {
		t.Fatalf("expected ErrFocalNotFound, got %v", err)
	}
}

func TestRenderDefaultsViewedToNow(t *testing.T) {
	snap := testsupport.SmithSnapshot()
	snap.Source.Viewed = time.Time{}
	exp := fixedExporter(New(testsupport.NewConfig(t), nil, nil))
	result, err := exp.Render(context.Background(), snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(result.Document, "1 DATE 2 Jan 2025\n") {
		t.Fatalf("expected header date from clock:\n%s", result.Document)
	}
	if !snap.Source.Viewed.IsZero() {
		t.Fatal("expected caller snapshot to be left untouched")
	}
	if result.Path != "" {
		t.Fatalf("expected Render not to write, got path %q", result.Path)
	}
}
