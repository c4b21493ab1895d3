package fileutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "nested", "out.ged")

	content := []byte("0 HEAD\n0 TRLR\n")
	res, err := WriteFileAtomic(dst, content, 0o644, false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
	sum := sha256.Sum256(content)
	if res.SHA256 != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected hash %s", res.SHA256)
	}
	if res.Size != int64(len(content)) {
		t.Fatalf("unexpected size %d", res.Size)
	}

	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFileAtomic_RefusesExisting(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.ged")
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := WriteFileAtomic(dst, []byte("new"), 0o644, false)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	if _, err := WriteFileAtomic(dst, []byte("new"), 0o644, true); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("expected overwritten content, got %q", got)
	}
}

func TestWithDirLock(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	called := false
	err := WithDirLock(context.Background(), dir, func() error {
		called = true
		if _, err := os.Stat(filepath.Join(dir, lockFileName)); err != nil {
			t.Fatalf("expected lock file: %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("expected callback to run")
	}
}

func TestWithDirLock_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	err := WithDirLock(context.Background(), t.TempDir(), func() error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}
