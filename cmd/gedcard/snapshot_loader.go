package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gedcard/internal/fieldrec"
	"gedcard/internal/scrape"
)

// snapshotFlags are the source overrides shared by every command that reads
// a snapshot.
type snapshotFlags struct {
	url    string
	viewed string
}

// loadSnapshot reads a scraper JSON file or a saved HTML page, chosen by
// extension. Flag overrides win over values found in the file. When no view
// time is known the file's modification time is used.
func loadSnapshot(path string, flags snapshotFlags, logger *slog.Logger) (*fieldrec.Snapshot, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}
	viewed, err := parseViewed(flags.viewed)
	if err != nil {
		return nil, err
	}
	url := strings.TrimSpace(flags.url)

	var snap *fieldrec.Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		snap, err = scrape.ParseFile(path, scrape.Options{URL: url, Viewed: viewed, Logger: logger})
		if err != nil {
			return nil, err
		}
	case ".json":
		snap, err = fieldrec.Load(path)
		if err != nil {
			return nil, err
		}
		if url != "" {
			snap.Source.URL = url
			snap.Source.PID = fieldrec.PIDFromURL(url)
		}
		if !viewed.IsZero() {
			snap.Source.Viewed = viewed
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot type %q (expected .json, .html, or .htm)", filepath.Ext(path))
	}

	if snap.Source.Viewed.IsZero() {
		snap.Source.Viewed = info.ModTime().UTC()
	}
	return snap, nil
}

// parseViewed accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseViewed(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --viewed value %q (use RFC3339 or YYYY-MM-DD)", value)
}
