package history

import (
	"database/sql"
	"errors"
	"time"
)

// Entry is one generated document.
type Entry struct {
	ID          int64     `json:"id"`
	ExportID    string    `json:"export_id"`
	PersonID    string    `json:"person_id"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"source_url"`
	FilePath    string    `json:"file_path"`
	SHA256      string    `json:"sha256"`
	SizeBytes   int64     `json:"size_bytes"`
	Individuals int       `json:"individuals"`
	Unions      int       `json:"unions"`
	ViewedAt    time.Time `json:"viewed_at,omitzero"`
	CreatedAt   time.Time `json:"created_at"`
}

const entryColumns = "id, export_id, person_id, title, source_url, file_path, sha256, size_bytes, individuals, unions, viewed_at, created_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry      Entry
		title      sql.NullString
		sourceURL  sql.NullString
		filePath   sql.NullString
		sha        sql.NullString
		viewedRaw  sql.NullString
		createdRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.ExportID,
		&entry.PersonID,
		&title,
		&sourceURL,
		&filePath,
		&sha,
		&entry.SizeBytes,
		&entry.Individuals,
		&entry.Unions,
		&viewedRaw,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	entry.Title = title.String
	entry.SourceURL = sourceURL.String
	entry.FilePath = filePath.String
	entry.SHA256 = sha.String
	if viewedRaw.Valid {
		if t, err := parseTimeString(viewedRaw.String); err == nil {
			entry.ViewedAt = t
		}
	}
	if t, err := parseTimeString(createdRaw); err == nil {
		entry.CreatedAt = t
	}
	return &entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableTime(value time.Time) any {
	if value.IsZero() {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
