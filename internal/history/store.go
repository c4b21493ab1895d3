package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"gedcard/internal/config"
)

// Store manages the export ledger backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger at cfg.Paths.HistoryDB.
func Open(cfg *config.Config) (*Store, error) {
	dbPath := strings.TrimSpace(cfg.Paths.HistoryDB)
	if dbPath == "" {
		return nil, errors.New("paths.history_db is not set")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts an entry and returns it with its row id and creation time set.
func (s *Store) Record(ctx context.Context, entry Entry) (*Entry, error) {
	if strings.TrimSpace(entry.ExportID) == "" {
		return nil, errors.New("export id is required")
	}
	if strings.TrimSpace(entry.PersonID) == "" {
		return nil, errors.New("person id is required")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO exports (
            export_id, person_id, title, source_url, file_path, sha256,
            size_bytes, individuals, unions, viewed_at, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ExportID,
		entry.PersonID,
		nullableString(entry.Title),
		nullableString(entry.SourceURL),
		nullableString(entry.FilePath),
		nullableString(entry.SHA256),
		entry.SizeBytes,
		entry.Individuals,
		entry.Unions,
		nullableTime(entry.ViewedAt),
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert export: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches an entry by row id. A missing row returns nil, nil.
func (s *Store) GetByID(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM exports WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get export: %w", err)
	}
	return entry, nil
}

// List returns the newest entries first. A limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM exports ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

// FindByPerson returns every export of a person, newest first.
func (s *Store) FindByPerson(ctx context.Context, personID string) ([]Entry, error) {
	return s.query(ctx,
		`SELECT `+entryColumns+` FROM exports WHERE person_id = ? ORDER BY id DESC`,
		strings.TrimSpace(personID),
	)
}

// Clear removes every entry and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exports`)
	if err != nil {
		return 0, fmt.Errorf("clear exports: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}
	return entries, nil
}
