// Package export turns a page snapshot into a GEDCOM file on disk.
//
// A run builds the family graph, renders the text summary and the document,
// writes the file atomically under a lock on the output directory, and
// records the result in the history ledger when one is configured.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gedcard/internal/config"
	"gedcard/internal/family"
	"gedcard/internal/fieldrec"
	"gedcard/internal/fileutil"
	"gedcard/internal/gedcom"
	"gedcard/internal/history"
	"gedcard/internal/logging"
	"gedcard/internal/summary"
)

// Options tweak a single run.
type Options struct {
	// Overwrite replaces an existing document even when the config does not.
	Overwrite bool
}

// Result describes a rendered, and possibly written, document.
// PreviousExports counts earlier ledger entries for the same person.
type Result struct {
	ExportID        string         `json:"export_id"`
	PersonID        string         `json:"person_id"`
	Title           string         `json:"title"`
	FileName        string         `json:"file_name"`
	Path            string         `json:"path,omitempty"`
	SizeBytes       int64          `json:"size_bytes,omitempty"`
	SHA256          string         `json:"sha256,omitempty"`
	Individuals     int            `json:"individuals"`
	Unions          int            `json:"unions"`
	PreviousExports int            `json:"previous_exports"`
	History         *history.Entry `json:"history,omitempty"`

	Document string        `json:"-"`
	Summary  string        `json:"-"`
	Graph    *family.Graph `json:"-"`
}

// Exporter runs snapshots through the pipeline. The history store is optional.
type Exporter struct {
	cfg     *config.Config
	encoder *gedcom.Encoder
	history *history.Store
	logger  *slog.Logger
	newID   func() string
	now     func() time.Time
}

// New builds an exporter. store may be nil to skip the ledger.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger) *Exporter {
	return &Exporter{
		cfg:     cfg,
		encoder: gedcom.New(cfg),
		history: store,
		logger:  logging.NewComponentLogger(logger, "export"),
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Render builds the graph, summary, and document without touching disk.
func (e *Exporter) Render(ctx context.Context, snap *fieldrec.Snapshot) (*Result, error) {
	if snap == nil {
		return nil, errors.New("snapshot is nil")
	}
	local := *snap
	if local.Source.Viewed.IsZero() {
		local.Source.Viewed = e.now().UTC()
	}

	result := &Result{ExportID: e.newID(), PersonID: local.FocalID()}
	ctx = logging.WithPersonID(logging.WithExportID(ctx, result.ExportID), result.PersonID)
	logger := logging.WithContext(ctx, e.logger)

	graph := family.Build(&local, logger)
	report := summary.Format(graph)
	doc, err := e.encoder.Encode(graph, report)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", local.Source.URL, err)
	}

	result.Graph = graph
	result.Title = graph.Source.Title
	result.FileName = gedcom.FileName(graph)
	result.Individuals, result.Unions = graph.Len()
	result.Document = doc
	result.Summary = report

	logger.Debug("document rendered",
		logging.String("title", result.Title),
		logging.Int("individuals", result.Individuals),
		logging.Int("unions", result.Unions),
	)
	return result, nil
}

// Run renders the snapshot, writes it into the configured output directory,
// and records it in the ledger.
func (e *Exporter) Run(ctx context.Context, snap *fieldrec.Snapshot, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := e.Render(ctx, snap)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithPersonID(logging.WithExportID(ctx, result.ExportID), result.PersonID)
	logger := logging.WithContext(ctx, e.logger)

	outputDir := e.cfg.Paths.OutputDir
	target := filepath.Join(outputDir, result.FileName)
	overwrite := opts.Overwrite || e.cfg.Export.Overwrite

	err = fileutil.WithDirLock(ctx, outputDir, func() error {
		written, writeErr := fileutil.WriteFileAtomic(target, []byte(result.Document), 0o644, overwrite)
		if writeErr != nil {
			return writeErr
		}
		result.Path = written.Path
		result.SizeBytes = written.Size
		result.SHA256 = written.SHA256
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", result.FileName, err)
	}

	logger.Info("document written",
		logging.String(logging.FieldEventType, "export_written"),
		logging.String("path", result.Path),
		logging.Int("individuals", result.Individuals),
		logging.Int("unions", result.Unions),
	)

	if e.history != nil && e.cfg.Export.RecordHistory {
		e.record(ctx, logger, result)
	}
	return result, nil
}

// record appends the run to the ledger. Ledger failures never fail the run
// because the document is already on disk.
func (e *Exporter) record(ctx context.Context, logger *slog.Logger, result *Result) {
	previous, err := e.history.FindByPerson(ctx, result.PersonID)
	if err != nil {
		logging.WarnWithContext(logger, "history lookup failed", "history_lookup_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "previous export count unavailable"),
		)
	}
	result.PreviousExports = len(previous)

	entry, err := e.history.Record(ctx, history.Entry{
		ExportID:    result.ExportID,
		PersonID:    result.PersonID,
		Title:       result.Title,
		SourceURL:   result.Graph.Source.URL,
		FilePath:    result.Path,
		SHA256:      result.SHA256,
		SizeBytes:   result.SizeBytes,
		Individuals: result.Individuals,
		Unions:      result.Unions,
		ViewedAt:    result.Graph.Source.Viewed,
		CreatedAt:   e.now().UTC(),
	})
	if err != nil {
		logging.WarnWithContext(logger, "history record failed", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run gedcard history clear if the ledger schema changed"),
			logging.String(logging.FieldImpact, "export missing from history"),
		)
		return
	}
	result.History = entry
}
