package logging

import (
	"context"
	"log/slog"
)

type contextKey int

const (
	exportIDKey contextKey = iota
	personIDKey
)

// WithExportID stores the export run id on ctx.
func WithExportID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, exportIDKey, id)
}

// WithPersonID stores the focal person id on ctx.
func WithPersonID(ctx context.Context, pid string) context.Context {
	return context.WithValue(ctx, personIDKey, pid)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := ctx.Value(exportIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldExportID, id))
	}
	if pid, ok := ctx.Value(personIDKey).(string); ok && pid != "" {
		fields = append(fields, slog.String(FieldPersonID, pid))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
