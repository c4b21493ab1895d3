// Package logging assembles structured slog loggers and formatting helpers used
// across gedcard.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so the export pipeline can tag
// log lines with the export id and focal person id. The package also provides
// a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
