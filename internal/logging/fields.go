package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldExportID is the standardized structured logging key for export run identifiers.
	FieldExportID = "export_id"
	// FieldPersonID is the standardized structured logging key for external person ids.
	FieldPersonID = "pid"
	// FieldEventType classifies a log line for filtering (e.g. household_skipped).
	FieldEventType = "event_type"
	// FieldErrorHint carries a short next step for the reader of a warning.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)
