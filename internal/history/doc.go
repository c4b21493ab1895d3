// Package history records every generated GEDCOM document in a SQLite
// ledger so past exports can be listed and traced back to their source page.
//
// The schema is created on first open and stamped with a version. A database
// carrying a different version is rejected with ErrSchemaMismatch rather than
// migrated; clearing the ledger is always safe because the documents
// themselves live on disk.
package history
