// Package config loads, normalizes, and validates gedcard configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GEDCARD_OUTPUT_DIR. The Config type centralizes the output location, the
// GEDCOM header/source/submitter text, export behaviour, and logging knobs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
