// Package textutil provides small text helpers shared by the scraper, the
// encoders, and the CLI.
//
// The primary use cases are:
//   - Sanitizing document titles into safe file names
//   - Normalizing scraped text (whitespace collapse, sentence case)
//   - Case-folded keys for locale-independent lookups
package textutil
