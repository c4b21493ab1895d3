// Package fieldrec defines the normalized field records a page scraper hands
// to the family graph builder.
//
// Three record shapes exist: person (a relative shown on a family card),
// event (date and place of a vital event), and vitals (the focal individual's
// conclusion section). Each shape is described by a Schema, a list of fields
// with a closed FieldKind so scrapers dispatch on a type-checked variant rather
// than free-form tags. Snapshots can also be round-tripped as JSON, which is
// the format external scrapers use to hand records to the CLI.
package fieldrec
