// Package family builds a deduplicated graph of individuals and unions from
// scraped household records.
//
// The same person routinely appears more than once on a page (as a child in
// one household and a spouse in another), so Builder merges rather than
// overwrites: membership lists accumulate, the lifespan text is refreshed, and
// events are only filled in when still missing. Union ids are derived from the
// husband and wife ids, which makes re-adding a household a no-op.
//
// Insertion order is preserved for both individuals and unions because it
// drives cross-reference numbering in the GEDCOM encoder. Nothing in this
// package sorts.
package family
