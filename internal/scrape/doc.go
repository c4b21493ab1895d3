// Package scrape extracts field records from a saved person details page.
//
// Elements are located through data-testid selectors compiled with cascadia
// and read from an x/net/html tree. Each field is dispatched on its
// fieldrec.FieldKind: text fields read the element's visible text, event
// fields recurse into the event schema, and gender fields apply the gender
// resolution rule in gender.go. Households are read from the couple cards of
// the family section in document order.
package scrape
