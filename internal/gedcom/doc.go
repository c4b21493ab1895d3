// Package gedcom renders a family graph as a GEDCOM 5.5.1 lineage-linked
// document.
//
// Records are emitted in a fixed order: header, individuals, the submitter
// stub, families, notes (none yet), the page source, and the trailer.
// Individuals are numbered @I1@, @I2@, ... and families @F1@, @F2@, ... in
// graph insertion order, so the same graph always produces byte-identical
// output.
//
// Encoding runs in two passes. The first builds every individual's base
// record. The second builds the family records and collects the FAMS/FAMC
// back-references separately; both halves are merged only when the document
// is serialized.
package gedcom
