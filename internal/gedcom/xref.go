package gedcom

import (
	"fmt"

	"gedcard/internal/family"
)

// Xrefs maps graph ids to the cross-reference ids used in the document.
type Xrefs struct {
	Individuals map[string]string
	Unions      map[string]string
}

// AssignXrefs numbers individuals @I1@, @I2@, ... and unions @F1@, @F2@, ...
// in graph insertion order. The two counters are independent.
func AssignXrefs(g *family.Graph) Xrefs {
	x := Xrefs{
		Individuals: make(map[string]string),
		Unions:      make(map[string]string),
	}
	for i, id := range g.IndividualIDs() {
		x.Individuals[id] = fmt.Sprintf("@I%d@", i+1)
	}
	for i, id := range g.UnionIDs() {
		x.Unions[id] = fmt.Sprintf("@F%d@", i+1)
	}
	return x
}
