package family

import (
	"slices"
	"strings"
	"time"

	"gedcard/internal/fieldrec"
)

// Event is a dated and/or placed vital event.
type Event struct {
	Date  string
	Place string
}

func eventFrom(fields *fieldrec.EventFields) *Event {
	fields = fields.Normalize()
	if fields == nil {
		return nil
	}
	return &Event{Date: fields.Date, Place: fields.Place}
}

func (e *Event) clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// Individual is one person in the graph, keyed by the external person id.
type Individual struct {
	ID          string
	FullName    string
	Lifespan    string
	Gender      string
	Birth       *Event
	Christening *Event
	Death       *Event
	Burial      *Event
	// PartnerIn lists union ids where this person is a spouse.
	PartnerIn []string
	// ChildOf lists union ids where this person is a child.
	ChildOf []string
}

// Label renders "<name> (<lifespan>, <id>)", dropping the lifespan when unknown.
func (i *Individual) Label() string {
	if i == nil {
		return ""
	}
	name := strings.TrimSpace(i.FullName)
	if i.Lifespan != "" {
		return strings.TrimSpace(name + " (" + i.Lifespan + ", " + i.ID + ")")
	}
	return strings.TrimSpace(name + " (" + i.ID + ")")
}

func (i *Individual) clone() *Individual {
	c := *i
	c.Birth = i.Birth.clone()
	c.Christening = i.Christening.clone()
	c.Death = i.Death.clone()
	c.Burial = i.Burial.clone()
	c.PartnerIn = slices.Clone(i.PartnerIn)
	c.ChildOf = slices.Clone(i.ChildOf)
	return &c
}

// Union is a couple and the children listed under them.
type Union struct {
	ID        string
	HusbandID string
	WifeID    string
	Marriage  *Event
	// Children holds individual ids in document order.
	Children []string
}

func (u *Union) clone() *Union {
	c := *u
	c.Marriage = u.Marriage.clone()
	c.Children = slices.Clone(u.Children)
	return &c
}

// UnionID derives the composite union key. Order matters: the same couple
// scraped with the roles swapped gets a different id.
func UnionID(husbandID, wifeID string) string {
	return husbandID + "_" + wifeID
}

// Provenance describes the page snapshot the graph was built from.
type Provenance struct {
	Title   string
	URL     string
	FocalID string
	Viewed  time.Time
}

// Graph is the finished, read-only result of a Builder.
type Graph struct {
	Source Provenance

	individualIDs []string
	individuals   map[string]*Individual
	unionIDs      []string
	unions        map[string]*Union
}

func newGraph() *Graph {
	return &Graph{
		individuals: make(map[string]*Individual),
		unions:      make(map[string]*Union),
	}
}

// IndividualIDs returns individual ids in insertion order.
func (g *Graph) IndividualIDs() []string {
	return append([]string(nil), g.individualIDs...)
}

// UnionIDs returns union ids in insertion order.
func (g *Graph) UnionIDs() []string {
	return append([]string(nil), g.unionIDs...)
}

// Individual looks up a person by external id. The result is a copy, so
// changing it leaves the graph untouched.
func (g *Graph) Individual(id string) (*Individual, bool) {
	ind, ok := g.individuals[id]
	if !ok {
		return nil, false
	}
	return ind.clone(), true
}

// Union looks up a union by its composite id. The result is a copy.
func (g *Graph) Union(id string) (*Union, bool) {
	u, ok := g.unions[id]
	if !ok {
		return nil, false
	}
	return u.clone(), true
}

// Focal returns the individual the snapshot is about.
func (g *Graph) Focal() (*Individual, bool) {
	return g.Individual(g.Source.FocalID)
}

// Individuals returns copies of every individual in insertion order.
func (g *Graph) Individuals() []*Individual {
	out := make([]*Individual, 0, len(g.individualIDs))
	for _, id := range g.individualIDs {
		out = append(out, g.individuals[id].clone())
	}
	return out
}

// Unions returns copies of every union in insertion order.
func (g *Graph) Unions() []*Union {
	out := make([]*Union, 0, len(g.unionIDs))
	for _, id := range g.unionIDs {
		out = append(out, g.unions[id].clone())
	}
	return out
}

// Len reports the number of individuals and unions.
func (g *Graph) Len() (individuals, unions int) {
	return len(g.individualIDs), len(g.unionIDs)
}
