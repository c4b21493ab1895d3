package family

import (
	"log/slog"
	"strings"

	"gedcard/internal/fieldrec"
	"gedcard/internal/logging"
	"gedcard/internal/textutil"
)

// Membership carries union ids to merge into an individual.
type Membership struct {
	PartnerIn []string
	ChildOf   []string
}

// Builder accumulates individuals and unions. It is not safe for concurrent use.
type Builder struct {
	graph  *Graph
	sealed bool
	logger *slog.Logger
}

// NewBuilder returns an empty builder. A nil logger discards output.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{
		graph:  newGraph(),
		logger: logging.NewComponentLogger(logger, "family"),
	}
}

// SetSource records snapshot provenance on the graph.
func (b *Builder) SetSource(src Provenance) {
	if b.sealed {
		return
	}
	b.graph.Source = src
}

// AddIndividual adds or merges a person. Records without an id are ignored.
// On a repeat id the membership lists are appended (duplicates are kept), a
// non-empty lifespan replaces the stored one, and name, gender, and events
// are only filled when still missing.
func (b *Builder) AddIndividual(person *fieldrec.PersonFields, tags Membership) {
	if b.sealed {
		return
	}
	id := person.ID()
	if id == "" {
		b.logger.Debug("person without id skipped",
			logging.String(logging.FieldEventType, "person_skipped"),
		)
		return
	}

	if existing, ok := b.graph.individuals[id]; ok {
		existing.PartnerIn = append(existing.PartnerIn, tags.PartnerIn...)
		existing.ChildOf = append(existing.ChildOf, tags.ChildOf...)
		if lifespan := strings.TrimSpace(person.Lifespan); lifespan != "" {
			existing.Lifespan = lifespan
		}
		fillString(&existing.FullName, textutil.CollapseSpace(person.FullName))
		fillString(&existing.Gender, normalizeGender(person.Gender))
		fillEvent(&existing.Birth, person.Birth)
		fillEvent(&existing.Christening, person.Christening)
		fillEvent(&existing.Death, person.Death)
		fillEvent(&existing.Burial, person.Burial)
		return
	}

	b.graph.individuals[id] = &Individual{
		ID:          id,
		FullName:    textutil.CollapseSpace(person.FullName),
		Lifespan:    strings.TrimSpace(person.Lifespan),
		Gender:      normalizeGender(person.Gender),
		Birth:       eventFrom(person.Birth),
		Christening: eventFrom(person.Christening),
		Death:       eventFrom(person.Death),
		Burial:      eventFrom(person.Burial),
		PartnerIn:   append([]string(nil), tags.PartnerIn...),
		ChildOf:     append([]string(nil), tags.ChildOf...),
	}
	b.graph.individualIDs = append(b.graph.individualIDs, id)
}

// AddUnion registers a couple and cascades their members into the graph.
// It returns the union id and whether anything was added. A union whose id is
// already known is left untouched, and a couple with neither id is skipped.
func (b *Builder) AddUnion(husband, wife *fieldrec.PersonFields, marriage *fieldrec.EventFields, children []*fieldrec.PersonFields) (string, bool) {
	if b.sealed {
		return "", false
	}
	husbandID, wifeID := husband.ID(), wife.ID()
	if husbandID == "" && wifeID == "" {
		return "", false
	}
	unionID := UnionID(husbandID, wifeID)
	if _, ok := b.graph.unions[unionID]; ok {
		return unionID, false
	}

	union := &Union{
		ID:        unionID,
		HusbandID: husbandID,
		WifeID:    wifeID,
		Marriage:  eventFrom(marriage),
	}
	for _, child := range children {
		if childID := child.ID(); childID != "" {
			union.Children = append(union.Children, childID)
		}
	}
	b.graph.unions[unionID] = union
	b.graph.unionIDs = append(b.graph.unionIDs, unionID)

	spouse := Membership{PartnerIn: []string{unionID}}
	b.AddIndividual(husband, spouse)
	b.AddIndividual(wife, spouse)
	for _, child := range children {
		b.AddIndividual(child, Membership{ChildOf: []string{unionID}})
	}
	return unionID, true
}

// ScrapeHouseholds feeds every household through AddUnion, skipping those
// where neither parent carries an id.
func (b *Builder) ScrapeHouseholds(households []fieldrec.Household) {
	for i, h := range households {
		if h.Husband.ID() == "" && h.Wife.ID() == "" {
			b.logger.Debug("household without parent id skipped",
				logging.String(logging.FieldEventType, "household_skipped"),
				logging.Int("household_index", i),
			)
			continue
		}
		b.AddUnion(h.Husband, h.Wife, h.Marriage, h.Children)
	}
}

// AddFocal adds the focal individual from the vitals record under focalID.
// The focal person is always created, even without vitals, so it is the
// first individual in the graph.
func (b *Builder) AddFocal(focalID string, vitals *fieldrec.PersonFields) {
	person := fieldrec.PersonFields{}
	if vitals != nil {
		person = *vitals
	}
	person.PID = focalID
	b.AddIndividual(&person, Membership{})
}

// Graph seals the builder and returns the finished graph. Later Add calls
// are ignored.
func (b *Builder) Graph() *Graph {
	b.sealed = true
	ind, uni := b.graph.Len()
	b.logger.Debug("family graph built",
		logging.Int("individuals", ind),
		logging.Int("unions", uni),
	)
	return b.graph
}

// Build runs a full snapshot through a new builder: the focal vitals first,
// then every household. The source title is rewritten to the focal label.
func Build(snap *fieldrec.Snapshot, logger *slog.Logger) *Graph {
	b := NewBuilder(logger)
	focalID := snap.FocalID()
	b.SetSource(Provenance{
		Title:   strings.TrimSpace(snap.Source.Title),
		URL:     strings.TrimSpace(snap.Source.URL),
		FocalID: focalID,
		Viewed:  snap.Source.Viewed,
	})
	b.AddFocal(focalID, snap.Vitals)
	b.ScrapeHouseholds(snap.Households)
	if focal, ok := b.graph.individuals[focalID]; ok {
		b.graph.Source.Title = focal.Label()
	}
	return b.Graph()
}

func fillString(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}

func fillEvent(dst **Event, fields *fieldrec.EventFields) {
	if *dst != nil {
		return
	}
	*dst = eventFrom(fields)
}

// normalizeGender sentence-cases the recorded gender ("MALE" -> "Male").
func normalizeGender(value string) string {
	return textutil.SentenceCase(value)
}
