package gedcom

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gedcard/internal/config"
	"gedcard/internal/family"
	"gedcard/internal/textutil"
)

const (
	// Version is the GEDCOM version written to the header.
	Version = "5.5.1"
	// Extension is appended to sanitized titles to form file names.
	Extension = ".ged"

	submitterXref = "@SUB1@"
	sourceXref    = "@S1@"
)

// ErrFocalNotFound is returned when the graph's focal id does not resolve to
// an individual. No document is produced in that case.
var ErrFocalNotFound = errors.New("focal individual not found")

// FocalError carries the unresolved focal id and page URL. It matches
// ErrFocalNotFound under errors.Is.
type FocalError struct {
	FocalID string
	URL     string
}

func (e *FocalError) Error() string {
	return fmt.Sprintf("%s: %q in %s", ErrFocalNotFound, e.FocalID, e.URL)
}

// Is reports whether target is ErrFocalNotFound.
func (e *FocalError) Is(target error) bool {
	return target == ErrFocalNotFound
}

// Diagnostic returns the short line shown to users in place of a document.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var focal *FocalError
	if !errors.As(err, &focal) {
		return err.Error()
	}
	if focal.FocalID == "" {
		return "No person id found for " + focal.URL
	}
	return fmt.Sprintf("Person %s was not found on %s", focal.FocalID, focal.URL)
}

// Encoder renders family graphs. The zero value writes empty source and
// submitter fields; use New to take them from configuration.
type Encoder struct {
	Source    config.Source
	Submitter config.Submitter
}

// New returns an encoder populated from cfg.
func New(cfg *config.Config) *Encoder {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return &Encoder{Source: cfg.Source, Submitter: cfg.Submitter}
}

// FileName derives the document file name from the graph title.
func FileName(g *family.Graph) string {
	name := textutil.SanitizeFileName(g.Source.Title)
	if name == "" {
		name = textutil.SanitizeFileName(g.Source.FocalID)
	}
	if name == "" {
		name = "family"
	}
	return name + Extension
}

// Encode renders g as a GEDCOM document. report is embedded as the text of
// the page source record and may be empty. Missing optional data only drops
// lines; the sole failure is an unresolved focal individual.
func (e *Encoder) Encode(g *family.Graph, report string) (string, error) {
	if g == nil {
		return "", &FocalError{}
	}
	if _, ok := g.Focal(); !ok {
		return "", &FocalError{FocalID: g.Source.FocalID, URL: g.Source.URL}
	}

	doc := newDocument(g, e.Source.IDType)

	lines := e.header(g)
	for _, rec := range doc.individuals {
		lines = append(lines, rec.lines...)
		lines = append(lines, doc.backrefs[rec.xref]...)
		lines = append(lines, line(1, "SOUR", sourceXref))
	}
	lines = append(lines, e.submitter()...)
	for _, rec := range doc.families {
		lines = append(lines, rec.lines...)
	}
	// NOTE records would go here; none are produced yet.
	lines = append(lines, e.source(g, report)...)
	lines = append(lines, "0 TRLR")
	return strings.Join(lines, "\n") + "\n", nil
}

type record struct {
	xref  string
	lines []string
}

// document holds both encoding passes. backrefs maps an individual xref to
// the FAMS/FAMC lines produced while encoding families.
type document struct {
	individuals []record
	families    []record
	backrefs    map[string][]string
	xrefs       Xrefs
}

func newDocument(g *family.Graph, idType string) *document {
	doc := &document{
		backrefs: make(map[string][]string),
		xrefs:    AssignXrefs(g),
	}

	for _, ind := range g.Individuals() {
		xref := doc.xrefs.Individuals[ind.ID]
		doc.individuals = append(doc.individuals, record{
			xref:  xref,
			lines: individualLines(xref, ind, idType),
		})
	}

	for _, union := range g.Unions() {
		xref := doc.xrefs.Unions[union.ID]
		doc.families = append(doc.families, record{
			xref:  xref,
			lines: doc.familyLines(xref, union),
		})
	}
	return doc
}

func individualLines(xref string, ind *family.Individual, idType string) []string {
	lines := []string{opener(xref, "INDI")}
	if name := FormatName(ind.FullName); name != "" {
		lines = append(lines, line(1, "NAME", value(name)))
	}
	if sex := sexCode(ind.Gender); sex != "" {
		lines = append(lines, line(1, "SEX", sex))
	}

	birth, death := lifespanEvents(ind)
	lines = append(lines, eventLines("BIRT", birth)...)
	lines = append(lines, eventLines("CHR", ind.Christening)...)
	lines = append(lines, eventLines("DEAT", death)...)
	lines = append(lines, eventLines("BURI", ind.Burial)...)

	id := value(ind.ID)
	lines = append(lines, line(1, "IDNO", id))
	if idType = value(idType); idType != "" {
		lines = append(lines, line(2, "TYPE", idType))
	}
	return append(lines, line(1, "REFN", id))
}

func (d *document) familyLines(xref string, union *family.Union) []string {
	lines := []string{opener(xref, "FAM")}
	if husband, ok := d.xrefs.Individuals[union.HusbandID]; ok && union.HusbandID != "" {
		lines = append(lines, line(1, "HUSB", husband))
		d.backrefs[husband] = append(d.backrefs[husband], line(1, "FAMS", xref))
	}
	if wife, ok := d.xrefs.Individuals[union.WifeID]; ok && union.WifeID != "" {
		lines = append(lines, line(1, "WIFE", wife))
		d.backrefs[wife] = append(d.backrefs[wife], line(1, "FAMS", xref))
	}
	lines = append(lines, eventLines("MARR", union.Marriage)...)
	for _, childID := range union.Children {
		child, ok := d.xrefs.Individuals[childID]
		if !ok {
			continue
		}
		lines = append(lines, line(1, "CHIL", child))
		d.backrefs[child] = append(d.backrefs[child], line(1, "FAMC", xref))
	}
	return lines
}

// eventLines emits an event with its DATE and PLAC sub-lines. Empty events
// and events dated "Living" produce nothing.
func eventLines(tag string, event *family.Event) []string {
	if event == nil {
		return nil
	}
	date := strings.TrimSpace(event.Date)
	place := strings.TrimSpace(event.Place)
	if date == "" && place == "" {
		return nil
	}
	if IsLiving(date) {
		return nil
	}
	lines := []string{line(1, tag, "")}
	if date != "" {
		lines = append(lines, line(2, "DATE", value(SanitizeDate(date))))
	}
	if place != "" {
		lines = append(lines, line(2, "PLAC", value(place)))
	}
	return lines
}

// lifespanEvents fills a missing birth or death from the years of a
// "1850–1920" lifespan. Recorded event fields always win over the years.
func lifespanEvents(ind *family.Individual) (birth, death *family.Event) {
	birth, death = ind.Birth, ind.Death
	if birth != nil && death != nil {
		return birth, death
	}
	birthYear, deathYear, ok := splitLifespan(ind.Lifespan)
	if !ok {
		return birth, death
	}
	return withYear(birth, birthYear), withYear(death, deathYear)
}

func splitLifespan(lifespan string) (string, string, bool) {
	idx := strings.IndexFunc(lifespan, isLifespanDash)
	if idx < 0 {
		return "", "", false
	}
	_, size := utf8.DecodeRuneInString(lifespan[idx:])
	return strings.TrimSpace(lifespan[:idx]), strings.TrimSpace(lifespan[idx+size:]), true
}

func isLifespanDash(r rune) bool {
	return r == '\u2013' || r == '\u2014'
}

func withYear(event *family.Event, year string) *family.Event {
	if event == nil {
		if year == "" {
			return nil
		}
		return &family.Event{Date: year}
	}
	if strings.TrimSpace(event.Date) != "" {
		return event
	}
	return &family.Event{Date: year, Place: event.Place}
}

// sexCode returns the upper-cased first letter of the gender.
func sexCode(gender string) string {
	gender = strings.TrimSpace(gender)
	if gender == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(gender)
	return string(unicode.ToUpper(r))
}

func (e *Encoder) header(g *family.Graph) []string {
	lines := []string{"0 HEAD"}
	if system := value(e.Source.System); system != "" {
		lines = append(lines, line(1, "SOUR", system))
		if corp := value(e.Source.Corporation); corp != "" {
			lines = append(lines, line(2, "CORP", corp))
		}
	}
	if !g.Source.Viewed.IsZero() {
		lines = append(lines, line(1, "DATE", FormatDate(g.Source.Viewed)))
	}
	return append(lines,
		line(1, "SUBM", submitterXref),
		line(1, "FILE", value(FileName(g))),
		line(1, "GEDC", ""),
		line(2, "VERS", Version),
		line(2, "FORM", "LINEAGE-LINKED"),
		line(1, "CHAR", "UTF-8"),
	)
}

func (e *Encoder) submitter() []string {
	lines := []string{opener(submitterXref, "SUBM")}
	lines = append(lines, line(1, "NAME", value(e.Submitter.Name)))
	var address []string
	for _, addr := range e.Submitter.Address {
		if addr = value(addr); addr != "" {
			address = append(address, addr)
		}
	}
	if len(address) > 0 {
		lines = append(lines, line(1, "ADDR", address[0]))
		for _, addr := range address[1:] {
			lines = append(lines, line(2, "CONT", addr))
		}
	}
	if www := value(e.Submitter.WWW); www != "" {
		lines = append(lines, line(1, "WWW", www))
	}
	return lines
}

func (e *Encoder) source(g *family.Graph, report string) []string {
	lines := []string{opener(sourceXref, "SOUR")}
	appendValue := func(tag, raw string) {
		if v := value(raw); v != "" {
			lines = append(lines, line(1, tag, v))
		}
	}
	appendValue("TYPE", e.Source.Type)
	appendValue("TITL", g.Source.Title)
	appendValue("URL", g.Source.URL)
	appendValue("AUTH", e.Source.Author)
	if !g.Source.Viewed.IsZero() {
		lines = append(lines, line(1, "DATV", FormatDate(g.Source.Viewed)))
	}
	if strings.TrimSpace(report) != "" {
		lines = append(lines, WrapText(report, 1, "TEXT")...)
	}
	return lines
}
