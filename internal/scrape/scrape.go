package scrape

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"

	"gedcard/internal/fieldrec"
	"gedcard/internal/logging"
)

var (
	familyTags       = []string{"section-card-family", "couple-persons"}
	childrenListTags = []string{"children-person-list"}

	titleSelector     = mustSelector("head title")
	canonicalSelector = mustSelector(`link[rel="canonical"]`)
	ogURLSelector     = mustSelector(`meta[property="og:url"]`)
)

// childrenAncestorDepth is how far above a couple node the shared container
// holding the couple's children list sits.
const childrenAncestorDepth = 4

// Options supplies provenance the saved page may not carry itself.
type Options struct {
	// URL overrides the page URL found in the document.
	URL string
	// Viewed is the snapshot time. Zero leaves it for the caller to fill.
	Viewed time.Time
	Logger *slog.Logger
}

// ParseFile scrapes the saved page at path.
func ParseFile(path string, opts Options) (*fieldrec.Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer file.Close()
	return Parse(file, opts)
}

// Parse scrapes a person details page into a snapshot.
func Parse(r io.Reader, opts Options) (*fieldrec.Snapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	logger := logging.NewComponentLogger(opts.Logger, "scrape")

	source := scrapeSource(doc, opts)
	if source.PID == "" {
		return nil, fmt.Errorf("%w: no person id in url %q", fieldrec.ErrNoFocal, source.URL)
	}

	snap := &fieldrec.Snapshot{
		Source: source,
		Vitals: scrapeRecord(fieldrec.VitalsSchema, doc).Person(),
	}
	for _, node := range queryAll(familyTags, doc) {
		snap.Households = append(snap.Households, scrapeHousehold(node))
	}
	logger.Debug("page scraped",
		logging.String(logging.FieldPersonID, source.PID),
		logging.Int("households", len(snap.Households)),
		logging.Bool("vitals", snap.Vitals != nil),
	)
	return snap, nil
}

func scrapeSource(doc *html.Node, opts Options) fieldrec.Source {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		url = strings.TrimSpace(attr(canonicalSelector.MatchFirst(doc), "href"))
	}
	if url == "" {
		url = strings.TrimSpace(attr(ogURLSelector.MatchFirst(doc), "content"))
	}
	return fieldrec.Source{
		Title:  innerText(titleSelector.MatchFirst(doc)),
		URL:    url,
		PID:    fieldrec.PIDFromURL(url),
		Viewed: opts.Viewed,
	}
}

// scrapeRecord applies schema to src, dispatching each field on its kind.
func scrapeRecord(schema fieldrec.Schema, src *html.Node) fieldrec.Record {
	if src == nil {
		return nil
	}
	rec := make(fieldrec.Record, len(schema))
	for _, field := range schema {
		rec[field.Name] = scrapeField(field, src)
	}
	if rec.Empty() {
		return nil
	}
	return rec
}

func scrapeField(field fieldrec.Field, src *html.Node) fieldrec.Value {
	switch field.Kind {
	case fieldrec.KindGender:
		return fieldrec.Value{Text: ResolveGender(src)}
	case fieldrec.KindEvent:
		el := queryFirst(field.Selector, src)
		if el == nil {
			return fieldrec.Value{}
		}
		return fieldrec.Value{Event: scrapeRecord(fieldrec.EventSchema, el).Event()}
	default:
		return fieldrec.Value{Text: innerText(queryFirst(field.Selector, src))}
	}
}

// scrapeHousehold reads one couple card. Its element children are laid out
// as husband, separator, wife, marriage.
func scrapeHousehold(couple *html.Node) fieldrec.Household {
	parts := elementChildren(couple)
	household := fieldrec.Household{
		Husband:  scrapePerson(childAt(parts, 0)),
		Wife:     scrapePerson(childAt(parts, 2)),
		Marriage: scrapeRecord(fieldrec.EventSchema, childAt(parts, 3)).Event(),
	}
	list := queryFirst(childrenListTags, ancestor(couple, childrenAncestorDepth))
	for _, node := range elementChildren(list) {
		if child := scrapePerson(node); child != nil {
			household.Children = append(household.Children, child)
		}
	}
	return household
}

func scrapePerson(node *html.Node) *fieldrec.PersonFields {
	if node == nil {
		return nil
	}
	return scrapeRecord(fieldrec.PersonSchema, node).Person()
}
