// Package summary renders a plain-text report of a family graph: the page
// provenance, the focal person's vital events, the families they head, and
// the families they were born into.
package summary

import (
	"strings"
	"time"

	"gedcard/internal/family"
)

// ShortDate renders t as "Jun 27, 2024".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Format renders the report. The output is line oriented and LF joined.
func Format(g *family.Graph) string {
	var lines []string
	lines = append(lines, g.Source.Title, g.Source.URL)
	if !g.Source.Viewed.IsZero() {
		lines = append(lines, "Date viewed: "+ShortDate(g.Source.Viewed))
	}
	lines = append(lines, "")

	focal, ok := g.Focal()
	if !ok {
		lines = append(lines, "No person found for "+g.Source.URL)
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "Name: "+focal.FullName)
	lines = appendEvent(lines, "Birth", focal.Birth)
	lines = appendEvent(lines, "Christening", focal.Christening)
	lines = appendEvent(lines, "Death", focal.Death)
	lines = appendEvent(lines, "Burial", focal.Burial)
	lines = append(lines, "")

	lines = appendFamilies(lines, g, "Families:", focal.PartnerIn)
	lines = appendFamilies(lines, g, "Parents and Siblings:", focal.ChildOf)
	return strings.Join(lines, "\n")
}

// appendFamilies writes every union listed in memberships under heading, in
// graph order.
func appendFamilies(lines []string, g *family.Graph, heading string, memberships []string) []string {
	wanted := make(map[string]bool, len(memberships))
	for _, id := range memberships {
		wanted[id] = true
	}
	headed := false
	for _, union := range g.Unions() {
		if !wanted[union.ID] {
			continue
		}
		if !headed {
			lines = append(lines, heading)
			headed = true
		}
		lines = appendUnion(lines, g, union)
	}
	return lines
}

func appendUnion(lines []string, g *family.Graph, union *family.Union) []string {
	for _, id := range []string{union.HusbandID, union.WifeID} {
		if ind, ok := g.Individual(id); ok {
			lines = append(lines, ind.Label())
		}
	}
	lines = appendEvent(lines, "Married", union.Marriage)
	if len(union.Children) > 0 {
		lines = append(lines, "Children:")
		for _, id := range union.Children {
			if child, ok := g.Individual(id); ok {
				lines = append(lines, "  "+child.Label())
			}
		}
	}
	return append(lines, "")
}

func appendEvent(lines []string, label string, event *family.Event) []string {
	if event == nil {
		return lines
	}
	parts := make([]string, 0, 2)
	if event.Date != "" {
		parts = append(parts, event.Date)
	}
	if event.Place != "" {
		parts = append(parts, event.Place)
	}
	if len(parts) == 0 {
		return lines
	}
	return append(lines, label+": "+strings.Join(parts, ", "))
}
