package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gedcard/internal/export"
	"gedcard/internal/family"
	"gedcard/internal/gedcom"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var flags snapshotFlags

	cmd := &cobra.Command{
		Use:   "show <snapshot>",
		Short: "Show the individuals and families found in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.loggerValue()
			snap, err := loadSnapshot(args[0], flags, logger)
			if err != nil {
				return err
			}
			result, err := export.New(cfg, nil, logger).Render(cmd.Context(), snap)
			if err != nil {
				return exportError(err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderTitle(result.Title, colorize) {
				fmt.Fprintln(out, line)
			}
			writeStatusLines(out, []statusLine{
				{label: "File", kind: statusInfo, message: result.FileName},
				{label: "Graph", kind: statusInfo, message: graphSummary(result.Individuals, result.Unions)},
			}, colorize)
			fmt.Fprintln(out)
			fmt.Fprint(out, renderGraphTables(result.Graph))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.url, "url", "", "Person page URL (overrides the URL stored in the snapshot)")
	cmd.Flags().StringVar(&flags.viewed, "viewed", "", "When the page was viewed (RFC3339 or YYYY-MM-DD)")
	return cmd
}

// renderGraphTables lists individuals and families with the cross-reference
// ids they receive in the document.
func renderGraphTables(g *family.Graph) string {
	xrefs := gedcom.AssignXrefs(g)

	people := make([][]string, 0)
	for _, ind := range g.Individuals() {
		people = append(people, []string{
			xrefs.Individuals[ind.ID],
			ind.ID,
			ind.FullName,
			ind.Lifespan,
			ind.Gender,
			strconv.Itoa(len(ind.PartnerIn)),
			strconv.Itoa(len(ind.ChildOf)),
		})
	}

	var b strings.Builder
	b.WriteString(renderTable(
		[]tableColumn{
			xrefColumn("Xref"),
			textColumn("PID", 0),
			textColumn("Name", 32),
			textColumn("Lifespan", 0),
			textColumn("Sex", 0),
			countColumn("FAMS"),
			countColumn("FAMC"),
		},
		people,
	))
	b.WriteString("\n")

	unions := g.Unions()
	if len(unions) == 0 {
		b.WriteString("No families found\n")
		return b.String()
	}
	families := make([][]string, 0, len(unions))
	for _, u := range unions {
		families = append(families, []string{
			xrefs.Unions[u.ID],
			personCell(g, xrefs, u.HusbandID),
			personCell(g, xrefs, u.WifeID),
			eventCell(u.Marriage),
			strconv.Itoa(len(u.Children)),
		})
	}
	b.WriteString("\n")
	b.WriteString(renderTable(
		[]tableColumn{
			xrefColumn("Xref"),
			textColumn("Husband", 32),
			textColumn("Wife", 32),
			textColumn("Marriage", 32),
			countColumn("Children"),
		},
		families,
	))
	b.WriteString("\n")
	return b.String()
}

func personCell(g *family.Graph, xrefs gedcom.Xrefs, id string) string {
	ind, ok := g.Individual(id)
	if !ok {
		return ""
	}
	return xrefs.Individuals[id] + " " + ind.FullName
}

func eventCell(event *family.Event) string {
	if event == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, part := range []string{event.Date, event.Place} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
