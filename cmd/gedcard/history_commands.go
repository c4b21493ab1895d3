package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"gedcard/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear the export history",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated documents, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				entries, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					if entries == nil {
						entries = []history.Entry{}
					}
					return writeJSON(cmd, entries)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No exports recorded")
					return nil
				}
				fmt.Fprintln(out, renderHistoryTable(entries))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every history entry (documents on disk are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d history entries\n", removed)
				return nil
			})
		},
	}
}

func renderHistoryTable(entries []history.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.CreatedAt.Local().Format(time.DateTime),
			e.PersonID,
			e.Title,
			strconv.Itoa(e.Individuals),
			strconv.Itoa(e.Unions),
			e.FilePath,
		})
	}
	return renderTable(
		[]tableColumn{
			countColumn("ID"),
			textColumn("Created", 0),
			textColumn("PID", 0),
			textColumn("Title", 40),
			countColumn("Indi"),
			countColumn("Fam"),
			textColumn("Path", 48),
		},
		rows,
	)
}
