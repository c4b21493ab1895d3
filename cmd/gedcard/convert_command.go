package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gedcard/internal/export"
	"gedcard/internal/gedcom"
	"gedcard/internal/history"
	"gedcard/internal/logging"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags snapshotFlags
	var toStdout bool
	var overwrite bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "convert <snapshot>",
		Short: "Convert a page snapshot into a GEDCOM file",
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

			if toStdout {
				result, err := export.New(cfg, nil, logger).Render(cmd.Context(), snap)
				if err != nil {
					return exportError(err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), result.Document)
				return err
			}

			var store *history.Store
			state := historyState{enabled: cfg.Export.RecordHistory}
			if state.enabled {
				store, state.openErr = history.Open(cfg)
				if state.openErr != nil {
					logging.WarnWithContext(logger, "history unavailable", "history_open_failed",
						logging.Error(state.openErr),
						logging.String(logging.FieldImpact, "export will not be recorded"),
					)
				} else {
					defer store.Close()
				}
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			result, err := export.New(cfg, store, logger).Run(cmd.Context(), snap, export.Options{Overwrite: overwrite})
			if err != nil {
				if !jsonOutput {
					writeStatusLines(out, []statusLine{failureStatusLine(err)}, colorize)
				}
				return exportError(err)
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}
			writeStatusLines(out, exportStatusLines(result, state), colorize)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.url, "url", "", "Person page URL (overrides the URL stored in the snapshot)")
	cmd.Flags().StringVar(&flags.viewed, "viewed", "", "When the page was viewed (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the document to stdout instead of the output directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing document with the same name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the export result as JSON")
	return cmd
}

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var flags snapshotFlags

	cmd := &cobra.Command{
		Use:   "summary <snapshot>",
		Short: "Print the plain-text family summary of a snapshot",
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
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.url, "url", "", "Person page URL (overrides the URL stored in the snapshot)")
	cmd.Flags().StringVar(&flags.viewed, "viewed", "", "When the page was viewed (RFC3339 or YYYY-MM-DD)")
	return cmd
}

// exportError replaces a missing focal individual with its user-facing diagnostic.
func exportError(err error) error {
	if errors.Is(err, gedcom.ErrFocalNotFound) {
		return errors.New(gedcom.Diagnostic(err))
	}
	return err
}
