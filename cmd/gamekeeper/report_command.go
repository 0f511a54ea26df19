package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gamekeeper/internal/snapshot"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show what changed in the last refresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.snapshotStore()
			if err != nil {
				return err
			}
			current, err := store.Current()
			if err != nil {
				return err
			}
			if current == nil {
				return fmt.Errorf("no catalog snapshot yet; run `gamekeeper refresh` first")
			}
			previous, err := store.Previous()
			if err != nil {
				return err
			}

			report := snapshot.Report{
				RunID:       current.RunID,
				GeneratedAt: current.GeneratedAt,
				TotalGames:  len(current.Games),
				Diff:        snapshot.Compare(current, previous),
			}
			if previous != nil {
				report.LastRunAt = previous.GeneratedAt
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Summary())
			return nil
		},
	}
}
