package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gamekeeper/internal/games"
)

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var platformFilter string
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the current game catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.snapshotStore()
			if err != nil {
				return err
			}
			snap, err := store.Current()
			if err != nil {
				return err
			}
			if snap == nil {
				return fmt.Errorf("no catalog snapshot yet; run `gamekeeper refresh` first")
			}

			listed := filterGames(snap.Games, platformFilter, statusFilter)
			rows := make([][]string, 0, len(listed))
			for _, game := range listed {
				rows = append(rows, []string{
					game.Title,
					game.PlatformList(),
					game.ReleaseLabel(),
					string(game.Status),
					string(game.Length),
					game.PlaytimeLabel(),
				})
			}

			out := cmd.OutOrStdout()
			heading := fmt.Sprintf("Game catalog (%d games, generated %s)",
				len(listed), snap.GeneratedAt.Format("2006-01-02 15:04"))
			if shouldColorize(out) {
				heading = ansiBlue + heading + ansiReset
			}
			fmt.Fprintln(out, heading)
			fmt.Fprintln(out, renderTable(
				[]string{"Title", "Platform", "Release", "Status", "Length", "Playtime"},
				rows, 6))
			return nil
		},
	}

	cmd.Flags().StringVar(&platformFilter, "platform", "", "Only list games on this platform")
	cmd.Flags().StringVar(&statusFilter, "status", "", "Only list games with this status")
	return cmd
}

func filterGames(catalog []games.LogicalGame, platform, status string) []games.LogicalGame {
	out := make([]games.LogicalGame, 0, len(catalog))
	for _, game := range catalog {
		if platform != "" && !game.OnPlatform(platform) {
			continue
		}
		if status != "" && !strings.EqualFold(string(game.Status), status) {
			continue
		}
		out = append(out, game)
	}
	return out
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
