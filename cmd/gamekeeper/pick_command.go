package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"gamekeeper/internal/games"
)

func newPickCommand(ctx *commandContext) *cobra.Command {
	var statuses []string
	var lengths []string
	var excludeSubscriptions bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a random game to play",
		Long: "Pick a random game from the catalog, optionally narrowed by\n" +
			"status and length. An empty filter matches everything.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
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

			var subscriptionLabels []string
			if excludeSubscriptions {
				subscriptionLabels = []string{
					cfg.Subscription.PlatformLabel,
					cfg.AccessCatalog.PlatformLabel,
				}
			}
			candidates := pickCandidates(snap.Games, statuses, lengths, subscriptionLabels)
			if len(candidates) == 0 {
				return fmt.Errorf("no games match the given filters")
			}

			game := candidates[rand.IntN(len(candidates))]
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, game.Title)
			fmt.Fprintf(out, "Status - %s\n", orDash(string(game.Status)))
			fmt.Fprintf(out, "Length - %s\n", orDash(string(game.Length)))
			fmt.Fprintf(out, "Platform - %s\n", game.PlatformList())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Statuses to pick from (repeatable)")
	cmd.Flags().StringSliceVar(&lengths, "length", nil, "Lengths to pick from (repeatable)")
	cmd.Flags().BoolVar(&excludeSubscriptions, "exclude-subscriptions", false, "Never pick games only available through a subscription")
	return cmd
}

// pickCandidates narrows the catalog by the selected facets. An empty
// selection for a facet matches every value, mirroring an empty
// listbox selection.
func pickCandidates(catalog []games.LogicalGame, statuses, lengths, excludedPlatforms []string) []games.LogicalGame {
	out := make([]games.LogicalGame, 0, len(catalog))
	for _, game := range catalog {
		if !matchesFacet(string(game.Status), statuses) {
			continue
		}
		if !matchesFacet(string(game.Length), lengths) {
			continue
		}
		if onlyOnPlatforms(game, excludedPlatforms) {
			continue
		}
		out = append(out, game)
	}
	return out
}

func matchesFacet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, candidate := range selected {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}

// onlyOnPlatforms reports whether every platform the game is on is one
// of the given labels. A game also owned outside the labels stays
// eligible.
func onlyOnPlatforms(game games.LogicalGame, labels []string) bool {
	if len(labels) == 0 || len(game.Platforms) == 0 {
		return false
	}
	for _, platform := range game.Platforms {
		excluded := false
		for _, label := range labels {
			if label != "" && platform == label {
				excluded = true
				break
			}
		}
		if !excluded {
			return false
		}
	}
	return true
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
