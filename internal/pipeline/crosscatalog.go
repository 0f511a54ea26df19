package pipeline

import (
	"gamekeeper/internal/games"
	"gamekeeper/internal/normalize"
)

// FilterUnavailable drops games that were owned only through the given
// subscription platform and whose comparison key is no longer in the
// catalog's active set. A game also owned elsewhere survives but loses
// the subscription label. activeKeys holds comparison keys (see
// normalize.CompareKey) of catalog entries that are active or leaving
// soon.
func FilterUnavailable(catalog []games.LogicalGame, label string, activeKeys map[string]struct{}) []games.LogicalGame {
	out := make([]games.LogicalGame, 0, len(catalog))
	for _, game := range catalog {
		if !game.OnPlatform(label) {
			out = append(out, game)
			continue
		}
		if _, active := activeKeys[normalize.CompareKey(game.Title)]; active {
			out = append(out, game)
			continue
		}
		if len(game.Platforms) == 1 {
			// Only owned through the subscription, and it left.
			continue
		}
		kept := make([]string, 0, len(game.Platforms)-1)
		for _, platform := range game.Platforms {
			if platform != label {
				kept = append(kept, platform)
			}
		}
		game.Platforms = kept
		out = append(out, game)
	}
	return out
}
