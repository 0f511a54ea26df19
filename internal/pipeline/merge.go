package pipeline

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gamekeeper/internal/games"
	"gamekeeper/internal/platforms"
)

// Merge groups surviving entities by canonical title into one
// LogicalGame each. The platform list aggregates every distinct
// platform label in first-appearance order; scalar fields (year,
// status, length) come from the last surviving entity of the title,
// matching the dedup policy. The result is sorted case-insensitively
// by title.
func Merge(entities []games.Entity) []games.LogicalGame {
	var order []string
	grouped := make(map[string]*games.LogicalGame, len(entities))

	for _, entity := range entities {
		label := platforms.Label(entity.Platform)
		game, seen := grouped[entity.CanonicalTitle]
		if !seen {
			game = &games.LogicalGame{Title: entity.CanonicalTitle}
			grouped[entity.CanonicalTitle] = game
			order = append(order, entity.CanonicalTitle)
		}
		if !game.OnPlatform(label) {
			game.Platforms = append(game.Platforms, label)
		}
		game.ReleaseYear = entity.ReleaseYear
		game.Status = entity.Status
		game.Length = entity.Length
	}

	out := make([]games.LogicalGame, 0, len(order))
	for _, title := range order {
		out = append(out, *grouped[title])
	}
	sortByTitle(out)
	return out
}

func sortByTitle(catalog []games.LogicalGame) {
	collator := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(catalog, func(i, j int) bool {
		return collator.CompareString(catalog[i].Title, catalog[j].Title) < 0
	})
}
