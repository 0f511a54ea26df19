package pipeline

import (
	"strings"

	"gamekeeper/internal/games"
	"gamekeeper/internal/platforms"
)

// Dedupe collapses duplicate ownership records before the platform
// merge. Two phases, in this order:
//
//  1. Among entities sharing the same (canonical title, platform)
//     pair, the last one in processing order wins.
//  2. Among remaining entities that still share a title, any entity on
//     an unclassified platform is dropped: "Other" is never
//     authoritative over a real platform for a duplicate title.
//
// Titles ending in "trial" (case-insensitive) are excluded afterwards;
// trial editions are not library entries.
func Dedupe(entities []games.Entity) []games.Entity {
	survivors := dedupeSamePlatform(entities)
	survivors = dropUnclassifiedDuplicates(survivors)

	out := make([]games.Entity, 0, len(survivors))
	for _, entity := range survivors {
		if strings.HasSuffix(strings.ToLower(entity.CanonicalTitle), "trial") {
			continue
		}
		out = append(out, entity)
	}
	return out
}

func dedupeSamePlatform(entities []games.Entity) []games.Entity {
	type slot struct {
		title    string
		platform string
	}
	// Last wins: later records overwrite earlier ones in place.
	index := make(map[slot]int, len(entities))
	var out []games.Entity
	for _, entity := range entities {
		key := slot{title: entity.CanonicalTitle, platform: entity.Platform}
		if at, seen := index[key]; seen {
			out[at] = entity
			continue
		}
		index[key] = len(out)
		out = append(out, entity)
	}
	return out
}

func dropUnclassifiedDuplicates(entities []games.Entity) []games.Entity {
	counts := make(map[string]int, len(entities))
	for _, entity := range entities {
		counts[entity.CanonicalTitle]++
	}

	out := make([]games.Entity, 0, len(entities))
	for _, entity := range entities {
		if counts[entity.CanonicalTitle] > 1 && platforms.Label(entity.Platform) == platforms.Unclassified {
			continue
		}
		out = append(out, entity)
	}
	return out
}
