package pipeline

import (
	"gamekeeper/internal/games"
	"gamekeeper/internal/platforms"
	"gamekeeper/internal/tags"
)

// ClassifyPlatforms derives each entity's platform label from its
// release key prefix. Unmatched keys keep the empty platform and
// render as "Other" downstream.
func ClassifyPlatforms(entities []games.Entity, classifier *platforms.Classifier) []games.Entity {
	out := make([]games.Entity, len(entities))
	for i, entity := range entities {
		entity.Platform = classifier.Classify(entity.ReleaseKey)
		out[i] = entity
	}
	return out
}

// ApplyTags decodes each entity's user tags into status and length
// facets. A platform-override tag replaces the platform only when the
// classifier left it empty; a classified platform is never overridden.
func ApplyTags(entities []games.Entity, tagRows map[string][]string) []games.Entity {
	out := make([]games.Entity, len(entities))
	for i, entity := range entities {
		facets := tags.DecodeAll(tagRows[entity.ReleaseKey])
		entity.Status = facets.Status
		entity.Length = facets.Length
		if entity.Platform == "" && facets.PlatformOverride != "" {
			entity.Platform = facets.PlatformOverride
		}
		out[i] = entity
	}
	return out
}
