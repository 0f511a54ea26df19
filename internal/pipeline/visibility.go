package pipeline

import "gamekeeper/internal/games"

// FilterVisible removes entities the user does not really own or has
// hidden. The exclusion predicates are orthogonal and their union
// applies: never owned (absent from the user release table), flagged
// DLC, not visible in the library, hidden by hand, or listed in the
// manual exclusion file. Pure and idempotent; input order is kept.
func FilterVisible(
	entities []games.Entity,
	release map[string]games.OwnershipFacts,
	user map[string]games.OwnershipFacts,
	manualExclusions map[string]struct{},
) []games.Entity {
	out := make([]games.Entity, 0, len(entities))
	for _, entity := range entities {
		userFact, owned := user[entity.ReleaseKey]
		if !owned || userFact.Hidden {
			continue
		}
		if releaseFact, known := release[entity.ReleaseKey]; known {
			if releaseFact.IsDLC || !releaseFact.Visible {
				continue
			}
		}
		if _, excluded := manualExclusions[entity.ReleaseKey]; excluded {
			continue
		}
		out = append(out, entity)
	}
	return out
}
