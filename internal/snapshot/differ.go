package snapshot

import "sort"

// Diff is the set difference between two catalog generations.
type Diff struct {
	// Added titles exist now but not in the prior generation.
	Added []string
	// Removed titles existed before but are gone now.
	Removed []string
}

// Compare diffs the current snapshot against the prior generation.
// Either snapshot may be nil; a nil prior makes every current title an
// addition. Both lists are always computed and sorted; what the run
// summary chooses to show is a reporting decision, not a diff one.
func Compare(current, previous *Snapshot) Diff {
	var diff Diff

	currentTitles := map[string]struct{}{}
	if current != nil {
		currentTitles = current.Titles()
	}
	previousTitles := map[string]struct{}{}
	if previous != nil {
		previousTitles = previous.Titles()
	}

	for title := range currentTitles {
		if _, ok := previousTitles[title]; !ok {
			diff.Added = append(diff.Added, title)
		}
	}
	for title := range previousTitles {
		if _, ok := currentTitles[title]; !ok {
			diff.Removed = append(diff.Removed, title)
		}
	}
	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	return diff
}
