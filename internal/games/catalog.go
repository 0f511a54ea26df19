package games

// CatalogEntry is one row of an external catalog (a subscription
// listing or a scraped access list). Title keeps the source's raw
// formatting; matching happens on derived comparison keys only.
type CatalogEntry struct {
	// Title as the external source spells it.
	Title string
	// Status is the source's availability status or tier name.
	Status string
	// Active reports whether the entry still counts as available
	// (active or leaving soon) according to the source.
	Active bool
}

// ActiveTitles returns the titles of all active entries.
func ActiveTitles(entries []CatalogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Active {
			out = append(out, entry.Title)
		}
	}
	return out
}
