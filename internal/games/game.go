package games

import (
	"fmt"
	"strings"
)

// PlatformSeparator joins the platform labels of a multi-platform game
// for display and persistence.
const PlatformSeparator = "; "

// LogicalGame is one row of the final catalog: a de-duplicated game
// aggregated across every platform it survives on. CanonicalTitle is
// unique within a catalog.
type LogicalGame struct {
	Title           string   `json:"title"`
	Platforms       []string `json:"platforms"`
	ReleaseYear     int      `json:"releaseYear,omitempty"`
	Status          Status   `json:"status,omitempty"`
	Length          Length   `json:"length,omitempty"`
	PlaytimeMinutes int      `json:"playtimeMinutes,omitempty"`
}

// PlatformList renders the aggregated platform labels for display.
func (g LogicalGame) PlatformList() string {
	return strings.Join(g.Platforms, PlatformSeparator)
}

// OnPlatform reports whether the game is owned on the given platform.
func (g LogicalGame) OnPlatform(label string) bool {
	for _, p := range g.Platforms {
		if p == label {
			return true
		}
	}
	return false
}

// ReleaseLabel renders the release year, or "No Date" when none was
// recovered from the metadata blob.
func (g LogicalGame) ReleaseLabel() string {
	if g.ReleaseYear == 0 {
		return "No Date"
	}
	return fmt.Sprintf("%d", g.ReleaseYear)
}

// PlaytimeLabel renders accumulated playtime as hours and minutes.
// Zero playtime renders as the literal "0".
func (g LogicalGame) PlaytimeLabel() string {
	return FormatPlaytime(g.PlaytimeMinutes)
}

// FormatPlaytime renders a minute count as "H Hours M Minutes",
// omitting a zero component. Zero total stays the literal "0".
func FormatPlaytime(minutes int) string {
	if minutes <= 0 {
		return "0"
	}
	hours := minutes / 60
	rem := minutes % 60
	switch {
	case hours > 0 && rem > 0:
		return fmt.Sprintf("%d Hours %d Minutes", hours, rem)
	case hours > 0:
		return fmt.Sprintf("%d Hours", hours)
	default:
		return fmt.Sprintf("%d Minutes", rem)
	}
}
