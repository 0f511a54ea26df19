package pipeline

import (
	"testing"

	"gamekeeper/internal/games"
	"gamekeeper/internal/normalize"
)

func TestFilterUnavailableRemovesDepartedGame(t *testing.T) {
	catalog := []games.LogicalGame{
		{Title: "Gone Game", Platforms: []string{"Xbox Gamepass"}},
		{Title: "Still Here", Platforms: []string{"Xbox Gamepass"}},
		{Title: "Owned Outright", Platforms: []string{"Steam"}},
	}
	active := normalize.CompareKeySet([]string{"Still Here"})

	got := FilterUnavailable(catalog, "Xbox Gamepass", active)
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %+v", got)
	}
	for _, game := range got {
		if game.Title == "Gone Game" {
			t.Fatal("departed subscription game must be excluded")
		}
	}
}

func TestFilterUnavailableMatchesOnComparisonKey(t *testing.T) {
	catalog := []games.LogicalGame{
		{Title: "Diablo III", Platforms: []string{"Xbox Gamepass"}},
	}
	// The catalog spells the numeral as a digit; the comparison key
	// bridges the difference.
	active := normalize.CompareKeySet([]string{"Diablo 3"})

	got := FilterUnavailable(catalog, "Xbox Gamepass", active)
	if len(got) != 1 {
		t.Fatal("comparison-key match should retain the game")
	}
}

func TestFilterUnavailableKeepsMultiPlatformOwnership(t *testing.T) {
	catalog := []games.LogicalGame{
		{Title: "Foo", Platforms: []string{"Steam", "Xbox Gamepass"}},
	}

	got := FilterUnavailable(catalog, "Xbox Gamepass", nil)
	if len(got) != 1 {
		t.Fatal("game owned elsewhere must survive")
	}
	if got[0].PlatformList() != "Steam" {
		t.Fatalf("subscription label should be dropped, got %q", got[0].PlatformList())
	}
}

func TestFilterUnavailableIgnoresOtherPlatforms(t *testing.T) {
	catalog := []games.LogicalGame{
		{Title: "Foo", Platforms: []string{"Steam"}},
	}
	got := FilterUnavailable(catalog, "Xbox Gamepass", nil)
	if len(got) != 1 {
		t.Fatal("non-subscription game must be untouched")
	}
}
