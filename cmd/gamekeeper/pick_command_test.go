package main

import (
	"testing"

	"gamekeeper/internal/games"
)

func pickFixtureCatalog() []games.LogicalGame {
	return []games.LogicalGame{
		{Title: "Hades", Platforms: []string{"Steam"}, Status: games.StatusPlaying, Length: games.LengthShort},
		{Title: "Anthem", Platforms: []string{"Origin Premiere"}, Status: games.StatusBacklog},
		{Title: "Control", Platforms: []string{"Steam", "Xbox Gamepass"}, Status: games.StatusBacklog, Length: games.LengthLong},
	}
}

func TestPickCandidatesFacets(t *testing.T) {
	catalog := pickFixtureCatalog()

	all := pickCandidates(catalog, nil, nil, nil)
	if len(all) != 3 {
		t.Fatalf("empty selection must match everything, got %d", len(all))
	}

	playing := pickCandidates(catalog, []string{"Playing"}, nil, nil)
	if len(playing) != 1 || playing[0].Title != "Hades" {
		t.Fatalf("status filter = %+v", playing)
	}

	long := pickCandidates(catalog, nil, []string{"Long"}, nil)
	if len(long) != 1 || long[0].Title != "Control" {
		t.Fatalf("length filter = %+v", long)
	}
}

func TestPickCandidatesExcludesSubscriptionOnlyGames(t *testing.T) {
	catalog := pickFixtureCatalog()
	labels := []string{"Xbox Gamepass", "Origin Premiere"}

	out := pickCandidates(catalog, nil, nil, labels)
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %+v", out)
	}
	for _, game := range out {
		if game.Title == "Anthem" {
			t.Fatal("subscription-only game must be excluded")
		}
	}
	// Owned on Steam as well, so the subscription copy does not
	// disqualify it.
	found := false
	for _, game := range out {
		if game.Title == "Control" {
			found = true
		}
	}
	if !found {
		t.Fatal("game also owned outside the subscriptions must stay eligible")
	}
}

func TestOnlyOnPlatforms(t *testing.T) {
	labels := []string{"Xbox Gamepass"}

	sub := games.LogicalGame{Title: "A", Platforms: []string{"Xbox Gamepass"}}
	if !onlyOnPlatforms(sub, labels) {
		t.Fatal("single subscription platform should match")
	}

	mixed := games.LogicalGame{Title: "B", Platforms: []string{"Steam", "Xbox Gamepass"}}
	if onlyOnPlatforms(mixed, labels) {
		t.Fatal("owned copy should keep the game eligible")
	}

	none := games.LogicalGame{Title: "C"}
	if onlyOnPlatforms(none, labels) {
		t.Fatal("platformless game never matches")
	}
}
