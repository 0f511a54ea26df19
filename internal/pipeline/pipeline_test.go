package pipeline_test

import (
	"context"
	"os"
	"testing"

	"gamekeeper/internal/games"
	"gamekeeper/internal/launcherdb"
	"gamekeeper/internal/logging"
	"gamekeeper/internal/pipeline"
	"gamekeeper/internal/platforms"
	"gamekeeper/internal/testsupport"
	"gamekeeper/internal/trackerdb"
)

type stubSource struct {
	label   string
	entries []games.CatalogEntry
}

func (s stubSource) Label() string { return s.label }

func (s stubSource) Fetch(ctx context.Context) ([]games.CatalogEntry, error) {
	return s.entries, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPipelineRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.LauncherDB = testsupport.NewLauncherDB(t)
	cfg.Paths.TrackerDB = testsupport.NewTrackerDB(t, map[string]int64{
		"Hades": 36_000_000_000,
	})

	logger, err := logging.New(logging.Options{Level: "error"})
	if err != nil {
		t.Fatal(err)
	}
	launcher, err := launcherdb.Open(cfg.Paths.LauncherDB)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = launcher.Close() })
	tracker, err := trackerdb.Open(cfg.Paths.TrackerDB)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = tracker.Close() })

	classifier := platforms.NewClassifier(map[string]string{"steam_": "Steam"})
	subscription := stubSource{
		label: cfg.Subscription.PlatformLabel,
		entries: []games.CatalogEntry{
			{Title: "Celeste", Status: "Active", Active: true},
		},
	}
	access := stubSource{
		label: cfg.AccessCatalog.PlatformLabel,
		entries: []games.CatalogEntry{
			{Title: "Anthem", Status: "Premiere", Active: true},
		},
	}

	run, err := pipeline.New(cfg, logger, launcher, tracker, classifier, subscription, access)
	if err != nil {
		t.Fatal(err)
	}
	result, err := run.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Catalog) != 1 {
		t.Fatalf("expected 1 game, got %+v", result.Catalog)
	}
	game := result.Catalog[0]
	if game.Title != "Hades" || game.PlatformList() != "Steam" {
		t.Fatalf("unexpected game: %+v", game)
	}
	if game.Status != games.StatusPlaying {
		t.Fatalf("status = %q, want Playing", game.Status)
	}
	if game.ReleaseYear != 2020 {
		t.Fatalf("release year = %d, want 2020", game.ReleaseYear)
	}
	if game.PlaytimeMinutes != 60 {
		t.Fatalf("playtime = %d minutes, want 60", game.PlaytimeMinutes)
	}

	if len(result.Subscription) != 1 || result.Subscription[0].Title != "Celeste" {
		t.Fatalf("subscription entries = %+v", result.Subscription)
	}
	if len(result.Access) != 1 || result.Access[0].Title != "Anthem" {
		t.Fatalf("access entries = %+v", result.Access)
	}
}

func TestPipelineRunAppliesOverrides(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.LauncherDB = testsupport.NewLauncherDB(t)
	writeFile(t, cfg.Library.OverridesPath, "Hades,Infinite,Completed\n")

	logger, err := logging.New(logging.Options{Level: "error"})
	if err != nil {
		t.Fatal(err)
	}
	launcher, err := launcherdb.Open(cfg.Paths.LauncherDB)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = launcher.Close() })

	classifier := platforms.NewClassifier(map[string]string{"steam_": "Steam"})
	run, err := pipeline.New(cfg, logger, launcher, nil, classifier)
	if err != nil {
		t.Fatal(err)
	}
	result, err := run.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	game := result.Catalog[0]
	if game.Length != games.LengthInfinite || game.Status != games.StatusCompleted {
		t.Fatalf("override not applied: %+v", game)
	}
	if game.PlaytimeMinutes != 0 {
		t.Fatalf("playtime without a tracker must stay 0, got %d", game.PlaytimeMinutes)
	}
}
