// Package testsupport builds throwaway configs and source database
// fixtures for tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"gamekeeper/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per
// test. External catalogs default to disabled so tests stay offline.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LauncherDB = filepath.Join(base, "galaxy-2.0.db")
	cfg.Paths.TrackerDB = filepath.Join(base, "tracker.sqlite")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ExportDir = filepath.Join(base, "export")
	cfg.Library.PlatformDictionary = filepath.Join(base, "platforms.json")
	cfg.Library.OverridesPath = filepath.Join(base, "overrides.txt")
	cfg.Library.ExclusionsPath = filepath.Join(base, "hidden.txt")
	cfg.Subscription.Enabled = false
	cfg.AccessCatalog.Enabled = false
	cfg.Export.Enabled = false

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
