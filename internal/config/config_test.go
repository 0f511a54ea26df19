package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("default log format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Tracker.TicksPerMinute != 600_000_000 {
		t.Errorf("default tick ratio = %d, want 600000000", cfg.Tracker.TicksPerMinute)
	}
	if !cfg.Export.Enabled {
		t.Error("export should default to enabled")
	}
}

func TestLoadParsesFileAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[paths]
launcher_db = "~/library.db"
data_dir = "` + filepath.Join(dir, "data") + `"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if strings.HasPrefix(cfg.Paths.LauncherDB, "~") {
		t.Errorf("launcher_db not expanded: %q", cfg.Paths.LauncherDB)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestValidateSubscriptionRequiresURL(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	cfg.Subscription.Enabled = true
	cfg.Subscription.SheetURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled subscription without sheet URL")
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.ExportDir = filepath.Join(dir, "export")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, sub := range []string{"data", "logs", "export"} {
		if _, err := os.Stat(filepath.Join(dir, sub)); err != nil {
			t.Errorf("directory %s missing: %v", sub, err)
		}
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if err := CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}
