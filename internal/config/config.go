package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains source database locations and working directories.
type Paths struct {
	LauncherDB string `toml:"launcher_db"`
	TrackerDB  string `toml:"tracker_db"`
	DataDir    string `toml:"data_dir"`
	LogDir     string `toml:"log_dir"`
	ExportDir  string `toml:"export_dir"`
}

// Library contains pipeline knobs for the launcher library.
type Library struct {
	PlatformDictionary string `toml:"platform_dictionary"`
	OverridesPath      string `toml:"overrides_path"`
	ExclusionsPath     string `toml:"exclusions_path"`
}

// Tracker contains playtime tracker settings. TicksPerMinute converts
// the tracker's runtime ticks (100 ns) into minutes.
type Tracker struct {
	TicksPerMinute int64 `toml:"ticks_per_minute"`
}

// Subscription contains settings for the spreadsheet-backed
// subscription catalog (e.g. a game-pass master list).
type Subscription struct {
	Enabled        bool   `toml:"enabled"`
	PlatformLabel  string `toml:"platform_label"`
	SheetURL       string `toml:"sheet_url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// AccessCatalog contains settings for the scraped wiki access catalog
// (two subscription tiers on one public wiki page).
type AccessCatalog struct {
	Enabled        bool   `toml:"enabled"`
	PlatformLabel  string `toml:"platform_label"`
	PageURL        string `toml:"page_url"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Export contains workbook export settings.
type Export struct {
	Enabled  bool   `toml:"enabled"`
	Workbook string `toml:"workbook"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for gamekeeper.
//
// Configuration sections by subsystem:
//   - Paths: source databases and working directories
//   - Library: platform dictionary and manual override files
//   - Tracker: playtime tick conversion
//   - Subscription: spreadsheet subscription catalog
//   - AccessCatalog: scraped wiki access catalog
//   - Export: workbook export
//   - Logging: log format and level
type Config struct {
	Paths         Paths         `toml:"paths"`
	Library       Library       `toml:"library"`
	Tracker       Tracker       `toml:"tracker"`
	Subscription  Subscription  `toml:"subscription"`
	AccessCatalog AccessCatalog `toml:"access_catalog"`
	Export        Export        `toml:"export"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/gamekeeper/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("gamekeeper.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run writes into. Source
// databases are read in place and never created here.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if c.Export.Enabled && strings.TrimSpace(c.Paths.ExportDir) != "" {
		if err := os.MkdirAll(c.Paths.ExportDir, 0o755); err != nil {
			return fmt.Errorf("create export directory %q: %w", c.Paths.ExportDir, err)
		}
	}
	return nil
}

// WorkbookPath returns the full path of the exported workbook.
func (c *Config) WorkbookPath() string {
	return filepath.Join(c.Paths.ExportDir, c.Export.Workbook)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
