package config

import (
	"fmt"
	"strings"
)

// normalize expands paths and canonicalizes string settings in place.
func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCatalogs()
	c.normalizeLogging()
	if c.Tracker.TicksPerMinute <= 0 {
		c.Tracker.TicksPerMinute = defaultTrackerTickRatio
	}
	if strings.TrimSpace(c.Export.Workbook) == "" {
		c.Export.Workbook = defaultWorkbook
	}
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"launcher_db", &c.Paths.LauncherDB},
		{"tracker_db", &c.Paths.TrackerDB},
		{"data_dir", &c.Paths.DataDir},
		{"log_dir", &c.Paths.LogDir},
		{"export_dir", &c.Paths.ExportDir},
		{"platform_dictionary", &c.Library.PlatformDictionary},
		{"overrides_path", &c.Library.OverridesPath},
		{"exclusions_path", &c.Library.ExclusionsPath},
	}
	for _, field := range fields {
		expanded, err := expandPath(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf("expand %s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeCatalogs() {
	c.Subscription.PlatformLabel = strings.TrimSpace(c.Subscription.PlatformLabel)
	c.Subscription.SheetURL = strings.TrimSpace(c.Subscription.SheetURL)
	if c.Subscription.RequestTimeout <= 0 {
		c.Subscription.RequestTimeout = defaultRequestTimeout
	}
	c.AccessCatalog.PlatformLabel = strings.TrimSpace(c.AccessCatalog.PlatformLabel)
	c.AccessCatalog.PageURL = strings.TrimSpace(c.AccessCatalog.PageURL)
	if c.AccessCatalog.RequestTimeout <= 0 {
		c.AccessCatalog.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
