package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints that normalization cannot
// repair. Missing source databases are detected at open time, not
// here, so a config can be created before the first sync.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.LauncherDB) == "" {
		return errors.New("paths.launcher_db is required")
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir is required")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir is required")
	}
	if err := c.validateSubscription(); err != nil {
		return err
	}
	if err := c.validateAccessCatalog(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateSubscription() error {
	if !c.Subscription.Enabled {
		return nil
	}
	if c.Subscription.SheetURL == "" {
		return errors.New("subscription.sheet_url is required when subscription catalog is enabled")
	}
	if c.Subscription.PlatformLabel == "" {
		return errors.New("subscription.platform_label is required when subscription catalog is enabled")
	}
	return nil
}

func (c *Config) validateAccessCatalog() error {
	if !c.AccessCatalog.Enabled {
		return nil
	}
	if c.AccessCatalog.PageURL == "" {
		return errors.New("access_catalog.page_url is required when access catalog is enabled")
	}
	if c.AccessCatalog.PlatformLabel == "" {
		return errors.New("access_catalog.platform_label is required when access catalog is enabled")
	}
	return nil
}
