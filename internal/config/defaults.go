package config

const (
	defaultLauncherDB         = "~/.local/share/gamekeeper/galaxy-2.0.db"
	defaultTrackerDB          = "~/.local/share/gamekeeper/GameplayTimeTracker.sqlite"
	defaultDataDir            = "~/.local/share/gamekeeper/data"
	defaultLogDir             = "~/.local/share/gamekeeper/logs"
	defaultExportDir          = "~/.local/share/gamekeeper/export"
	defaultPlatformDictionary = "~/.config/gamekeeper/platforms.json"
	defaultOverridesPath      = "~/.config/gamekeeper/overrides.txt"
	defaultExclusionsPath     = "~/.config/gamekeeper/hidden.txt"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultWorkbook           = "Games.xlsx"
	defaultSubscriptionLabel  = "Xbox Gamepass"
	defaultAccessCatalogLabel = "Origin Premiere"
	defaultAccessCatalogURL   = "https://www.pcgamingwiki.com/wiki/List_of_Origin_Access_games"
	defaultRequestTimeout     = 30
	defaultTrackerTickRatio   = int64(600_000_000) // 100 ns ticks per minute
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LauncherDB: defaultLauncherDB,
			TrackerDB:  defaultTrackerDB,
			DataDir:    defaultDataDir,
			LogDir:     defaultLogDir,
			ExportDir:  defaultExportDir,
		},
		Library: Library{
			PlatformDictionary: defaultPlatformDictionary,
			OverridesPath:      defaultOverridesPath,
			ExclusionsPath:     defaultExclusionsPath,
		},
		Tracker: Tracker{
			TicksPerMinute: defaultTrackerTickRatio,
		},
		Subscription: Subscription{
			Enabled:        false,
			PlatformLabel:  defaultSubscriptionLabel,
			RequestTimeout: defaultRequestTimeout,
		},
		AccessCatalog: AccessCatalog{
			Enabled:        false,
			PlatformLabel:  defaultAccessCatalogLabel,
			PageURL:        defaultAccessCatalogURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Export: Export{
			Enabled:  true,
			Workbook: defaultWorkbook,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
