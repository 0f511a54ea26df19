package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gamekeeper/internal/export"
	"gamekeeper/internal/launcherdb"
	"gamekeeper/internal/pipeline"
	"gamekeeper/internal/platforms"
	"gamekeeper/internal/services/sheetcat"
	"gamekeeper/internal/services/wikicat"
	"gamekeeper/internal/snapshot"
	"gamekeeper/internal/trackerdb"
)

func newRefreshCommand(ctx *commandContext) *cobra.Command {
	var skipCatalogs bool
	var skipExport bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild the game catalog from the launcher database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			launcher, err := launcherdb.Open(cfg.Paths.LauncherDB)
			if err != nil {
				return fmt.Errorf("open launcher database: %w", err)
			}
			defer launcher.Close()

			var tracker *trackerdb.Store
			if path := strings.TrimSpace(cfg.Paths.TrackerDB); path != "" {
				if _, statErr := os.Stat(path); statErr == nil {
					tracker, err = trackerdb.Open(path)
					if err != nil {
						return fmt.Errorf("open tracker database: %w", err)
					}
					defer tracker.Close()
				} else {
					logger.Warn("tracker database not found; skipping playtime", "path", path)
				}
			}

			// A missing or broken dictionary degrades every release
			// to "Other" rather than failing the run.
			classifier, err := platforms.Load(cfg.Library.PlatformDictionary)
			if err != nil {
				logger.Warn("platform dictionary unavailable; classifying all releases as Other",
					"path", cfg.Library.PlatformDictionary, "error", err)
				classifier = platforms.NewClassifier(nil)
			}

			var catalogs []pipeline.CatalogSource
			if !skipCatalogs {
				if source := sheetcat.NewConfiguredSource(cfg); source != nil {
					catalogs = append(catalogs, source)
				}
				if source := wikicat.NewConfiguredSource(cfg); source != nil {
					catalogs = append(catalogs, source)
				}
			}

			run, err := pipeline.New(cfg, logger, launcher, tracker, classifier, catalogs...)
			if err != nil {
				return err
			}
			result, err := run.Run(cmd.Context())
			if err != nil {
				return err
			}

			store := snapshot.NewStore(cfg.Paths.DataDir)
			previous, err := store.Current()
			if err != nil {
				return err
			}

			snap := &snapshot.Snapshot{
				RunID:       uuid.NewString(),
				GeneratedAt: time.Now(),
				Games:       result.Catalog,
			}
			if err := store.Publish(snap); err != nil {
				return fmt.Errorf("publish snapshot: %w", err)
			}

			report := snapshot.Report{
				RunID:       snap.RunID,
				GeneratedAt: snap.GeneratedAt,
				TotalGames:  len(snap.Games),
				Diff:        snapshot.Compare(snap, previous),
			}
			if previous != nil {
				report.LastRunAt = previous.GeneratedAt
			}
			if len(report.Diff.Removed) > 0 {
				logger.Info("games removed since last run", "titles", report.Diff.Removed)
			}
			logPath, err := report.WriteDailyLog(cfg.Paths.LogDir)
			if err != nil {
				return err
			}
			logger.Debug("appended run report", "path", logPath)

			if cfg.Export.Enabled && !skipExport {
				if err := export.WriteWorkbook(cfg.WorkbookPath(), result); err != nil {
					return err
				}
				logger.Info("exported workbook", "path", cfg.WorkbookPath())
			}

			fmt.Fprint(cmd.OutOrStdout(), report.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipCatalogs, "skip-catalogs", false, "Skip fetching external subscription catalogs")
	cmd.Flags().BoolVar(&skipExport, "skip-export", false, "Skip writing the workbook export")
	return cmd
}
