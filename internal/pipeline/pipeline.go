package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"gamekeeper/internal/config"
	"gamekeeper/internal/games"
	"gamekeeper/internal/launcherdb"
	"gamekeeper/internal/normalize"
	"gamekeeper/internal/platforms"
	"gamekeeper/internal/trackerdb"
)

// CatalogSource fetches one external catalog.
type CatalogSource interface {
	// Label is the platform label the catalog vouches for.
	Label() string
	// Fetch returns the catalog entries, with availability decided
	// by the source.
	Fetch(ctx context.Context) ([]games.CatalogEntry, error)
}

// Result is the terminal artifact of one pipeline run.
type Result struct {
	Catalog      []games.LogicalGame
	Subscription []games.CatalogEntry
	Access       []games.CatalogEntry
}

// Pipeline wires the catalog build stages together. Stores are opened
// and closed by the caller; the pipeline only borrows them for the
// duration of a run.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	launcher   *launcherdb.Store
	tracker    *trackerdb.Store
	classifier *platforms.Classifier
	catalogs   []CatalogSource
	lock       *flock.Flock
}

// New constructs a pipeline. tracker may be nil when no playtime
// database is available; catalogs may be empty when both external
// catalogs are disabled.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	launcher *launcherdb.Store,
	tracker *trackerdb.Store,
	classifier *platforms.Classifier,
	catalogs ...CatalogSource,
) (*Pipeline, error) {
	if cfg == nil || logger == nil || launcher == nil || classifier == nil {
		return nil, errors.New("pipeline requires config, logger, launcher store, and classifier")
	}
	lockPath := filepath.Join(cfg.Paths.DataDir, "gamekeeper.lock")
	return &Pipeline{
		cfg:        cfg,
		logger:     logger,
		launcher:   launcher,
		tracker:    tracker,
		classifier: classifier,
		catalogs:   catalogs,
		lock:       flock.New(lockPath),
	}, nil
}

// Run executes the full catalog build. Exactly one run may hold the
// data directory lock at a time; a second concurrent run fails fast
// instead of racing the snapshot publish.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	ok, err := p.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another gamekeeper run is already in progress")
	}
	defer func() {
		if unlockErr := p.lock.Unlock(); unlockErr != nil {
			p.logger.Warn("release run lock", "error", unlockErr)
		}
	}()

	entities, err := p.buildEntities(ctx)
	if err != nil {
		return nil, err
	}

	entities = Dedupe(entities)
	p.logger.Debug("deduplicated entities", "count", len(entities))

	catalog := Merge(entities)
	p.logger.Info("merged catalog", "games", len(catalog))

	result := &Result{}
	for _, source := range p.catalogs {
		entries, err := source.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch %s catalog: %w", source.Label(), err)
		}
		keys := normalize.CompareKeySet(games.ActiveTitles(entries))
		before := len(catalog)
		catalog = FilterUnavailable(catalog, source.Label(), keys)
		p.logger.Info("cross-checked catalog",
			"source", source.Label(),
			"entries", len(entries),
			"removed", before-len(catalog))
		switch source.Label() {
		case p.cfg.Subscription.PlatformLabel:
			result.Subscription = entries
		default:
			result.Access = entries
		}
	}

	if p.tracker != nil {
		playtimes, err := p.tracker.Playtimes(ctx)
		if err != nil {
			return nil, fmt.Errorf("read playtimes: %w", err)
		}
		catalog = AttachPlaytime(catalog, playtimes, p.cfg.Tracker.TicksPerMinute)
		p.logger.Debug("attached playtime", "tracked", len(playtimes))
	}

	overrides, err := LoadOverrides(p.cfg.Library.OverridesPath)
	if err != nil {
		return nil, err
	}
	ApplyOverrides(catalog, overrides)

	result.Catalog = catalog
	return result, nil
}

// buildEntities runs the entity-level stages: denormalize, normalize,
// classify, tag, filter.
func (p *Pipeline) buildEntities(ctx context.Context) ([]games.Entity, error) {
	vocabulary, err := p.launcher.AttributeTypes(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := p.launcher.MetadataRows(ctx)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("read metadata rows", "rows", len(rows))

	entities, err := Denormalize(rows, DenormalizeOptions{Vocabulary: vocabulary})
	if err != nil {
		return nil, err
	}
	p.logger.Info("denormalized entities", "entities", len(entities))

	entities = ClassifyPlatforms(entities, p.classifier)

	tagRows, err := p.launcher.UserTags(ctx)
	if err != nil {
		return nil, err
	}
	entities = ApplyTags(entities, tagRows)

	release, err := p.launcher.ReleaseProperties(ctx)
	if err != nil {
		return nil, err
	}
	user, err := p.launcher.UserReleaseProperties(ctx)
	if err != nil {
		return nil, err
	}
	exclusions, err := LoadExclusions(p.cfg.Library.ExclusionsPath)
	if err != nil {
		return nil, err
	}

	before := len(entities)
	entities = FilterVisible(entities, release, user, exclusions)
	p.logger.Debug("filtered entities", "kept", len(entities), "removed", before-len(entities))
	return entities, nil
}
