// Package snapshot persists the generated catalog between runs and
// reports what changed since the previous run. Exactly one prior
// generation is retained for diffing.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gamekeeper/internal/games"
)

const (
	currentName  = "catalog.json"
	previousName = "catalog.prev.json"
)

// Snapshot is one persisted catalog generation.
type Snapshot struct {
	RunID       string              `json:"runId"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Games       []games.LogicalGame `json:"games"`
}

// Titles returns the set of catalog titles in the snapshot.
func (s *Snapshot) Titles() map[string]struct{} {
	out := make(map[string]struct{}, len(s.Games))
	for _, game := range s.Games {
		out[game.Title] = struct{}{}
	}
	return out
}

// Store reads and writes catalog snapshots under one directory.
type Store struct {
	dir string
}

// NewStore returns a snapshot store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Current loads the current snapshot, or nil when none exists yet.
func (s *Store) Current() (*Snapshot, error) {
	return s.load(filepath.Join(s.dir, currentName))
}

// Previous loads the prior generation, or nil when none exists.
func (s *Store) Previous() (*Snapshot, error) {
	return s.load(filepath.Join(s.dir, previousName))
}

func (s *Store) load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", filepath.Base(path), err)
	}
	return &snap, nil
}

// Publish atomically installs snap as the current generation and
// demotes the previous current to the prior slot. The new snapshot is
// fully written and validated to a temporary file before any rename,
// so a failure can never leave the store without a snapshot.
func (s *Store) Publish(snap *Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, currentName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close snapshot: %w", err)
	}

	// Validate the temp file round-trips before touching the live
	// generations.
	if _, err := s.load(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("validate snapshot: %w", err)
	}

	currentPath := filepath.Join(s.dir, currentName)
	previousPath := filepath.Join(s.dir, previousName)
	if _, err := os.Stat(currentPath); err == nil {
		if err := os.Rename(currentPath, previousPath); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("rotate previous snapshot: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		os.Remove(tmpPath)
		return fmt.Errorf("stat current snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, currentPath); err != nil {
		return fmt.Errorf("install snapshot: %w", err)
	}
	return nil
}
