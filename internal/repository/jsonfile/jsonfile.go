// Package jsonfile persists the snapshot as a single JSON document on
// disk. Every save overwrites the whole file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milkledger/server/internal/model"
)

var _ model.SnapshotStore = (*Store)(nil)

// Store writes the snapshot to a single file.
type Store struct {
	path string
}

// New creates a Store writing to path, creating the parent directory if
// needed.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Load reads the snapshot file. A missing or unparseable file yields an
// empty snapshot so the server can start with a fresh store.
func (s *Store) Load(ctx context.Context) (model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Snapshot{}, nil
		}
		return model.Snapshot{}, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, nil
	}
	return snap, nil
}

// Save serializes the snapshot and overwrites the file.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}
