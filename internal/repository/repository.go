// Package repository selects a snapshot persistence backend by name.
package repository

import (
	"fmt"
	"path/filepath"

	"github.com/milkledger/server/internal/model"
	"github.com/milkledger/server/internal/repository/jsonfile"
	"github.com/milkledger/server/internal/repository/memory"
	"github.com/milkledger/server/internal/repository/sqlite"
)

// New creates a snapshot store for the given backend.
//
// Supported backends:
//
//	"json"   - single JSON document at dataDir/database.json (default)
//	"sqlite" - SQLite database at dataDir/ledger.db
//	"memory" - in-memory (ephemeral, for testing)
func New(backend, dataDir string) (model.SnapshotStore, error) {
	switch backend {
	case "json", "":
		return jsonfile.New(filepath.Join(dataDir, "database.json"))
	case "sqlite":
		return sqlite.Open(filepath.Join(dataDir, "ledger.db"))
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: json, sqlite, memory)", backend)
	}
}
