// Package memory provides an ephemeral snapshot store for tests and
// development. Data is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/milkledger/server/internal/model"
)

var _ model.SnapshotStore = (*Store)(nil)

// Store keeps the last saved snapshot in memory.
type Store struct {
	mu   sync.Mutex
	snap model.Snapshot
}

// New creates an empty in-memory snapshot store.
func New() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.snap), nil
}

func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = copySnapshot(snap)
	return nil
}

func copySnapshot(src model.Snapshot) model.Snapshot {
	dst := model.Snapshot{
		Couriers:   make([]model.Courier, len(src.Couriers)),
		Deliveries: make([]model.Delivery, len(src.Deliveries)),
		Deposits:   make([]model.Deposit, len(src.Deposits)),
	}
	copy(dst.Couriers, src.Couriers)
	copy(dst.Deliveries, src.Deliveries)
	copy(dst.Deposits, src.Deposits)
	return dst
}
