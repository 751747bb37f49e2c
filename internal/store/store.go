// Package store owns the in-memory courier, delivery and deposit
// collections and keeps the persisted snapshot in sync after every
// mutation.
package store

import (
	"context"
	"sync"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// Store holds the three collections behind a single RWMutex. Mutations,
// including the synchronous snapshot save, run to completion under the
// write lock, which preserves the natural-key uniqueness of deliveries and
// the atomicity of courier cascades. Reads take the read lock and observe
// a consistent state.
type Store struct {
	mu         sync.RWMutex
	couriers   []model.Courier
	deliveries []model.Delivery
	deposits   []model.Deposit
	snapshots  model.SnapshotStore
	logger     *logger.Logger
}

// New creates a Store and loads the last snapshot. A failed load is logged
// and the store starts empty.
func New(ctx context.Context, snapshots model.SnapshotStore, l *logger.Logger) *Store {
	s := &Store{snapshots: snapshots, logger: l}

	snap, err := snapshots.Load(ctx)
	if err != nil {
		l.Error("Store: failed to load snapshot, starting empty", "error", err)
		return s
	}

	s.couriers = snap.Couriers
	s.deliveries = snap.Deliveries
	s.deposits = snap.Deposits
	l.Info("Store: snapshot loaded",
		"couriers", len(s.couriers),
		"deliveries", len(s.deliveries),
		"deposits", len(s.deposits))

	return s
}

// snapshotLocked copies the collections into a Snapshot. Callers must hold
// at least the read lock.
func (s *Store) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		Couriers:   make([]model.Courier, len(s.couriers)),
		Deliveries: make([]model.Delivery, len(s.deliveries)),
		Deposits:   make([]model.Deposit, len(s.deposits)),
	}
	copy(snap.Couriers, s.couriers)
	copy(snap.Deliveries, s.deliveries)
	copy(snap.Deposits, s.deposits)
	return snap
}

// persist saves the snapshot after a mutation. Callers must hold the write
// lock. A failed save is logged; the in-memory state remains the source of
// truth and a later save will pick the mutation up.
func (s *Store) persist(ctx context.Context) {
	if err := s.snapshots.Save(ctx, s.snapshotLocked()); err != nil {
		s.logger.Error("Store: failed to save snapshot", "error", err)
	}
}

// Flush saves the current snapshot. Used by the periodic saver and on
// shutdown.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots.Save(ctx, s.snapshotLocked())
}

// Reset drops all three collections and persists the empty snapshot.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.couriers = nil
	s.deliveries = nil
	s.deposits = nil
	s.persist(ctx)
	s.logger.Info("Store: all data cleared")
}
