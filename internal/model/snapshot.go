package model

import "context"

// Snapshot is the full persisted state: the three collections serialized
// as one document, overwritten as a whole on every save.
type Snapshot struct {
	Couriers   []Courier  `json:"couriers"`
	Deliveries []Delivery `json:"deliveries"`
	Deposits   []Deposit  `json:"deposits"`
}

// SnapshotStore loads and saves the snapshot document.
type SnapshotStore interface {
	// Load returns the last saved snapshot, or an empty one when none
	// exists yet.
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
}
