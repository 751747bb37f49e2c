package store

import (
	"context"
	"sort"
	"strings"

	"github.com/milkledger/server/internal/model"
)

var _ model.CourierStore = (*Couriers)(nil)

// Couriers exposes the courier collection of a Store.
type Couriers struct {
	store *Store
}

// NewCouriers creates a courier view over the store.
func NewCouriers(store *Store) *Couriers {
	return &Couriers{store: store}
}

// List returns all couriers sorted by name.
func (c *Couriers) List(ctx context.Context) ([]model.Courier, error) {
	s := c.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Courier, len(s.couriers))
	copy(out, s.couriers)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (c *Couriers) GetByID(ctx context.Context, id string) (model.Courier, error) {
	s := c.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, courier := range s.couriers {
		if courier.ID == id {
			return courier, nil
		}
	}
	return model.Courier{}, model.ErrNotFound
}

// GetByName matches names case-insensitively.
func (c *Couriers) GetByName(ctx context.Context, name string) (model.Courier, error) {
	s := c.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, courier := range s.couriers {
		if strings.EqualFold(courier.Name, name) {
			return courier, nil
		}
	}
	return model.Courier{}, model.ErrNotFound
}

func (c *Couriers) Create(ctx context.Context, courier model.Courier) (model.Courier, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.couriers = append(s.couriers, courier)
	s.persist(ctx)
	return courier, nil
}

// Delete removes the courier and every delivery and deposit record
// referencing it, then persists once.
func (c *Couriers) Delete(ctx context.Context, id string) error {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, courier := range s.couriers {
		if courier.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.ErrNotFound
	}

	deliveries := s.deliveries[:0]
	for _, d := range s.deliveries {
		if d.CourierID != id {
			deliveries = append(deliveries, d)
		}
	}
	s.deliveries = deliveries

	deposits := s.deposits[:0]
	for _, d := range s.deposits {
		if d.CourierID != id {
			deposits = append(deposits, d)
		}
	}
	s.deposits = deposits

	s.couriers = append(s.couriers[:idx], s.couriers[idx+1:]...)
	s.persist(ctx)
	return nil
}
