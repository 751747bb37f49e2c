package store

import (
	"context"
	"sort"

	"github.com/milkledger/server/internal/model"
)

var _ model.DeliveryStore = (*Deliveries)(nil)

// Deliveries exposes the delivery collection of a Store.
type Deliveries struct {
	store *Store
}

// NewDeliveries creates a delivery view over the store.
func NewDeliveries(store *Store) *Deliveries {
	return &Deliveries{store: store}
}

func (d *Deliveries) GetByKey(ctx context.Context, key model.DeliveryKey) (model.Delivery, error) {
	s := d.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, delivery := range s.deliveries {
		if delivery.Key() == key {
			return delivery, nil
		}
	}
	return model.Delivery{}, model.ErrNotFound
}

// Put inserts the delivery or replaces the record holding the same natural
// key, so the key stays unique.
func (d *Deliveries) Put(ctx context.Context, delivery model.Delivery) (model.Delivery, error) {
	s := d.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.deliveries {
		if existing.Key() == delivery.Key() {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.deliveries[idx] = delivery
	} else {
		s.deliveries = append(s.deliveries, delivery)
	}

	s.persist(ctx)
	return delivery, nil
}

// DeleteByKey removes the record with the given key and reports whether it
// existed. Deleting an absent key is a no-op and does not persist.
func (d *Deliveries) DeleteByKey(ctx context.Context, key model.DeliveryKey) (bool, error) {
	s := d.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, delivery := range s.deliveries {
		if delivery.Key() == key {
			s.deliveries = append(s.deliveries[:i], s.deliveries[i+1:]...)
			s.persist(ctx)
			return true, nil
		}
	}
	return false, nil
}

func (d *Deliveries) ListByCourierMonth(ctx context.Context, courierID string, year, month int) ([]model.Delivery, error) {
	s := d.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Delivery
	for _, delivery := range s.deliveries {
		if delivery.CourierID == courierID && delivery.Year == year && delivery.Month == month {
			out = append(out, delivery)
		}
	}
	sortByDay(out)
	return out, nil
}

func (d *Deliveries) ListByMonth(ctx context.Context, year, month int) ([]model.Delivery, error) {
	s := d.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Delivery
	for _, delivery := range s.deliveries {
		if delivery.Year == year && delivery.Month == month {
			out = append(out, delivery)
		}
	}
	sortByDay(out)
	return out, nil
}

func sortByDay(deliveries []model.Delivery) {
	sort.Slice(deliveries, func(i, j int) bool {
		return deliveries[i].Day < deliveries[j].Day
	})
}
