package store

import (
	"context"
	"sort"

	"github.com/milkledger/server/internal/model"
)

var _ model.DepositStore = (*Deposits)(nil)

// Deposits exposes the deposit collection of a Store.
type Deposits struct {
	store *Store
}

// NewDeposits creates a deposit view over the store.
func NewDeposits(store *Store) *Deposits {
	return &Deposits{store: store}
}

func (d *Deposits) Create(ctx context.Context, deposit model.Deposit) (model.Deposit, error) {
	s := d.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deposits = append(s.deposits, deposit)
	s.persist(ctx)
	return deposit, nil
}

func (d *Deposits) Delete(ctx context.Context, id string) error {
	s := d.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, deposit := range s.deposits {
		if deposit.ID == id {
			s.deposits = append(s.deposits[:i], s.deposits[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return model.ErrNotFound
}

func (d *Deposits) ListByCourierMonth(ctx context.Context, courierID string, year, month int) ([]model.Deposit, error) {
	s := d.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Deposit
	for _, deposit := range s.deposits {
		if deposit.CourierID == courierID && deposit.Year == year && deposit.Month == month {
			out = append(out, deposit)
		}
	}
	sortDepositsByDay(out)
	return out, nil
}

func (d *Deposits) ListByMonth(ctx context.Context, year, month int) ([]model.Deposit, error) {
	s := d.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Deposit
	for _, deposit := range s.deposits {
		if deposit.Year == year && deposit.Month == month {
			out = append(out, deposit)
		}
	}
	sortDepositsByDay(out)
	return out, nil
}

func sortDepositsByDay(deposits []model.Deposit) {
	sort.Slice(deposits, func(i, j int) bool {
		return deposits[i].Day < deposits[j].Day
	})
}
