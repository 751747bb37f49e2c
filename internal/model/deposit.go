package model

import (
	"context"
	"time"
)

// DefaultDepositDescription is used when a deposit is recorded without one.
const DefaultDepositDescription = "Versement"

// Deposit represents a cash deposit made by a courier on a given day.
// Unlike deliveries, several deposits may exist for the same day.
type Deposit struct {
	ID          string    `json:"id"`
	CourierID   string    `json:"courier_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Day         int       `json:"day"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// DepositStore defines persistence operations for deposit records.
type DepositStore interface {
	Create(ctx context.Context, deposit Deposit) (Deposit, error)
	Delete(ctx context.Context, id string) error
	// ListByCourierMonth returns the courier's deposits for a month,
	// sorted by day ascending.
	ListByCourierMonth(ctx context.Context, courierID string, year, month int) ([]Deposit, error)
	// ListByMonth returns all deposits for a month, sorted by day
	// ascending.
	ListByMonth(ctx context.Context, year, month int) ([]Deposit, error)
}
