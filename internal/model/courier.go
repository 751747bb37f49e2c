package model

import (
	"context"
	"time"
)

// CourierStore defines persistence operations for couriers.
type CourierStore interface {
	// List returns all couriers sorted by name.
	List(ctx context.Context) ([]Courier, error)
	GetByID(ctx context.Context, id string) (Courier, error)
	// GetByName compares names case-insensitively.
	GetByName(ctx context.Context, name string) (Courier, error)
	Create(ctx context.Context, courier Courier) (Courier, error)
	// Delete removes the courier and cascades to every delivery and
	// deposit record referencing it.
	Delete(ctx context.Context, id string) error
}

// Courier represents a delivery worker tracked by the system.
type Courier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
