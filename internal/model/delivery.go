package model

import (
	"context"
	"time"
)

// DefaultUnitPrice is the fixed price per delivered unit, applied to every
// delivery at write time.
const DefaultUnitPrice = 75

// DeliveryKey is the natural key of a delivery record. At most one record
// exists per key.
type DeliveryKey struct {
	CourierID string
	Year      int
	Month     int
	Day       int
}

// Delivery represents one day's delivered quantity for one courier.
type Delivery struct {
	ID         string    `json:"id"`
	CourierID  string    `json:"courier_id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Day        int       `json:"day"`
	Quantity   float64   `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Key returns the delivery's natural key.
func (d Delivery) Key() DeliveryKey {
	return DeliveryKey{CourierID: d.CourierID, Year: d.Year, Month: d.Month, Day: d.Day}
}

// Total returns the delivery's revenue.
func (d Delivery) Total() float64 {
	return d.Quantity * d.UnitPrice
}

// DeliveryStore defines persistence operations for delivery records.
type DeliveryStore interface {
	GetByKey(ctx context.Context, key DeliveryKey) (Delivery, error)
	// Put inserts the delivery or replaces the record holding the same
	// natural key.
	Put(ctx context.Context, delivery Delivery) (Delivery, error)
	// DeleteByKey removes the record with the given key and reports
	// whether it existed.
	DeleteByKey(ctx context.Context, key DeliveryKey) (bool, error)
	// ListByCourierMonth returns the courier's records for a month,
	// sorted by day ascending.
	ListByCourierMonth(ctx context.Context, courierID string, year, month int) ([]Delivery, error)
	// ListByMonth returns all records for a month, sorted by day
	// ascending.
	ListByMonth(ctx context.Context, year, month int) ([]Delivery, error)
}
