package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// UnknownCourierName labels records whose courier no longer exists in the
// global monthly listings. Cascade deletion should make this unreachable;
// kept defensively.
const UnknownCourierName = "unknown"

// UpsertDeliveryParams carries the raw input of a delivery upsert.
// Quantity is left untyped: clients may send a number, a numeric string,
// or omit the field entirely.
type UpsertDeliveryParams struct {
	CourierID string
	Year      int
	Month     int
	Day       int
	Quantity  any
}

// UpsertDeliveryResult acknowledges an upsert. Deleted reports that the
// record was removed (zero quantity) instead of written.
type UpsertDeliveryResult struct {
	Deleted  bool
	Delivery model.Delivery
}

// DeliveryDay is one row of a courier's monthly delivery sheet.
type DeliveryDay struct {
	Day      int     `json:"day"`
	Quantity float64 `json:"quantity"`
	Total    float64 `json:"total"`
}

// MonthDelivery is one row of the global monthly delivery listing.
type MonthDelivery struct {
	Day         int     `json:"day"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
	CourierID   string  `json:"courier_id"`
	CourierName string  `json:"courier_name"`
}

// Delivery manages daily delivery records.
type Delivery struct {
	deliveries model.DeliveryStore
	couriers   model.CourierStore
	idgen      model.IDGenerator
	logger     *logger.Logger
	now        func() time.Time
}

// NewDelivery creates a new Delivery service.
func NewDelivery(deliveries model.DeliveryStore, couriers model.CourierStore, idgen model.IDGenerator, logger *logger.Logger) *Delivery {
	return &Delivery{
		deliveries: deliveries,
		couriers:   couriers,
		idgen:      idgen,
		logger:     logger,
		now:        time.Now,
	}
}

// Upsert records a day's delivered quantity for a courier. At most one
// record exists per (courier, year, month, day): an existing record is
// replaced in place keeping its id, and a zero quantity removes the record
// if present.
func (s *Delivery) Upsert(ctx context.Context, params UpsertDeliveryParams) (UpsertDeliveryResult, error) {
	if params.CourierID == "" || params.Year == 0 || params.Month == 0 || params.Day == 0 {
		return UpsertDeliveryResult{}, model.NewValidationError("courier id, year, month and day are required")
	}

	quantity := coerceQuantity(params.Quantity)
	if quantity < 0 {
		return UpsertDeliveryResult{}, model.NewValidationError("quantity cannot be negative")
	}

	key := model.DeliveryKey{
		CourierID: params.CourierID,
		Year:      params.Year,
		Month:     params.Month,
		Day:       params.Day,
	}

	if quantity == 0 {
		deleted, err := s.deliveries.DeleteByKey(ctx, key)
		if err != nil {
			return UpsertDeliveryResult{}, fmt.Errorf("failed to delete delivery: %w", err)
		}
		if deleted {
			s.logger.Info("Delivery service: zero quantity, record removed",
				"courier_id", key.CourierID,
				"year", key.Year,
				"month", key.Month,
				"day", key.Day)
		}
		return UpsertDeliveryResult{Deleted: true}, nil
	}

	delivery := model.Delivery{
		CourierID:  params.CourierID,
		Year:       params.Year,
		Month:      params.Month,
		Day:        params.Day,
		Quantity:   quantity,
		UnitPrice:  model.DefaultUnitPrice,
		RecordedAt: s.now().UTC(),
	}

	existing, err := s.deliveries.GetByKey(ctx, key)
	switch {
	case err == nil:
		delivery.ID = existing.ID
	case errors.Is(err, model.ErrNotFound):
		delivery.ID = s.idgen.NewID()
	default:
		return UpsertDeliveryResult{}, fmt.Errorf("failed to get delivery by key: %w", err)
	}

	delivery, err = s.deliveries.Put(ctx, delivery)
	if err != nil {
		return UpsertDeliveryResult{}, fmt.Errorf("failed to put delivery: %w", err)
	}

	return UpsertDeliveryResult{Delivery: delivery}, nil
}

// CourierMonth returns a courier's delivery sheet for a month, sorted by
// day.
func (s *Delivery) CourierMonth(ctx context.Context, courierID string, year, month int) ([]DeliveryDay, error) {
	deliveries, err := s.deliveries.ListByCourierMonth(ctx, courierID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	days := make([]DeliveryDay, 0, len(deliveries))
	for _, d := range deliveries {
		days = append(days, DeliveryDay{Day: d.Day, Quantity: d.Quantity, Total: d.Total()})
	}
	return days, nil
}

// MonthOverview returns every courier's deliveries for a month, sorted by
// day, with each record joined to its courier's name.
func (s *Delivery) MonthOverview(ctx context.Context, year, month int) ([]MonthDelivery, error) {
	deliveries, err := s.deliveries.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	names := make(map[string]string)
	out := make([]MonthDelivery, 0, len(deliveries))
	for _, d := range deliveries {
		name, err := s.courierName(ctx, names, d.CourierID)
		if err != nil {
			return nil, err
		}
		out = append(out, MonthDelivery{
			Day:         d.Day,
			Quantity:    d.Quantity,
			Total:       d.Total(),
			CourierID:   d.CourierID,
			CourierName: name,
		})
	}
	return out, nil
}

func (s *Delivery) courierName(ctx context.Context, cache map[string]string, courierID string) (string, error) {
	if name, ok := cache[courierID]; ok {
		return name, nil
	}

	name := UnknownCourierName
	courier, err := s.couriers.GetByID(ctx, courierID)
	switch {
	case err == nil:
		name = courier.Name
	case errors.Is(err, model.ErrNotFound):
		// orphaned record, keep the fallback label
	default:
		return "", fmt.Errorf("failed to get courier by id: %w", err)
	}

	cache[courierID] = name
	return name, nil
}

// coerceQuantity converts a raw quantity value to a float. Absent or
// non-numeric values count as zero.
func coerceQuantity(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
