package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// MonthlyStats summarizes one courier's deliveries for a month.
type MonthlyStats struct {
	DaysWorked    int     `json:"days_worked"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
	AveragePerDay float64 `json:"average_per_day"`
}

// AccountStats combines delivery revenue and deposits into a balance for
// one courier and month.
type AccountStats struct {
	TotalQuantity       float64 `json:"total_quantity"`
	TotalDeliveryAmount float64 `json:"total_delivery_amount"`
	TotalDepositAmount  float64 `json:"total_deposit_amount"`
	Balance             float64 `json:"balance"`
	DaysWorked          int     `json:"days_worked"`
	DepositCount        int     `json:"deposit_count"`
}

// RankingEntry is one courier's totals in the monthly ranking.
type RankingEntry struct {
	CourierID     string  `json:"courier_id"`
	Name          string  `json:"name"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
	DaysWorked    int     `json:"days_worked"`
}

// Stats computes monthly statistics and rankings over the collections.
type Stats struct {
	couriers   model.CourierStore
	deliveries model.DeliveryStore
	deposits   model.DepositStore
	logger     *logger.Logger
}

// NewStats creates a new Stats service.
func NewStats(couriers model.CourierStore, deliveries model.DeliveryStore, deposits model.DepositStore, logger *logger.Logger) *Stats {
	return &Stats{
		couriers:   couriers,
		deliveries: deliveries,
		deposits:   deposits,
		logger:     logger,
	}
}

// CourierMonth returns a courier's delivery statistics for a month.
func (s *Stats) CourierMonth(ctx context.Context, courierID string, year, month int) (MonthlyStats, error) {
	deliveries, err := s.deliveries.ListByCourierMonth(ctx, courierID, year, month)
	if err != nil {
		return MonthlyStats{}, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return summarize(deliveries), nil
}

// CourierAccount combines a courier's delivery totals and deposits for a
// month into a balance (delivery revenue minus deposits).
func (s *Stats) CourierAccount(ctx context.Context, courierID string, year, month int) (AccountStats, error) {
	deliveries, err := s.deliveries.ListByCourierMonth(ctx, courierID, year, month)
	if err != nil {
		return AccountStats{}, fmt.Errorf("failed to list deliveries: %w", err)
	}
	deposits, err := s.deposits.ListByCourierMonth(ctx, courierID, year, month)
	if err != nil {
		return AccountStats{}, fmt.Errorf("failed to list deposits: %w", err)
	}

	monthly := summarize(deliveries)

	var depositTotal float64
	for _, d := range deposits {
		depositTotal += d.Amount
	}

	return AccountStats{
		TotalQuantity:       monthly.TotalQuantity,
		TotalDeliveryAmount: monthly.TotalAmount,
		TotalDepositAmount:  depositTotal,
		Balance:             monthly.TotalAmount - depositTotal,
		DaysWorked:          monthly.DaysWorked,
		DepositCount:        len(deposits),
	}, nil
}

// Ranking orders every courier by delivered quantity for a month,
// descending. Couriers without deliveries appear with zero totals.
func (s *Stats) Ranking(ctx context.Context, year, month int) ([]RankingEntry, error) {
	couriers, err := s.couriers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list couriers: %w", err)
	}

	entries := make([]RankingEntry, 0, len(couriers))
	for _, courier := range couriers {
		deliveries, err := s.deliveries.ListByCourierMonth(ctx, courier.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to list deliveries: %w", err)
		}

		monthly := summarize(deliveries)
		entries = append(entries, RankingEntry{
			CourierID:     courier.ID,
			Name:          courier.Name,
			TotalQuantity: monthly.TotalQuantity,
			TotalAmount:   monthly.TotalAmount,
			DaysWorked:    monthly.DaysWorked,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalQuantity > entries[j].TotalQuantity
	})
	return entries, nil
}

// summarize folds delivery records into monthly statistics. The average is
// zero when no day was worked.
func summarize(deliveries []model.Delivery) MonthlyStats {
	stats := MonthlyStats{DaysWorked: len(deliveries)}
	for _, d := range deliveries {
		stats.TotalQuantity += d.Quantity
		stats.TotalAmount += d.Total()
	}
	if stats.DaysWorked > 0 {
		stats.AveragePerDay = stats.TotalQuantity / float64(stats.DaysWorked)
	}
	return stats
}
