package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// CreateDepositParams carries the input of a deposit creation.
type CreateDepositParams struct {
	CourierID   string
	Year        int
	Month       int
	Day         int
	Amount      float64
	Description string
}

// MonthDeposit is one row of the global monthly deposit listing.
type MonthDeposit struct {
	ID          string    `json:"id"`
	CourierID   string    `json:"courier_id"`
	CourierName string    `json:"courier_name"`
	Day         int       `json:"day"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Deposit manages cash deposit records.
type Deposit struct {
	deposits model.DepositStore
	couriers model.CourierStore
	idgen    model.IDGenerator
	logger   *logger.Logger
	now      func() time.Time
}

// NewDeposit creates a new Deposit service.
func NewDeposit(deposits model.DepositStore, couriers model.CourierStore, idgen model.IDGenerator, logger *logger.Logger) *Deposit {
	return &Deposit{
		deposits: deposits,
		couriers: couriers,
		idgen:    idgen,
		logger:   logger,
		now:      time.Now,
	}
}

// Create records a new deposit. Unlike deliveries there is no upsert:
// several deposits may exist for the same courier and day.
func (s *Deposit) Create(ctx context.Context, params CreateDepositParams) (model.Deposit, error) {
	if params.CourierID == "" || params.Year == 0 || params.Month == 0 || params.Day == 0 || params.Amount == 0 {
		return model.Deposit{}, model.NewValidationError("courier id, year, month, day and amount are required")
	}
	if params.Amount < 0 {
		return model.Deposit{}, model.NewValidationError("amount must be positive")
	}

	description := params.Description
	if description == "" {
		description = model.DefaultDepositDescription
	}

	deposit := model.Deposit{
		ID:          s.idgen.NewID(),
		CourierID:   params.CourierID,
		Year:        params.Year,
		Month:       params.Month,
		Day:         params.Day,
		Amount:      params.Amount,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}

	deposit, err := s.deposits.Create(ctx, deposit)
	if err != nil {
		return model.Deposit{}, fmt.Errorf("failed to create deposit: %w", err)
	}

	s.logger.Info("Deposit service: deposit recorded",
		"id", deposit.ID,
		"courier_id", deposit.CourierID,
		"amount", deposit.Amount)
	return deposit, nil
}

// Delete removes a deposit by id.
func (s *Deposit) Delete(ctx context.Context, id string) error {
	if err := s.deposits.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete deposit: %w", err)
	}

	s.logger.Info("Deposit service: deposit deleted", "id", id)
	return nil
}

// CourierMonth returns a courier's deposits for a month, sorted by day.
func (s *Deposit) CourierMonth(ctx context.Context, courierID string, year, month int) ([]model.Deposit, error) {
	deposits, err := s.deposits.ListByCourierMonth(ctx, courierID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}

// MonthOverview returns every courier's deposits for a month, sorted by
// day, with each record joined to its courier's name.
func (s *Deposit) MonthOverview(ctx context.Context, year, month int) ([]MonthDeposit, error) {
	deposits, err := s.deposits.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}

	names := make(map[string]string)
	out := make([]MonthDeposit, 0, len(deposits))
	for _, d := range deposits {
		name, ok := names[d.CourierID]
		if !ok {
			name = UnknownCourierName
			courier, err := s.couriers.GetByID(ctx, d.CourierID)
			switch {
			case err == nil:
				name = courier.Name
			case errors.Is(err, model.ErrNotFound):
				// orphaned record, keep the fallback label
			default:
				return nil, fmt.Errorf("failed to get courier by id: %w", err)
			}
			names[d.CourierID] = name
		}

		out = append(out, MonthDeposit{
			ID:          d.ID,
			CourierID:   d.CourierID,
			CourierName: name,
			Day:         d.Day,
			Amount:      d.Amount,
			Description: d.Description,
			CreatedAt:   d.CreatedAt,
		})
	}
	return out, nil
}
