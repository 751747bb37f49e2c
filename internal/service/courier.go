package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// Courier manages the courier roster.
type Courier struct {
	couriers model.CourierStore
	idgen    model.IDGenerator
	logger   *logger.Logger
	now      func() time.Time
}

// NewCourier creates a new Courier service.
func NewCourier(couriers model.CourierStore, idgen model.IDGenerator, logger *logger.Logger) *Courier {
	return &Courier{
		couriers: couriers,
		idgen:    idgen,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns all couriers sorted by name.
func (s *Courier) List(ctx context.Context) ([]model.Courier, error) {
	couriers, err := s.couriers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list couriers: %w", err)
	}
	return couriers, nil
}

// Create registers a new courier. The name is trimmed and must be unique
// under case-insensitive comparison.
func (s *Courier) Create(ctx context.Context, name string) (model.Courier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Courier{}, model.NewValidationError("name is required")
	}

	_, err := s.couriers.GetByName(ctx, name)
	if err == nil {
		s.logger.Info("Courier service: courier already exists", "name", name)
		return model.Courier{}, model.NewConflictError("courier already exists")
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Courier{}, fmt.Errorf("failed to get courier by name: %w", err)
	}

	courier := model.Courier{
		ID:        s.idgen.NewID(),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}

	courier, err = s.couriers.Create(ctx, courier)
	if err != nil {
		return model.Courier{}, fmt.Errorf("failed to create courier: %w", err)
	}

	s.logger.Info("Courier service: courier created", "id", courier.ID, "name", courier.Name)
	return courier, nil
}

// Delete removes a courier and cascades to all of its delivery and deposit
// records.
func (s *Courier) Delete(ctx context.Context, id string) error {
	if err := s.couriers.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete courier: %w", err)
	}

	s.logger.Info("Courier service: courier deleted", "id", id)
	return nil
}
