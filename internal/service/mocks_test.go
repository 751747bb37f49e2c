package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/milkledger/server/internal/model"
)

// assertErrorType checks that err wraps an error of the same concrete type
// as want.
func assertErrorType(t *testing.T, err error, want any) {
	t.Helper()

	switch want.(type) {
	case *model.ValidationError:
		var target *model.ValidationError
		assert.ErrorAs(t, err, &target)
	case *model.ConflictError:
		var target *model.ConflictError
		assert.ErrorAs(t, err, &target)
	case *model.AuthenticationError:
		var target *model.AuthenticationError
		assert.ErrorAs(t, err, &target)
	default:
		t.Fatalf("unexpected error type %T", want)
	}
}

// MockCourierStore mocks the CourierStore interface
type MockCourierStore struct {
	mock.Mock
}

func (m *MockCourierStore) List(ctx context.Context) ([]model.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Courier), args.Error(1)
}

func (m *MockCourierStore) GetByID(ctx context.Context, id string) (model.Courier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Courier), args.Error(1)
}

func (m *MockCourierStore) GetByName(ctx context.Context, name string) (model.Courier, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Courier), args.Error(1)
}

func (m *MockCourierStore) Create(ctx context.Context, courier model.Courier) (model.Courier, error) {
	args := m.Called(ctx, courier)
	return args.Get(0).(model.Courier), args.Error(1)
}

func (m *MockCourierStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDeliveryStore mocks the DeliveryStore interface
type MockDeliveryStore struct {
	mock.Mock
}

func (m *MockDeliveryStore) GetByKey(ctx context.Context, key model.DeliveryKey) (model.Delivery, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.Delivery), args.Error(1)
}

func (m *MockDeliveryStore) Put(ctx context.Context, delivery model.Delivery) (model.Delivery, error) {
	args := m.Called(ctx, delivery)
	return args.Get(0).(model.Delivery), args.Error(1)
}

func (m *MockDeliveryStore) DeleteByKey(ctx context.Context, key model.DeliveryKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryStore) ListByCourierMonth(ctx context.Context, courierID string, year, month int) ([]model.Delivery, error) {
	args := m.Called(ctx, courierID, year, month)
	return args.Get(0).([]model.Delivery), args.Error(1)
}

func (m *MockDeliveryStore) ListByMonth(ctx context.Context, year, month int) ([]model.Delivery, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).([]model.Delivery), args.Error(1)
}

// MockDepositStore mocks the DepositStore interface
type MockDepositStore struct {
	mock.Mock
}

func (m *MockDepositStore) Create(ctx context.Context, deposit model.Deposit) (model.Deposit, error) {
	args := m.Called(ctx, deposit)
	return args.Get(0).(model.Deposit), args.Error(1)
}

func (m *MockDepositStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepositStore) ListByCourierMonth(ctx context.Context, courierID string, year, month int) ([]model.Deposit, error) {
	args := m.Called(ctx, courierID, year, month)
	return args.Get(0).([]model.Deposit), args.Error(1)
}

func (m *MockDepositStore) ListByMonth(ctx context.Context, year, month int) ([]model.Deposit, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).([]model.Deposit), args.Error(1)
}

// MockSessionStore mocks the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, session model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) GetByToken(ctx context.Context, token string) (model.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockIDGenerator mocks the IDGenerator interface
type MockIDGenerator struct {
	mock.Mock
}

func (m *MockIDGenerator) NewID() string {
	args := m.Called()
	return args.String(0)
}
