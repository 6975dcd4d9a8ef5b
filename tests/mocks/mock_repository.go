package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/imovelhub/rent-billing/internal/domain"
)

type MockChargeRepository struct {
	mock.Mock
}

func (m *MockChargeRepository) Create(ctx context.Context, charge *domain.Charge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockChargeRepository) GetByChargeID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeRepository) List(ctx context.Context) ([]*domain.Charge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Charge), args.Error(1)
}

func (m *MockChargeRepository) UpdateStatus(ctx context.Context, chargeID string, status string) error {
	args := m.Called(ctx, chargeID, status)
	return args.Error(0)
}

func (m *MockChargeRepository) GetPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Charge, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Charge), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByChargeID(ctx context.Context, chargeID string) ([]*domain.Payment, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

type MockPaymentNotifier struct {
	mock.Mock
}

func (m *MockPaymentNotifier) NotifyPaymentConfirmed(ctx context.Context, notification *domain.PaymentNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
