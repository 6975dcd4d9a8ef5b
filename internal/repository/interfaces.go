package repository

import (
	"context"
	"time"

	"github.com/imovelhub/rent-billing/internal/domain"
)

// ChargeRepository defines the interface for charge data operations
type ChargeRepository interface {
	// Create creates a new charge
	Create(ctx context.Context, charge *domain.Charge) error

	// GetByChargeID retrieves a charge by its external charge ID
	GetByChargeID(ctx context.Context, chargeID string) (*domain.Charge, error)

	// List retrieves all charges, newest due date first
	List(ctx context.Context) ([]*domain.Charge, error)

	// UpdateStatus updates the status of a charge
	UpdateStatus(ctx context.Context, chargeID string, status string) error

	// GetPendingDueBefore gets pending charges whose due date is before the cutoff
	GetPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Charge, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	// Create creates a new payment record
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByChargeID retrieves all payments for a charge
	GetByChargeID(ctx context.Context, chargeID string) ([]*domain.Payment, error)
}
