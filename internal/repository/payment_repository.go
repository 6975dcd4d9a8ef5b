package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/imovelhub/rent-billing/internal/domain"
)

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, charge_id, amount, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.ChargeID,
		payment.Amount,
		payment.PaidAt,
		payment.CreatedAt,
	)

	return err
}

func (r *paymentRepository) GetByChargeID(ctx context.Context, chargeID string) ([]*domain.Payment, error) {
	query := `
		SELECT id, charge_id, amount, paid_at, created_at
		FROM payments
		WHERE charge_id = $1
		ORDER BY paid_at
	`

	var payments []*domain.Payment
	err := r.db.SelectContext(ctx, &payments, query, chargeID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
