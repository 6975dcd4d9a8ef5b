package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/imovelhub/rent-billing/internal/domain"
)

type chargeRepository struct {
	db *sqlx.DB
}

func NewChargeRepository(db *sqlx.DB) ChargeRepository {
	return &chargeRepository{db: db}
}

func (r *chargeRepository) Create(ctx context.Context, charge *domain.Charge) error {
	query := `
		INSERT INTO charges (id, charge_id, client_name, property_code, amount, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		charge.ID,
		charge.ChargeID,
		charge.ClientName,
		charge.PropertyCode,
		charge.Amount,
		charge.DueDate,
		charge.Status,
		charge.CreatedAt,
		charge.UpdatedAt,
	)

	return err
}

func (r *chargeRepository) GetByChargeID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	query := `
		SELECT id, charge_id, client_name, property_code, amount, due_date, status, created_at, updated_at
		FROM charges
		WHERE charge_id = $1
	`

	var charge domain.Charge
	err := r.db.GetContext(ctx, &charge, query, chargeID)
	if err != nil {
		return nil, err
	}

	return &charge, nil
}

func (r *chargeRepository) List(ctx context.Context) ([]*domain.Charge, error) {
	query := `
		SELECT id, charge_id, client_name, property_code, amount, due_date, status, created_at, updated_at
		FROM charges
		ORDER BY due_date DESC
	`

	var charges []*domain.Charge
	err := r.db.SelectContext(ctx, &charges, query)
	if err != nil {
		return nil, err
	}

	return charges, nil
}

func (r *chargeRepository) UpdateStatus(ctx context.Context, chargeID string, status string) error {
	query := `
		UPDATE charges
		SET status = $2, updated_at = $3
		WHERE charge_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, chargeID, status, time.Now())
	return err
}

func (r *chargeRepository) GetPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*domain.Charge, error) {
	query := `
		SELECT id, charge_id, client_name, property_code, amount, due_date, status, created_at, updated_at
		FROM charges
		WHERE status = 'pending' AND due_date < $1
		ORDER BY due_date
	`

	var charges []*domain.Charge
	err := r.db.SelectContext(ctx, &charges, query, cutoff)
	if err != nil {
		return nil, err
	}

	return charges, nil
}
