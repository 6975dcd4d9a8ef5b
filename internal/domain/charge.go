package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ChargeStatusPending = "pending"
	ChargeStatusPaid    = "paid"
	ChargeStatusOverdue = "overdue"
)

// Charge represents a single receivable: one rent installment owed by a
// client for a property, identified externally by ChargeID.
type Charge struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	ChargeID     string          `json:"charge_id" db:"charge_id"`
	ClientName   string          `json:"client_name" db:"client_name"`
	PropertyCode string          `json:"property_code" db:"property_code"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	DueDate      time.Time       `json:"due_date" db:"due_date"`
	Status       string          `json:"status" db:"status"` // pending, paid, overdue
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// DTOs for requests and responses

type CreateChargeRequest struct {
	ChargeID     string          `json:"charge_id" validate:"required"`
	ClientName   string          `json:"client_name" validate:"required"`
	PropertyCode string          `json:"property_code" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	DueDate      string          `json:"due_date" validate:"required"` // YYYY-MM-DD
}

type ChargeListResponse struct {
	Charges []*Charge `json:"charges"`
	Total   int       `json:"total"`
}

type InvoiceResponse struct {
	ChargeID string         `json:"charge_id"`
	AsOf     string         `json:"as_of"`
	Invoice  *InvoiceDetail `json:"invoice"`
}
