package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const NotificationTypePaymentConfirmed = "payment_confirmed"

// Payment records a confirmed settlement of a charge.
type Payment struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	ChargeID  string          `json:"charge_id" db:"charge_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	PaidAt    time.Time       `json:"paid_at" db:"paid_at"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// PaymentNotification is the event published after a payment is confirmed.
type PaymentNotification struct {
	ID           string          `json:"id"`
	ClientName   string          `json:"client_name"`
	PropertyCode string          `json:"property_code"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    time.Time       `json:"timestamp"`
	Type         string          `json:"type"`
}

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	PaidAt string          `json:"paid_at,omitempty"` // YYYY-MM-DD, defaults to today
}

type RecordPaymentResponse struct {
	Payment *Payment       `json:"payment"`
	Invoice *InvoiceDetail `json:"invoice"`
}
