package notifier

import (
	"context"

	"github.com/imovelhub/rent-billing/internal/domain"
)

// PaymentNotifier publishes payment confirmation events for downstream
// consumers (dashboards, reminders). Publishing is best-effort: a failed
// publish must never fail the payment that triggered it.
type PaymentNotifier interface {
	NotifyPaymentConfirmed(ctx context.Context, notification *domain.PaymentNotification) error
}
