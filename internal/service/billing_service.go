package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/imovelhub/rent-billing/internal/domain"
	"github.com/imovelhub/rent-billing/internal/notifier"
	"github.com/imovelhub/rent-billing/internal/repository"
	"github.com/imovelhub/rent-billing/internal/valuation"
	customError "github.com/imovelhub/rent-billing/pkg/errors"
	"github.com/imovelhub/rent-billing/pkg/utils"
)

const chargeCacheTTL = 1 * time.Hour

type BillingService struct {
	ChargeRepo  repository.ChargeRepository
	PaymentRepo repository.PaymentRepository
	notifier    notifier.PaymentNotifier
	redis       *redis.Client
	params      domain.FinancialParameters
}

// NewBillingService wires the billing workflows around the valuation
// engine. The financial parameters are fixed at construction; the engine
// itself never reads ambient configuration.
func NewBillingService(
	chargeRepo repository.ChargeRepository,
	paymentRepo repository.PaymentRepository,
	paymentNotifier notifier.PaymentNotifier,
	redisClient *redis.Client,
	params domain.FinancialParameters,
) *BillingService {
	return &BillingService{
		ChargeRepo:  chargeRepo,
		PaymentRepo: paymentRepo,
		notifier:    paymentNotifier,
		redis:       redisClient,
		params:      params,
	}
}

// CreateCharge registers a new receivable for a client and property
func (s *BillingService) CreateCharge(ctx context.Context, request *domain.CreateChargeRequest) (*domain.Charge, error) {
	if !request.Amount.IsPositive() {
		return nil, customError.WrapInvalidAmount(request.Amount.String())
	}

	dueDate, err := utils.ParseDate(request.DueDate)
	if err != nil {
		return nil, customError.WrapInvalidDate(request.DueDate)
	}

	// Check if charge already exists
	existingCharge, err := s.ChargeRepo.GetByChargeID(ctx, request.ChargeID)
	if err == nil && existingCharge != nil {
		return nil, customError.WrapChargeAlreadyExists(request.ChargeID)
	}

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	now := time.Now()
	charge := &domain.Charge{
		ID:           uuid.New(),
		ChargeID:     request.ChargeID,
		ClientName:   request.ClientName,
		PropertyCode: request.PropertyCode,
		Amount:       request.Amount,
		DueDate:      dueDate,
		Status:       domain.ChargeStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.ChargeRepo.Create(ctx, charge); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return charge, nil
}

// GetInvoice values a charge as of the given date and returns the itemized
// invoice: discount while on time, fine plus day-prorated interest once
// overdue. Paid charges have nothing left to value.
func (s *BillingService) GetInvoice(ctx context.Context, chargeID string, asOf time.Time) (*domain.InvoiceDetail, error) {
	charge, err := s.getCharge(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	if charge.Status == domain.ChargeStatusPaid {
		return nil, customError.WrapChargeAlreadyPaid(chargeID)
	}

	return valuation.Evaluate(charge.Amount, charge.DueDate, s.params, asOf)
}

// RecordPayment settles a charge. The paid amount must match the invoice
// total as of the payment date at cent precision; partial payments are not
// accepted. On success the charge is marked paid and a confirmation event
// is published.
func (s *BillingService) RecordPayment(ctx context.Context, chargeID string, amount decimal.Decimal, paidAt time.Time) (*domain.Payment, *domain.InvoiceDetail, error) {
	charge, err := s.getCharge(ctx, chargeID)
	if err != nil {
		return nil, nil, err
	}

	if charge.Status == domain.ChargeStatusPaid {
		return nil, nil, customError.WrapChargeAlreadyPaid(chargeID)
	}

	invoice, err := valuation.Evaluate(charge.Amount, charge.DueDate, s.params, paidAt)
	if err != nil {
		return nil, nil, err
	}

	// Amounts are settled at cent precision; the unrounded total is an
	// internal value.
	payable := invoice.TotalValue.Round(2)
	if !amount.Equal(payable) {
		return nil, nil, customError.WrapPaymentAmountMismatch(payable.String(), amount.String())
	}

	payment := &domain.Payment{
		ID:        uuid.New(),
		ChargeID:  chargeID,
		Amount:    amount,
		PaidAt:    paidAt,
		CreatedAt: time.Now(),
	}

	if err = s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	if err = s.ChargeRepo.UpdateStatus(ctx, chargeID, domain.ChargeStatusPaid); err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	s.invalidateChargeCache(ctx, chargeID)

	s.notifyPaymentConfirmed(ctx, charge, payment)

	return payment, invoice, nil
}

// ListCharges returns all charges, newest due date first
func (s *BillingService) ListCharges(ctx context.Context) ([]*domain.Charge, error) {
	charges, err := s.ChargeRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return charges, nil
}

// MarkOverdueCharges flips pending charges whose grace-adjusted due date
// has passed to overdue and returns how many were updated. Run daily by
// the scheduler.
func (s *BillingService) MarkOverdueCharges(ctx context.Context, asOf time.Time) (int, error) {
	// A charge is overdue when asOf > dueDate + grace, so the cutoff for
	// "due date strictly before" is asOf - grace.
	cutoff := utils.TruncateToDay(asOf).AddDate(0, 0, -s.params.GracePeriodDays)

	charges, err := s.ChargeRepo.GetPendingDueBefore(ctx, cutoff)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	updated := 0
	for _, charge := range charges {
		if err = s.ChargeRepo.UpdateStatus(ctx, charge.ChargeID, domain.ChargeStatusOverdue); err != nil {
			return updated, customError.WrapDatabaseError(err)
		}
		s.invalidateChargeCache(ctx, charge.ChargeID)
		updated++
	}

	return updated, nil
}

func (s *BillingService) getCharge(ctx context.Context, chargeID string) (*domain.Charge, error) {
	if cached := s.getCachedCharge(ctx, chargeID); cached != nil {
		return cached, nil
	}

	charge, err := s.ChargeRepo.GetByChargeID(ctx, chargeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapChargeNotFound(chargeID)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	s.setCachedCharge(ctx, charge)

	return charge, nil
}

func (s *BillingService) notifyPaymentConfirmed(ctx context.Context, charge *domain.Charge, payment *domain.Payment) {
	if s.notifier == nil {
		return
	}

	notification := &domain.PaymentNotification{
		ID:           payment.ID.String(),
		ClientName:   charge.ClientName,
		PropertyCode: charge.PropertyCode,
		Amount:       payment.Amount,
		Timestamp:    payment.PaidAt,
		Type:         domain.NotificationTypePaymentConfirmed,
	}

	// Best-effort: a lost notification must not fail the payment
	if err := s.notifier.NotifyPaymentConfirmed(ctx, notification); err != nil {
		log.Printf("Failed to publish payment notification for charge %s: %v", charge.ChargeID, err)
	}
}

func chargeCacheKey(chargeID string) string {
	return fmt.Sprintf("charge:%s", chargeID)
}

func (s *BillingService) getCachedCharge(ctx context.Context, chargeID string) *domain.Charge {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, chargeCacheKey(chargeID)).Result()
	if err != nil {
		return nil
	}

	var charge domain.Charge
	if err := json.Unmarshal([]byte(data), &charge); err != nil {
		return nil
	}

	return &charge
}

func (s *BillingService) setCachedCharge(ctx context.Context, charge *domain.Charge) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(charge)
	if err != nil {
		return
	}

	if err := s.redis.Set(ctx, chargeCacheKey(charge.ChargeID), data, chargeCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache charge %s: %v", charge.ChargeID, err)
	}
}

func (s *BillingService) invalidateChargeCache(ctx context.Context, chargeID string) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(ctx, chargeCacheKey(chargeID)).Err(); err != nil {
		log.Printf("Failed to invalidate cache for charge %s: %v", chargeID, err)
	}
}
