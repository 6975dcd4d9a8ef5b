// Package valuation computes how much a charge is worth on a given day:
// the nominal amount minus an early-payment discount while the charge is
// not yet overdue, or the nominal amount plus a flat fine and simple
// day-prorated interest once it is.
package valuation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imovelhub/rent-billing/internal/domain"
	customError "github.com/imovelhub/rent-billing/pkg/errors"
	"github.com/imovelhub/rent-billing/pkg/utils"
)

// Daily interest is the monthly rate spread over a flat 30-day month.
// This is intentionally not calendar-accurate: a charge 30 days late in
// February accrues the same interest as one 30 days late in January.
var daysPerMonth = decimal.NewFromInt(30)

var one = decimal.NewFromInt(1)

// Evaluate values a single charge as of evaluationDate and returns the
// itemized invoice. Both dates are compared at calendar-day granularity;
// time-of-day is discarded. A charge evaluated exactly on its due date
// (plus any grace period) is still on time, so the boundary belongs to
// the payer.
//
// The engine is stateless and pure: it never reads configuration or
// storage, and the same inputs always produce the same invoice.
func Evaluate(originalValue decimal.Decimal, dueDate time.Time, params domain.FinancialParameters, evaluationDate time.Time) (*domain.InvoiceDetail, error) {
	if err := validate(originalValue, dueDate, params, evaluationDate); err != nil {
		return nil, err
	}

	due := utils.TruncateToDay(dueDate)
	at := utils.TruncateToDay(evaluationDate)

	// Penalties start the day after the due date; a configured grace
	// period pushes that boundary out.
	penaltyBoundary := due.AddDate(0, 0, params.GracePeriodDays)

	invoice := &domain.InvoiceDetail{
		OriginalValue: originalValue,
		DueDate:       dueDate,
	}

	if !at.After(penaltyBoundary) {
		invoice.Discount = originalValue.Mul(params.DiscountRate)
		invoice.TotalValue = originalValue.Sub(invoice.Discount)
		return invoice, nil
	}

	invoice.IsOverdue = true
	invoice.DaysOverdue = utils.DaysOverdue(penaltyBoundary, at)

	// Flat one-time fine plus simple (non-compounding) interest: each
	// overdue day adds the same increment. Intermediate values are kept
	// unrounded so the itemized fields always sum to the total exactly;
	// rounding for display is the caller's concern.
	dailyRate := params.MonthlyInterestRate.Div(daysPerMonth)
	invoice.Fine = originalValue.Mul(params.FineRate)
	invoice.Interest = originalValue.Mul(dailyRate).Mul(decimal.NewFromInt(int64(invoice.DaysOverdue)))
	invoice.TotalValue = originalValue.Add(invoice.Fine).Add(invoice.Interest)

	return invoice, nil
}

func validate(originalValue decimal.Decimal, dueDate time.Time, params domain.FinancialParameters, evaluationDate time.Time) error {
	if dueDate.IsZero() {
		return customError.WrapInvalidDate("due date is required")
	}
	if evaluationDate.IsZero() {
		return customError.WrapInvalidDate("evaluation date is required")
	}

	if !originalValue.IsPositive() {
		return customError.WrapInvalidAmount(originalValue.String())
	}

	for _, rate := range []decimal.Decimal{params.DiscountRate, params.FineRate, params.MonthlyInterestRate} {
		if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
			return customError.WrapInvalidRate("rates must be fractions in [0, 1)")
		}
	}

	if params.GracePeriodDays < 0 {
		return customError.WrapInvalidRate("grace period must not be negative")
	}

	return nil
}
