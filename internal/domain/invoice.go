package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialParameters holds the configurable rates used to value a charge.
// Rates are fractions (0.10 = 10%). GracePeriodDays shifts the overdue
// boundary; 0 means penalties start the day after the due date.
type FinancialParameters struct {
	DiscountRate        decimal.Decimal `json:"discount_rate"`
	FineRate            decimal.Decimal `json:"fine_rate"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	GracePeriodDays     int             `json:"grace_period_days"`
}

// InvoiceDetail is the itemized result of valuing a charge as of a given
// date. Exactly one of Discount or Fine+Interest is non-zero: the early
// payment discount is lost entirely once the charge is overdue.
type InvoiceDetail struct {
	OriginalValue decimal.Decimal `json:"original_value"`
	DueDate       time.Time       `json:"due_date"`
	Discount      decimal.Decimal `json:"discount"`
	Fine          decimal.Decimal `json:"fine"`
	Interest      decimal.Decimal `json:"interest"`
	TotalValue    decimal.Decimal `json:"total_value"`
	DaysOverdue   int             `json:"days_overdue"`
	IsOverdue     bool            `json:"is_overdue"`
}
