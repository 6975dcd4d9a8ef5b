package valuation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imovelhub/rent-billing/internal/domain"
	customError "github.com/imovelhub/rent-billing/pkg/errors"
)

func defaultParams() domain.FinancialParameters {
	return domain.FinancialParameters{
		DiscountRate:        decimal.NewFromFloat(0.10),
		FineRate:            decimal.NewFromFloat(0.02),
		MonthlyInterestRate: decimal.NewFromFloat(0.01),
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name           string
		originalValue  decimal.Decimal
		dueDate        time.Time
		params         domain.FinancialParameters
		evaluationDate time.Time
		validateResult func(*testing.T, *domain.InvoiceDetail)
	}{
		{
			name:           "On time - five days before due date",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        date("2023-11-10"),
			params:         defaultParams(),
			evaluationDate: date("2023-11-05"),
			validateResult: func(t *testing.T, invoice *domain.InvoiceDetail) {
				assert.False(t, invoice.IsOverdue)
				assert.Equal(t, 0, invoice.DaysOverdue)
				assert.True(t, invoice.Discount.Equal(decimal.NewFromInt(500)))
				assert.True(t, invoice.Fine.IsZero())
				assert.True(t, invoice.Interest.IsZero())
				assert.True(t, invoice.TotalValue.Equal(decimal.NewFromInt(4500)))
			},
		},
		{
			name:           "Boundary - evaluated exactly on due date is still on time",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        date("2023-11-10"),
			params:         defaultParams(),
			evaluationDate: date("2023-11-10"),
			validateResult: func(t *testing.T, invoice *domain.InvoiceDetail) {
				assert.False(t, invoice.IsOverdue)
				assert.True(t, invoice.TotalValue.Equal(decimal.NewFromInt(4500)))
			},
		},
		{
			name:           "Overdue - one day late",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        date("2023-11-10"),
			params:         defaultParams(),
			evaluationDate: date("2023-11-11"),
			validateResult: func(t *testing.T, invoice *domain.InvoiceDetail) {
				assert.True(t, invoice.IsOverdue)
				assert.Equal(t, 1, invoice.DaysOverdue)
				assert.True(t, invoice.Discount.IsZero())
				assert.True(t, invoice.Fine.Equal(decimal.NewFromInt(100)))
				// 5000 * (0.01 / 30) * 1
				assert.True(t, invoice.Interest.Round(2).Equal(decimal.NewFromFloat(1.67)))
				assert.True(t, invoice.TotalValue.Round(2).Equal(decimal.NewFromFloat(5101.67)))
			},
		},
		{
			name:           "Overdue - thirty days late accrues one full month of interest",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        date("2023-11-10"),
			params:         defaultParams(),
			evaluationDate: date("2023-12-10"),
			validateResult: func(t *testing.T, invoice *domain.InvoiceDetail) {
				assert.True(t, invoice.IsOverdue)
				assert.Equal(t, 30, invoice.DaysOverdue)
				assert.True(t, invoice.Fine.Equal(decimal.NewFromInt(100)))
				assert.True(t, invoice.Interest.Round(2).Equal(decimal.NewFromInt(50)))
				assert.True(t, invoice.TotalValue.Round(2).Equal(decimal.NewFromInt(5150)))
			},
		},
		{
			name:          "Zero rates - total equals original value even when long overdue",
			originalValue: decimal.NewFromInt(1000),
			dueDate:       date("2023-01-01"),
			params: domain.FinancialParameters{
				DiscountRate:        decimal.Zero,
				FineRate:            decimal.Zero,
				MonthlyInterestRate: decimal.Zero,
			},
			evaluationDate: date("2023-06-01"),
			validateResult: func(t *testing.T, invoice *domain.InvoiceDetail) {
				assert.True(t, invoice.IsOverdue)
				assert.True(t, invoice.TotalValue.Equal(decimal.NewFromInt(1000)))
			},
		},
		{
			name:           "Time of day is ignored - late evening due date, early morning evaluation",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        time.Date(2023, 11, 10, 23, 59, 0, 0, time.UTC),
			params:         defaultParams(),
			evaluationDate: time.Date(2023, 11, 11, 0, 1, 0, 0, time.UTC),
			validateResult: func(t *testing.T, invoice *domain.InvoiceDetail) {
				assert.True(t, invoice.IsOverdue)
				assert.Equal(t, 1, invoice.DaysOverdue)
			},
		},
		{
			name:           "Time of day is ignored - same calendar day is on time",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        time.Date(2023, 11, 10, 8, 0, 0, 0, time.UTC),
			params:         defaultParams(),
			evaluationDate: time.Date(2023, 11, 10, 22, 30, 0, 0, time.UTC),
			validateResult: func(t *testing.T, invoice *domain.InvoiceDetail) {
				assert.False(t, invoice.IsOverdue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice, err := Evaluate(tt.originalValue, tt.dueDate, tt.params, tt.evaluationDate)

			require.NoError(t, err)
			require.NotNil(t, invoice)
			assert.True(t, invoice.OriginalValue.Equal(tt.originalValue))
			tt.validateResult(t, invoice)
		})
	}
}

func TestEvaluateGracePeriod(t *testing.T) {
	params := defaultParams()
	params.GracePeriodDays = 5

	t.Run("within grace period is still on time", func(t *testing.T) {
		invoice, err := Evaluate(decimal.NewFromInt(5000), date("2023-11-10"), params, date("2023-11-15"))

		require.NoError(t, err)
		assert.False(t, invoice.IsOverdue)
		assert.True(t, invoice.TotalValue.Equal(decimal.NewFromInt(4500)))
	})

	t.Run("first day past grace period is one day overdue", func(t *testing.T) {
		invoice, err := Evaluate(decimal.NewFromInt(5000), date("2023-11-10"), params, date("2023-11-16"))

		require.NoError(t, err)
		assert.True(t, invoice.IsOverdue)
		assert.Equal(t, 1, invoice.DaysOverdue)
	})
}

// Each extra overdue day must strictly increase the total: simple interest
// adds the same increment per day and never compounds.
func TestEvaluateDayCountMonotonicity(t *testing.T) {
	params := defaultParams()
	dueDate := date("2023-11-10")
	previous := decimal.Zero

	for days := 1; days <= 60; days++ {
		invoice, err := Evaluate(decimal.NewFromInt(5000), dueDate, params, dueDate.AddDate(0, 0, days))

		require.NoError(t, err)
		assert.Equal(t, days, invoice.DaysOverdue)
		assert.True(t, invoice.TotalValue.GreaterThan(previous),
			"total at %d days (%s) should exceed total at %d days (%s)",
			days, invoice.TotalValue, days-1, previous)
		previous = invoice.TotalValue
	}
}

// The discount and the penalty bundle are mutually exclusive: an invoice
// never carries both.
func TestEvaluateDiscountPenaltyExclusivity(t *testing.T) {
	params := defaultParams()
	dueDate := date("2023-11-10")

	for offset := -10; offset <= 10; offset++ {
		invoice, err := Evaluate(decimal.NewFromInt(5000), dueDate, params, dueDate.AddDate(0, 0, offset))
		require.NoError(t, err)

		if invoice.IsOverdue {
			assert.True(t, invoice.Discount.IsZero())
		} else {
			assert.True(t, invoice.Fine.IsZero())
			assert.True(t, invoice.Interest.IsZero())
			assert.Equal(t, 0, invoice.DaysOverdue)
		}
	}
}

// Itemized fields must sum to the total exactly: no intermediate rounding
// inside the engine.
func TestEvaluateItemsSumToTotal(t *testing.T) {
	params := defaultParams()
	dueDate := date("2023-11-10")

	overdue, err := Evaluate(decimal.NewFromFloat(1234.56), dueDate, params, date("2023-11-23"))
	require.NoError(t, err)
	sum := overdue.OriginalValue.Add(overdue.Fine).Add(overdue.Interest)
	assert.True(t, overdue.TotalValue.Equal(sum))

	onTime, err := Evaluate(decimal.NewFromFloat(1234.56), dueDate, params, date("2023-11-01"))
	require.NoError(t, err)
	assert.True(t, onTime.TotalValue.Equal(onTime.OriginalValue.Sub(onTime.Discount)))
}

func TestEvaluateValidation(t *testing.T) {
	tests := []struct {
		name           string
		originalValue  decimal.Decimal
		dueDate        time.Time
		params         domain.FinancialParameters
		evaluationDate time.Time
		expectedErr    error
	}{
		{
			name:           "zero amount",
			originalValue:  decimal.Zero,
			dueDate:        date("2023-11-10"),
			params:         defaultParams(),
			evaluationDate: date("2023-11-05"),
			expectedErr:    customError.ErrInvalidAmount,
		},
		{
			name:           "negative amount",
			originalValue:  decimal.NewFromInt(-100),
			dueDate:        date("2023-11-10"),
			params:         defaultParams(),
			evaluationDate: date("2023-11-05"),
			expectedErr:    customError.ErrInvalidAmount,
		},
		{
			name:          "negative rate",
			originalValue: decimal.NewFromInt(5000),
			dueDate:       date("2023-11-10"),
			params: domain.FinancialParameters{
				DiscountRate: decimal.NewFromFloat(-0.10),
			},
			evaluationDate: date("2023-11-05"),
			expectedErr:    customError.ErrInvalidRate,
		},
		{
			name:          "rate of one or more",
			originalValue: decimal.NewFromInt(5000),
			dueDate:       date("2023-11-10"),
			params: domain.FinancialParameters{
				FineRate: decimal.NewFromInt(1),
			},
			evaluationDate: date("2023-11-05"),
			expectedErr:    customError.ErrInvalidRate,
		},
		{
			name:          "negative grace period",
			originalValue: decimal.NewFromInt(5000),
			dueDate:       date("2023-11-10"),
			params: domain.FinancialParameters{
				GracePeriodDays: -1,
			},
			evaluationDate: date("2023-11-05"),
			expectedErr:    customError.ErrInvalidRate,
		},
		{
			name:           "zero due date",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        time.Time{},
			params:         defaultParams(),
			evaluationDate: date("2023-11-05"),
			expectedErr:    customError.ErrInvalidDate,
		},
		{
			name:           "zero evaluation date",
			originalValue:  decimal.NewFromInt(5000),
			dueDate:        date("2023-11-10"),
			params:         defaultParams(),
			evaluationDate: time.Time{},
			expectedErr:    customError.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice, err := Evaluate(tt.originalValue, tt.dueDate, tt.params, tt.evaluationDate)

			assert.Nil(t, invoice)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
