package utils

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates (due dates, as-of dates).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// TruncateToDay strips the time-of-day component, keeping the calendar date
// in UTC. Comparisons between truncated dates are pure calendar-day
// comparisons.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysOverdue counts full days the asOf date is past the due date. Both
// inputs are truncated to midnight first; a partial day already counts as
// one full overdue day, so the raw difference is rounded up. Returns 0 when
// asOf is on or before the due date.
func DaysOverdue(dueDate, asOf time.Time) int {
	due := TruncateToDay(dueDate)
	at := TruncateToDay(asOf)

	if !at.After(due) {
		return 0
	}

	return int(math.Ceil(at.Sub(due).Hours() / 24))
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
