package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrChargeNotFound        = errors.New("charge not found")
	ErrChargeAlreadyExists   = errors.New("charge already exists")
	ErrChargeAlreadyPaid     = errors.New("charge is already paid")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidRate           = errors.New("rates must be in [0, 1) and grace period non-negative")
	ErrInvalidDate           = errors.New("invalid date")
	ErrPaymentAmountMismatch = errors.New("payment amount must match the invoice total exactly")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeChargeNotFound        = "CHARGE_NOT_FOUND"
	ErrCodeChargeAlreadyExists   = "CHARGE_ALREADY_EXISTS"
	ErrCodeChargeAlreadyPaid     = "CHARGE_ALREADY_PAID"
	ErrCodeInvalidAmount         = "INVALID_AMOUNT"
	ErrCodeInvalidRate           = "INVALID_RATE"
	ErrCodeInvalidDate           = "INVALID_DATE"
	ErrCodePaymentAmountMismatch = "PAYMENT_AMOUNT_MISMATCH"
	ErrCodeDatabaseError         = "DATABASE_ERROR"
	ErrCodeCacheError            = "CACHE_ERROR"
)

// Wrap common errors with business context

func WrapChargeNotFound(chargeID string) *BusinessError {
	return NewBusinessError(
		ErrCodeChargeNotFound,
		fmt.Sprintf("Charge with ID %s not found", chargeID),
		ErrChargeNotFound,
	)
}

func WrapChargeAlreadyExists(chargeID string) *BusinessError {
	return NewBusinessError(
		ErrCodeChargeAlreadyExists,
		fmt.Sprintf("Charge with ID %s already exists", chargeID),
		ErrChargeAlreadyExists,
	)
}

func WrapChargeAlreadyPaid(chargeID string) *BusinessError {
	return NewBusinessError(
		ErrCodeChargeAlreadyPaid,
		fmt.Sprintf("Charge with ID %s is already paid", chargeID),
		ErrChargeAlreadyPaid,
	)
}

func WrapInvalidAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidAmount,
		fmt.Sprintf("Invalid amount: %s", amount),
		ErrInvalidAmount,
	)
}

func WrapInvalidRate(detail string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidRate,
		fmt.Sprintf("Invalid financial parameters: %s", detail),
		ErrInvalidRate,
	)
}

func WrapInvalidDate(detail string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDate,
		fmt.Sprintf("Invalid date: %s", detail),
		ErrInvalidDate,
	)
}

func WrapPaymentAmountMismatch(expected, actual string) *BusinessError {
	return NewBusinessError(
		ErrCodePaymentAmountMismatch,
		fmt.Sprintf("Payment amount %s does not match invoice total %s", actual, expected),
		ErrPaymentAmountMismatch,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
