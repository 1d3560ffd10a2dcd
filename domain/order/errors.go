package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

var (
	// ErrOrderNotFound marks an order id that resolves to nothing.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderCanceled marks an operation on a canceled order.
	ErrOrderCanceled = errors.New("order is canceled")

	// ErrOrderDelivered marks an operation on a delivered order.
	ErrOrderDelivered = errors.New("order is delivered and paid")

	// ErrTimeOut marks a placement attempted at or after the daily cutoff.
	ErrTimeOut = errors.New("order time limit exceeded")

	// ErrConcurrentModification marks an optimistic-lock conflict;
	// the unit of work retries the transaction.
	ErrConcurrentModification = errors.New("order was modified by another transaction, please retry")
)

// NewOrderNotFoundError builds a lookup failure carrying the id.
func NewOrderNotFoundError(orderID string) error {
	return &orderError{
		sentinel: ErrOrderNotFound,
		message:  "order not found: " + orderID,
		stack:    shared.CaptureStack(3),
	}
}

// NewOrderAlreadyCanceledError builds the terminal-state violation for
// a canceled order.
func NewOrderAlreadyCanceledError(orderID string) error {
	return &orderError{
		sentinel: ErrOrderCanceled,
		message:  "order " + orderID + " is canceled",
		stack:    shared.CaptureStack(3),
	}
}

// NewOrderDeliveredError builds the terminal-state violation for a
// delivered order.
func NewOrderDeliveredError(orderID string) error {
	return &orderError{
		sentinel: ErrOrderDelivered,
		message:  "order " + orderID + " is already delivered and paid",
		stack:    shared.CaptureStack(3),
	}
}

// TimeOutError reports a placement at or after the daily cutoff.
type TimeOutError struct {
	At    time.Time
	Limit constraint.TimeOfDay
	stack []uintptr
}

// NewTimeOutError builds the cutoff violation carrying both instants.
func NewTimeOutError(at time.Time, limit constraint.TimeOfDay) error {
	return &TimeOutError{
		At:    at,
		Limit: limit,
		stack: shared.CaptureStack(3),
	}
}

func (e *TimeOutError) Error() string {
	return fmt.Sprintf("order placed at %s, after the daily limit %s",
		e.At.Format("15:04:05"), e.Limit)
}

func (e *TimeOutError) Unwrap() error { return ErrTimeOut }

// Stack implements shared.Stacker.
func (e *TimeOutError) Stack() []string { return shared.FormatStack(e.stack) }

// NewConcurrentModificationError builds the optimistic-lock conflict.
func NewConcurrentModificationError(orderID string) error {
	return &orderError{
		sentinel: ErrConcurrentModification,
		message:  "order " + orderID + " was modified by another transaction, please retry",
		stack:    shared.CaptureStack(3),
	}
}

type orderError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *orderError) Error() string { return e.message }

func (e *orderError) Unwrap() error { return e.sentinel }

// Stack implements shared.Stacker.
func (e *orderError) Stack() []string { return shared.FormatStack(e.stack) }
