/*
Package errors defines the application error codes surfaced on the API
and the mapping from domain errors to those codes.

Domain packages raise sentinel-wrapped errors; this package classifies
them with errors.Is so the transport layer never inspects error strings.
*/
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
)

// ErrorCode identifies a class of failure on the wire.
type ErrorCode string

const (
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"

	// Business error codes.
	CodeParameter        ErrorCode = "PARAMETER_ERROR"
	CodeEntityNotFound   ErrorCode = "ENTITY_NOT_FOUND"
	CodeNotAvailable     ErrorCode = "NOT_AVAILABLE_FOR_THIS_WEEK"
	CodeTimeOut          ErrorCode = "TIME_OUT"
	CodeOrderCanceled    ErrorCode = "ORDER_CANCELED"
	CodeOrderDelivered   ErrorCode = "ORDER_DELIVERED"
	CodeLackOfMoney      ErrorCode = "LACK_OF_MONEY"
	CodeEmailExists      ErrorCode = "EMAIL_EXISTS"
	CodeConcurrentModify ErrorCode = "CONCURRENT_MODIFICATION"
)

// AppError is the classified form of a domain error.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an application error without an underlying cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap classifies an existing error under a code.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func Parameter(message string) *AppError {
	return New(CodeParameter, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

// Is reports whether err classifies under the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// sentinelCodes maps each domain sentinel to its wire code. Ordering
// matters: specific sentinels come before the generic shared ones so a
// wrapped error lands on the narrowest class.
var sentinelCodes = []struct {
	sentinel error
	code     ErrorCode
}{
	{user.ErrLackOfMoney, CodeLackOfMoney},
	{order.ErrTimeOut, CodeTimeOut},
	{order.ErrOrderCanceled, CodeOrderCanceled},
	{order.ErrOrderDelivered, CodeOrderDelivered},
	{catalog.ErrNotAvailableForThisWeek, CodeNotAvailable},
	{user.ErrEmailAlreadyExists, CodeEmailExists},
	{user.ErrInvalidEmail, CodeParameter},
	{order.ErrConcurrentModification, CodeConcurrentModify},
	{user.ErrConcurrentModification, CodeConcurrentModify},

	{user.ErrUserNotFound, CodeEntityNotFound},
	{order.ErrOrderNotFound, CodeEntityNotFound},
	{catalog.ErrMealNotFound, CodeEntityNotFound},
	{catalog.ErrMenuNotFound, CodeEntityNotFound},
	{constraint.ErrConstraintNotFound, CodeEntityNotFound},

	{shared.ErrNotFound, CodeEntityNotFound},
	{shared.ErrInvalidInput, CodeParameter},
	{shared.ErrConflict, CodeConcurrentModify},
}

// FromDomainError classifies a domain error into an AppError. Anything
// that does not match a known sentinel is treated as internal; the raw
// message is preserved for logging, never for the client.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	for _, entry := range sentinelCodes {
		if stdErrors.Is(err, entry.sentinel) {
			return Wrap(err, entry.code, err.Error())
		}
	}

	return Wrap(err, CodeInternal, err.Error())
}
