/*
Package shared holds the building blocks common to every subdomain:
clock and money value objects, aggregate/event contracts, the unit of
work boundary, and the error model below.

Error model:
 1. Sentinel errors support errors.Is() classification without carrying
    request-specific detail.
 2. DomainError captures the stack at creation time and formats it
    lazily, so logs can point at the raising site without paying the
    formatting cost on the happy path.
 3. Domain errors carry no transport concepts; HTTP mapping lives in
    the API layer.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors for errors.Is() classification.
var (
	// ErrNotFound marks a missing referenced entity (order, user, meal,
	// menu, constraint).
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks malformed or missing required input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict marks concurrent modification or uniqueness violations.
	ErrConflict = errors.New("conflict")
)

// DomainError is a structured error carrying business context and the
// stack of its creation site. It supports errors.Is/As via Unwrap.
type DomainError struct {
	// Err is the underlying sentinel used by errors.Is().
	Err error

	// Entity names the aggregate the error relates to ("order", "meal").
	Entity string

	// Message is the human-readable description surfaced to callers.
	Message string

	// Field optionally names the offending input field.
	Field string

	stack []uintptr
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Err }

// Stack formats the captured frames on demand (log time only).
func (e *DomainError) Stack() []string { return FormatStack(e.stack) }

// Stacker is implemented by errors that carry a creation-site stack.
// The API layer uses it to enrich error logs.
type Stacker interface {
	Stack() []string
}

// CaptureStack records the current call stack. skip is the number of
// frames to drop (typically 3: Callers, CaptureStack, the constructor).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders captured frames, filtering runtime internals.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewNotFoundError builds an entity-not-found error carrying the
// looked-up identifier for diagnostics.
func NewNotFoundError(entity string, id any) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("%s %v not found", entity, id),
		stack:   CaptureStack(3),
	}
}

// NewValidationError builds a parameter error naming the offending field.
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewConflictError builds a conflict error.
func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}
