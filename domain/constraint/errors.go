package constraint

import (
	"errors"
	"fmt"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// ErrConstraintNotFound marks a constraint id that resolves to nothing.
var ErrConstraintNotFound = errors.New("constraint not found")

// NewConstraintNotFoundError builds the lookup failure carrying the id.
func NewConstraintNotFoundError(id int) error {
	return &constraintError{
		sentinel: ErrConstraintNotFound,
		message:  fmt.Sprintf("constraint %d not found", id),
		stack:    shared.CaptureStack(3),
	}
}

type constraintError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *constraintError) Error() string { return e.message }

func (e *constraintError) Unwrap() error { return e.sentinel }

// Stack implements shared.Stacker.
func (e *constraintError) Stack() []string { return shared.FormatStack(e.stack) }
