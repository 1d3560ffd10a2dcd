package user

import (
	"errors"
	"fmt"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

var (
	// ErrUserNotFound marks a user id that resolves to nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrLackOfMoney marks a wallet balance insufficient for a debit.
	ErrLackOfMoney = errors.New("lack of money")

	// ErrEmailAlreadyExists marks a registration with a taken address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail marks a malformed e-mail address.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrConcurrentModification marks an optimistic-lock conflict;
	// the unit of work retries the transaction.
	ErrConcurrentModification = errors.New("user was modified by another transaction, please retry")
)

// NewUserNotFoundError builds a lookup failure carrying the id.
func NewUserNotFoundError(id int) error {
	return &userError{
		sentinel: ErrUserNotFound,
		message:  fmt.Sprintf("user %d not found", id),
		stack:    shared.CaptureStack(3),
	}
}

// LackOfMoneyError reports an insufficient wallet balance at delivery.
type LackOfMoneyError struct {
	UserID  int
	Balance shared.Money
	Needed  shared.Money
	stack   []uintptr
}

// NewLackOfMoneyError builds the insufficient-balance failure.
func NewLackOfMoneyError(userID int, balance, needed shared.Money) error {
	return &LackOfMoneyError{
		UserID:  userID,
		Balance: balance,
		Needed:  needed,
		stack:   shared.CaptureStack(3),
	}
}

func (e *LackOfMoneyError) Error() string {
	return fmt.Sprintf("user %d wallet %s cannot cover %s", e.UserID, e.Balance, e.Needed)
}

func (e *LackOfMoneyError) Unwrap() error { return ErrLackOfMoney }

// Stack implements shared.Stacker.
func (e *LackOfMoneyError) Stack() []string { return shared.FormatStack(e.stack) }

// NewEmailAlreadyExistsError builds the uniqueness violation.
func NewEmailAlreadyExistsError(email string) error {
	return &userError{
		sentinel: ErrEmailAlreadyExists,
		message:  fmt.Sprintf("email %s already exists", email),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidEmailError builds the malformed-address failure.
func NewInvalidEmailError(email string) error {
	return &userError{
		sentinel: ErrInvalidEmail,
		message:  fmt.Sprintf("invalid email address %q", email),
		stack:    shared.CaptureStack(3),
	}
}

// NewConcurrentModificationError builds the optimistic-lock conflict.
func NewConcurrentModificationError(id int) error {
	return &userError{
		sentinel: ErrConcurrentModification,
		message:  fmt.Sprintf("user %d was modified by another transaction, please retry", id),
		stack:    shared.CaptureStack(3),
	}
}

type userError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *userError) Error() string { return e.message }

func (e *userError) Unwrap() error { return e.sentinel }

// Stack implements shared.Stacker.
func (e *userError) Stack() []string { return shared.FormatStack(e.stack) }
