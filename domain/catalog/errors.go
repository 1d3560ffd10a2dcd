package catalog

import (
	"errors"
	"fmt"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

var (
	// ErrMealNotFound marks a meal id that resolves to nothing.
	ErrMealNotFound = errors.New("meal not found")

	// ErrMenuNotFound marks a menu id that resolves to nothing.
	ErrMenuNotFound = errors.New("menu not found")

	// ErrNotAvailableForThisWeek marks an item whose availability
	// windows exclude the requested (week, day) slot.
	ErrNotAvailableForThisWeek = errors.New("not available for this week")
)

// NewMealNotFoundError builds a meal lookup failure carrying the id.
func NewMealNotFoundError(id int) error {
	return &catalogError{
		sentinel: ErrMealNotFound,
		message:  fmt.Sprintf("meal %d not found", id),
		stack:    shared.CaptureStack(3),
	}
}

// NewMenuNotFoundError builds a menu lookup failure carrying the id.
func NewMenuNotFoundError(id int) error {
	return &catalogError{
		sentinel: ErrMenuNotFound,
		message:  fmt.Sprintf("menu %d not found", id),
		stack:    shared.CaptureStack(3),
	}
}

// NotAvailableError reports which item failed the availability check
// and for which slot. It satisfies errors.Is(err, ErrNotAvailableForThisWeek).
type NotAvailableError struct {
	ItemKind string // "meal" or "menu"
	ItemID   int
	Week     int
	Day      int
	stack    []uintptr
}

// NewNotAvailableError builds the availability failure for one item.
func NewNotAvailableError(itemKind string, itemID, week, day int) error {
	return &NotAvailableError{
		ItemKind: itemKind,
		ItemID:   itemID,
		Week:     week,
		Day:      day,
		stack:    shared.CaptureStack(3),
	}
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("%s %d is not available for week %d day %d", e.ItemKind, e.ItemID, e.Week, e.Day)
}

func (e *NotAvailableError) Unwrap() error { return ErrNotAvailableForThisWeek }

// Stack implements shared.Stacker.
func (e *NotAvailableError) Stack() []string { return shared.FormatStack(e.stack) }

type catalogError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *catalogError) Error() string { return e.message }

func (e *catalogError) Unwrap() error { return e.sentinel }

// Stack implements shared.Stacker.
func (e *catalogError) Stack() []string { return shared.FormatStack(e.stack) }
