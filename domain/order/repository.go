package order

import (
	"context"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// Repository persists the order aggregate.
type Repository interface {
	// Save inserts the order when it is new, otherwise updates it with
	// an optimistic-lock check on the version column. Events are
	// collected by the unit of work, not persisted here.
	Save(ctx context.Context, o *Order) error

	// FindByID loads an order and its line items.
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByUserID loads all orders belonging to a user.
	FindByUserID(ctx context.Context, userID int) ([]*Order, error)

	// FindBySpecification loads the orders matching a composed
	// specification. The MySQL implementation translates known
	// specifications to SQL and falls back to in-memory filtering.
	FindBySpecification(ctx context.Context, spec shared.Specification[*Order]) ([]*Order, error)
}
