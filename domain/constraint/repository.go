package constraint

import "context"

// Repository persists constraint records. FindByID must never be
// called with NoConstraintID; callers bypass the lookup entirely for
// the sentinel.
type Repository interface {
	// FindByID resolves a record. Returns ErrConstraintNotFound when absent.
	FindByID(ctx context.Context, id int) (*Constraint, error)

	// Save persists a record, assigning the id on first save.
	Save(ctx context.Context, c *Constraint) error
}
