package user

import "context"

// Repository persists the user aggregate.
type Repository interface {
	// Save inserts the user when it is new, otherwise updates it with
	// an optimistic-lock check on the version column.
	Save(ctx context.Context, u *User) error

	// FindByID loads a user by its numeric id.
	FindByID(ctx context.Context, id int) (*User, error)

	// FindByEmail loads a user by its normalized address. Registration
	// uses it to enforce the uniqueness constraint.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
