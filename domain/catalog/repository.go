package catalog

import "context"

// Repository is the lookup surface the order subsystem consumes. The
// catalog is maintained elsewhere; here it is resolved and browsed.
type Repository interface {
	// FindMealByID resolves a meal. Returns ErrMealNotFound when absent.
	FindMealByID(ctx context.Context, id int) (*Meal, error)

	// FindMenuByID resolves a menu. Returns ErrMenuNotFound when absent.
	FindMenuByID(ctx context.Context, id int) (*Menu, error)

	// FindMealsAvailableFor lists meals orderable on (week, day).
	// Pass AnyDay as day for a week-wide listing.
	FindMealsAvailableFor(ctx context.Context, week, day int) ([]*Meal, error)

	// FindMenusAvailableFor lists menus orderable on (week, day).
	FindMenusAvailableFor(ctx context.Context, week, day int) ([]*Menu, error)

	// SaveMeal persists a meal (seeding and fixtures).
	SaveMeal(ctx context.Context, meal *Meal) error

	// SaveMenu persists a menu (seeding and fixtures).
	SaveMenu(ctx context.Context, menu *Menu) error
}
