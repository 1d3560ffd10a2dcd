package order

import (
	"context"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// ByUserIDSpecification matches orders belonging to one user.
type ByUserIDSpecification struct {
	UserID int
}

func (spec ByUserIDSpecification) IsSatisfiedBy(ctx context.Context, o *Order) bool {
	return o.UserID() == spec.UserID
}

// ByStatusSpecification matches orders in one lifecycle state.
type ByStatusSpecification struct {
	Status Status
}

func (spec ByStatusSpecification) IsSatisfiedBy(ctx context.Context, o *Order) bool {
	return o.Status() == spec.Status
}

// ByDateRangeSpecification matches orders created inside [Start, End].
// A zero bound is ignored.
type ByDateRangeSpecification struct {
	Start time.Time
	End   time.Time
}

func (spec ByDateRangeSpecification) IsSatisfiedBy(ctx context.Context, o *Order) bool {
	createdAt := o.CreatedAt()
	if !spec.Start.IsZero() && createdAt.Before(spec.Start) {
		return false
	}
	if !spec.End.IsZero() && createdAt.After(spec.End) {
		return false
	}
	return true
}

func NewByUserIDSpecification(userID int) shared.Specification[*Order] {
	return ByUserIDSpecification{UserID: userID}
}

func NewByStatusSpecification(status Status) shared.Specification[*Order] {
	return ByStatusSpecification{Status: status}
}

func NewByDateRangeSpecification(start, end time.Time) shared.Specification[*Order] {
	return ByDateRangeSpecification{Start: start, End: end}
}
