package mocks

import (
	"context"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// MockUnitOfWork is an in-memory UnitOfWork for tests. It has no real
// transaction; it still collects events so tests can assert on them.
type MockUnitOfWork struct {
	aggregates []shared.AggregateRoot
	Collected  []shared.DomainEvent
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		aggregates: make([]shared.AggregateRoot, 0),
	}
}

// Execute runs the business logic and, on success, pulls events from
// the registered aggregates into Collected.
func (u *MockUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.aggregates = make([]shared.AggregateRoot, 0)

	if err := fn(ctx); err != nil {
		return err
	}

	for _, agg := range u.aggregates {
		u.Collected = append(u.Collected, agg.PullEvents()...)
	}
	return nil
}

// RegisterNew registers a newly created aggregate root for event collection
func (u *MockUnitOfWork) RegisterNew(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

// RegisterDirty registers a modified aggregate root for event collection
func (u *MockUnitOfWork) RegisterDirty(aggregate shared.AggregateRoot) {
	u.aggregates = append(u.aggregates, aggregate)
}

// Compile-time check that MockUnitOfWork implements shared.UnitOfWork
var _ shared.UnitOfWork = (*MockUnitOfWork)(nil)
