package shared

import "context"

// UnitOfWork manages the transaction boundary of one workflow operation
// and collects domain events from the aggregates touched inside it.
// Execute commits everything or nothing: a failed wallet debit must
// leave the order status untouched.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	RegisterNew(aggregate AggregateRoot)
	RegisterDirty(aggregate AggregateRoot)
}

// UnitOfWorkFactory builds a fresh UnitOfWork per operation, so
// concurrent requests never share event-collection state.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}

// OutboxRepository stores domain events transactionally alongside the
// business data they describe.
type OutboxRepository interface {
	SaveEvent(ctx context.Context, event DomainEvent) error
}
