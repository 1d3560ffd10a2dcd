package mocks

import (
	"context"
	"sync"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// MockOrderRepository In-memory implementation of the order repository
// DDD principle: Repository is only responsible for persistence of aggregate roots, not event publishing
type MockOrderRepository struct {
	orders map[string]*order.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository Create mock order repository. It starts empty;
// tests seed aggregates through Save.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]*order.Order),
	}
}

func (r *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Optimistic locking check for existing orders
	if !o.IsNew() {
		existing, exists := r.orders[o.ID()]
		if exists && existing != o && existing.Version() != o.Version() {
			return order.NewConcurrentModificationError(o.ID())
		}
	}

	r.orders[o.ID()] = o
	o.MarkPersisted()

	// Note: Do not publish events in repository!
	// Events are collected by the UoW and relayed through the outbox.
	return nil
}

func (r *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.orders[id]
	if !exists {
		return nil, order.NewOrderNotFoundError(id)
	}
	return o, nil
}

func (r *MockOrderRepository) FindByUserID(ctx context.Context, userID int) ([]*order.Order, error) {
	return r.FindBySpecification(ctx, order.ByUserIDSpecification{UserID: userID})
}

func (r *MockOrderRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*order.Order]) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*order.Order
	for _, o := range r.orders {
		if spec == nil || spec.IsSatisfiedBy(ctx, o) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

var _ order.Repository = (*MockOrderRepository)(nil)
