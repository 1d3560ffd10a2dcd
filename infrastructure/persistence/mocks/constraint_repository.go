package mocks

import (
	"context"
	"sync"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
)

// MockConstraintRepository In-memory implementation of the ordering
// configuration store. It starts empty; call SeedDefault or Save.
type MockConstraintRepository struct {
	constraints map[int]*constraint.Constraint
	nextID      int
	mu          sync.RWMutex
}

func NewMockConstraintRepository() *MockConstraintRepository {
	return &MockConstraintRepository{
		constraints: make(map[int]*constraint.Constraint),
		nextID:      1,
	}
}

// SeedDefault installs the default record under id 1.
func (r *MockConstraintRepository) SeedDefault() {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := constraint.Default()
	r.constraints[c.ID()] = c
	if r.nextID <= c.ID() {
		r.nextID = c.ID() + 1
	}
}

func (r *MockConstraintRepository) FindByID(ctx context.Context, id int) (*constraint.Constraint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.constraints[id]
	if !exists {
		return nil, constraint.NewConstraintNotFoundError(id)
	}
	return c, nil
}

func (r *MockConstraintRepository) Save(ctx context.Context, c *constraint.Constraint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID() == 0 {
		c.AssignID(r.nextID)
		r.nextID++
	}
	r.constraints[c.ID()] = c
	return nil
}

var _ constraint.Repository = (*MockConstraintRepository)(nil)
