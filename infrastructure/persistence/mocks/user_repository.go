package mocks

import (
	"context"
	"sync"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
)

// MockUserRepository In-memory implementation of the user repository.
type MockUserRepository struct {
	users  map[int]*user.User
	nextID int
	mu     sync.RWMutex
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[int]*user.User),
		nextID: 1,
	}
}

func (r *MockUserRepository) Save(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.IsNew() {
		for _, existing := range r.users {
			if existing.Email().Value() == u.Email().Value() {
				return user.NewEmailAlreadyExistsError(u.Email().Value())
			}
		}
		u.AssignID(r.nextID)
		r.nextID++
	} else {
		existing, exists := r.users[u.ID()]
		if !exists {
			return user.NewUserNotFoundError(u.ID())
		}
		if existing != u && existing.Version() != u.Version() {
			return user.NewConcurrentModificationError(u.ID())
		}
	}

	r.users[u.ID()] = u
	u.MarkPersisted()
	return nil
}

func (r *MockUserRepository) FindByID(ctx context.Context, id int) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, user.NewUserNotFoundError(id)
	}
	return u, nil
}

func (r *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec := user.NewByEmailSpecification(email)
	for _, u := range r.users {
		if spec.IsSatisfiedBy(ctx, u) {
			return u, nil
		}
	}
	return nil, nil
}

var _ user.Repository = (*MockUserRepository)(nil)
