package user

import (
	"context"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// ByEmailSpecification matches the user holding a normalized address.
type ByEmailSpecification struct {
	Email string
}

func (spec ByEmailSpecification) IsSatisfiedBy(ctx context.Context, u *User) bool {
	return u.Email().Value() == spec.Email
}

func NewByEmailSpecification(email string) shared.Specification[*User] {
	return ByEmailSpecification{Email: email}
}
