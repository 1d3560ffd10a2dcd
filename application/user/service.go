// Package user exposes the wallet-owner collaborator surface the
// ordering workflow needs: registration, lookup and wallet credit.
// Debits happen only inside the order delivery transaction.
package user

import (
	"context"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
)

// ApplicationService coordinates user registration and wallet credits.
type ApplicationService struct {
	userRepo user.Repository
	uow      shared.UnitOfWork
}

func NewApplicationService(userRepo user.Repository, uow shared.UnitOfWork) *ApplicationService {
	return &ApplicationService{
		userRepo: userRepo,
		uow:      uow,
	}
}

// RegisterUserRequest is the registration input.
type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Sex   uint8  `json:"sex"`
}

// CreditWalletRequest tops up a wallet. Amount is a fixed-point string.
type CreditWalletRequest struct {
	UserID int    `json:"user_id" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// UserResponse is the serializable user snapshot.
type UserResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Sex       string    `json:"sex"`
	Wallet    string    `json:"wallet"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Register creates a user with an empty wallet. The e-mail address
// must not already be taken.
func (s *ApplicationService) Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error) {
	var u *user.User

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		u, err = user.NewUser(req.Name, req.Email, user.SexFromWire(int(req.Sex)))
		if err != nil {
			return err
		}

		// Race on the address is closed by the unique index; the
		// repository maps the duplicate-key error to the same failure.
		if existing, _ := s.userRepo.FindByEmail(ctx, u.Email().Value()); existing != nil {
			return user.NewEmailAlreadyExistsError(u.Email().Value())
		}

		if err := s.userRepo.Save(ctx, u); err != nil {
			return err
		}
		s.uow.RegisterNew(u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toUserResponse(u), nil
}

// GetUser returns one user snapshot.
func (s *ApplicationService) GetUser(ctx context.Context, userID int) (*UserResponse, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Credit adds a positive amount to the user's wallet.
func (s *ApplicationService) Credit(ctx context.Context, req CreditWalletRequest) (*UserResponse, error) {
	amount, err := shared.NewMoneyFromString(req.Amount)
	if err != nil {
		return nil, err
	}

	var u *user.User
	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		u, err = s.userRepo.FindByID(ctx, req.UserID)
		if err != nil {
			return err
		}
		if err = u.Credit(amount); err != nil {
			return err
		}
		if err = s.userRepo.Save(ctx, u); err != nil {
			return err
		}
		s.uow.RegisterDirty(u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toUserResponse(u), nil
}

func toUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		Sex:       u.Sex().String(),
		Wallet:    u.Wallet().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
