package user

import (
	"context"
	"errors"
	"testing"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mocks"
)

func newUserService() (*ApplicationService, *mocks.MockUnitOfWork) {
	uow := mocks.NewMockUnitOfWork()
	return NewApplicationService(mocks.NewMockUserRepository(), uow), uow
}

func TestRegisterAssignsIDAndEmptyWallet(t *testing.T) {
	svc, uow := newUserService()

	resp, err := svc.Register(context.Background(), RegisterUserRequest{
		Name:  "Alice Martin",
		Email: "Alice@Example.com",
		Sex:   uint8(user.SexWoman.Wire()),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.ID == 0 {
		t.Error("no id assigned")
	}
	if resp.Email != "alice@example.com" {
		t.Errorf("email = %s, want normalized alice@example.com", resp.Email)
	}
	if resp.Wallet != "0.00" {
		t.Errorf("wallet = %s, want 0.00", resp.Wallet)
	}
	if resp.Sex != "WOMAN" {
		t.Errorf("sex = %s, want WOMAN", resp.Sex)
	}

	var registered bool
	for _, ev := range uow.Collected {
		if ev.EventName() == "user.registered" {
			registered = true
		}
	}
	if !registered {
		t.Error("no user.registered event collected")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	req := RegisterUserRequest{Name: "Alice Martin", Email: "alice@example.com"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	req.Name = "Someone Else"
	_, err := svc.Register(ctx, req)
	if !errors.Is(err, user.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(context.Background(), RegisterUserRequest{
		Name:  "Alice Martin",
		Email: "not-an-address",
	})
	if !errors.Is(err, user.ErrInvalidEmail) {
		t.Fatalf("err = %v, want ErrInvalidEmail", err)
	}
}

func TestCreditAccumulates(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterUserRequest{Name: "Alice Martin", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Credit(ctx, CreditWalletRequest{UserID: created.ID, Amount: "25.50"}); err != nil {
		t.Fatalf("first Credit: %v", err)
	}
	resp, err := svc.Credit(ctx, CreditWalletRequest{UserID: created.ID, Amount: "10.00"})
	if err != nil {
		t.Fatalf("second Credit: %v", err)
	}
	if resp.Wallet != "35.50" {
		t.Errorf("wallet = %s, want 35.50", resp.Wallet)
	}
}

func TestCreditRejectsBadAmounts(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterUserRequest{Name: "Alice Martin", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, amount := range []string{"0", "-5.00"} {
		if _, err := svc.Credit(ctx, CreditWalletRequest{UserID: created.ID, Amount: amount}); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("amount %s: err = %v, want ErrInvalidInput", amount, err)
		}
	}
	if _, err := svc.Credit(ctx, CreditWalletRequest{UserID: created.ID, Amount: "abc"}); err == nil {
		t.Error("unparseable amount accepted")
	}
}

func TestCreditUnknownUser(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Credit(context.Background(), CreditWalletRequest{UserID: 42, Amount: "5.00"})
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
