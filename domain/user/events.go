package user

import (
	"strconv"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// UserRegisteredEvent records a new account with an assigned id.
type UserRegisteredEvent struct {
	userID     int
	name       string
	email      string
	occurredOn time.Time
}

func NewUserRegisteredEvent(userID int, name, email string) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		userID:     userID,
		name:       name,
		email:      email,
		occurredOn: time.Now(),
	}
}

func (e *UserRegisteredEvent) EventName() string      { return "user.registered" }
func (e *UserRegisteredEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *UserRegisteredEvent) GetAggregateID() string { return strconv.Itoa(e.userID) }
func (e *UserRegisteredEvent) UserID() int            { return e.userID }
func (e *UserRegisteredEvent) Name() string           { return e.name }
func (e *UserRegisteredEvent) Email() string          { return e.email }

// WalletCreditedEvent records a top-up and the resulting balance.
type WalletCreditedEvent struct {
	userID     int
	amount     shared.Money
	balance    shared.Money
	occurredOn time.Time
}

func NewWalletCreditedEvent(userID int, amount, balance shared.Money) *WalletCreditedEvent {
	return &WalletCreditedEvent{
		userID:     userID,
		amount:     amount,
		balance:    balance,
		occurredOn: time.Now(),
	}
}

func (e *WalletCreditedEvent) EventName() string      { return "wallet.credited" }
func (e *WalletCreditedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *WalletCreditedEvent) GetAggregateID() string { return strconv.Itoa(e.userID) }
func (e *WalletCreditedEvent) UserID() int            { return e.userID }
func (e *WalletCreditedEvent) Amount() shared.Money   { return e.amount }
func (e *WalletCreditedEvent) Balance() shared.Money  { return e.balance }

// WalletDebitedEvent records a delivery payment and the resulting balance.
type WalletDebitedEvent struct {
	userID     int
	amount     shared.Money
	balance    shared.Money
	occurredOn time.Time
}

func NewWalletDebitedEvent(userID int, amount, balance shared.Money) *WalletDebitedEvent {
	return &WalletDebitedEvent{
		userID:     userID,
		amount:     amount,
		balance:    balance,
		occurredOn: time.Now(),
	}
}

func (e *WalletDebitedEvent) EventName() string      { return "wallet.debited" }
func (e *WalletDebitedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *WalletDebitedEvent) GetAggregateID() string { return strconv.Itoa(e.userID) }
func (e *WalletDebitedEvent) UserID() int            { return e.userID }
func (e *WalletDebitedEvent) Amount() shared.Money   { return e.amount }
func (e *WalletDebitedEvent) Balance() shared.Money  { return e.balance }
