/*
Package user models the ordering customer and their wallet. The wallet
is owned exclusively by the User aggregate: every balance change goes
through Credit/Debit so the non-negative invariant holds everywhere.
*/
package user

import (
	"strconv"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// User is the aggregate root. The wallet balance is debited by the
// order workflow at delivery time and credited through the user API.
type User struct {
	id        int
	name      string
	email     Email
	sex       Sex
	wallet    shared.Money
	version   int
	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
	isNew  bool
}

// NewUser registers a user with an empty wallet.
func NewUser(name, email string, sex Sex) (*User, error) {
	if name == "" {
		return nil, shared.NewValidationError("user", "name", "user name is required")
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		name:      name,
		email:     *emailVO,
		sex:       sex,
		wallet:    shared.ZeroMoney(),
		createdAt: now,
		updatedAt: now,
		isNew:     true,
	}
	return u, nil
}

// Credit adds amount to the wallet.
func (u *User) Credit(amount shared.Money) error {
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewValidationError("user", "amount", "credit amount must be positive")
	}
	u.wallet = u.wallet.Add(amount)
	u.updatedAt = time.Now()
	u.events = append(u.events, NewWalletCreditedEvent(u.id, amount, u.wallet))
	return nil
}

// Debit removes amount from the wallet. The balance can never go
// negative: an insufficient balance fails with LackOfMoney and leaves
// the wallet untouched.
func (u *User) Debit(amount shared.Money) error {
	if amount.IsNegative() {
		return shared.NewValidationError("user", "amount", "debit amount cannot be negative")
	}
	if u.wallet.LessThan(amount) {
		return NewLackOfMoneyError(u.id, u.wallet, amount)
	}
	u.wallet = u.wallet.Sub(amount)
	u.updatedAt = time.Now()
	u.events = append(u.events, NewWalletDebitedEvent(u.id, amount, u.wallet))
	return nil
}

// UpdateName changes the display name.
func (u *User) UpdateName(name string) error {
	if name == "" {
		return shared.NewValidationError("user", "name", "user name is required")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ID() int              { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Sex() Sex             { return u.sex }
func (u *User) Wallet() shared.Money { return u.wallet }
func (u *User) Version() int         { return u.version }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// IsNew reports whether the aggregate has not been persisted yet.
func (u *User) IsNew() bool { return u.isNew }

// AggregateID implements shared.AggregateRoot.
func (u *User) AggregateID() string { return strconv.Itoa(u.id) }

// PullEvents returns and clears the recorded domain events.
func (u *User) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(u.events))
	copy(events, u.events)
	u.events = u.events[:0]
	return events
}

// AssignID sets the storage-assigned identity after the first save and
// records the registration event, which needs the final id. Repository
// use only.
func (u *User) AssignID(id int) {
	if u.id != 0 {
		return
	}
	u.id = id
	u.events = append(u.events, NewUserRegisteredEvent(id, u.name, u.email.Value()))
}

// MarkPersisted clears the new flag and bumps the version after a
// successful save. Repository use only.
func (u *User) MarkPersisted() {
	u.isNew = false
	u.version++
}

// ReconstructionDTO rebuilds a User from storage. Repository use only.
type ReconstructionDTO struct {
	ID        int
	Name      string
	Email     string
	Sex       Sex
	Wallet    shared.Money
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RebuildFromDTO reconstructs a User without re-running creation rules.
func RebuildFromDTO(dto ReconstructionDTO) *User {
	return &User{
		id:        dto.ID,
		name:      dto.Name,
		email:     Email{value: dto.Email},
		sex:       dto.Sex,
		wallet:    dto.Wallet,
		version:   dto.Version,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
		isNew:     false,
	}
}

var _ shared.AggregateRoot = (*User)(nil)
