/*
Package order holds the order aggregate and its workflow.

An order is placed in the CREATED state and moves exactly once to either
CANCELED or DELIVERED. Line items reference a meal or a menu from the
catalog, never both, and are only reachable through the aggregate root.
*/
package order

import (
	"fmt"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"github.com/google/uuid"
)

// Order is the aggregate root of the ordering workflow.
type Order struct {
	id        string
	userID    int
	items     []LineItem
	status    Status
	version   int
	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent

	addedItems   []LineItem
	removedItems []LineItem
	isNew        bool
}

// LineItem is an entity inside the aggregate. Exactly one of mealID and
// menuID is set; zero means absent.
type LineItem struct {
	id       string
	quantity int
	mealID   int
	menuID   int
}

// Status is the order lifecycle state, persisted as a small integer.
type Status uint8

const (
	StatusCreated   Status = 0
	StatusDelivered Status = 1
	StatusCanceled  Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "CREATED"
	case StatusDelivered:
		return "DELIVERED"
	case StatusCanceled:
		return "CANCELED"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Wire returns the persisted integer code.
func (s Status) Wire() uint8 { return uint8(s) }

// ParseStatus maps a wire code back to a Status.
func ParseStatus(code uint8) (Status, error) {
	switch Status(code) {
	case StatusCreated, StatusDelivered, StatusCanceled:
		return Status(code), nil
	default:
		return StatusCreated, shared.NewValidationError("order", "status", fmt.Sprintf("unknown status code %d", code))
	}
}

// LineItemInput describes one requested line of a new or updated order.
// A zero MealID or MenuID means the reference is absent.
type LineItemInput struct {
	Quantity int
	MealID   int
	MenuID   int
}

// NewOrder creates an order in the CREATED state.
//
// Inputs with a zero quantity are dropped silently; a negative quantity
// or a line referencing both a meal and a menu (or neither) is rejected.
// An order with no surviving line is legal.
func NewOrder(userID int, createdAt time.Time, inputs []LineItemInput) (*Order, error) {
	if userID <= 0 {
		return nil, shared.NewValidationError("order", "userID", "must be a positive integer")
	}

	items, err := buildLineItems(inputs)
	if err != nil {
		return nil, err
	}

	orderID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order id: %w", err)
	}

	o := &Order{
		id:        orderID.String(),
		userID:    userID,
		items:     items,
		status:    StatusCreated,
		version:   0,
		createdAt: createdAt,
		updatedAt: createdAt,
		events:    make([]shared.DomainEvent, 0),
		isNew:     true,
	}
	o.events = append(o.events, NewOrderPlacedEvent(o.id, userID, len(items)))

	return o, nil
}

func buildLineItems(inputs []LineItemInput) ([]LineItem, error) {
	items := make([]LineItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Quantity < 0 {
			return nil, shared.NewValidationError("order", "quantity",
				fmt.Sprintf("line %d: quantity must not be negative", i))
		}
		if in.MealID != 0 && in.MenuID != 0 {
			return nil, shared.NewValidationError("order", "line",
				fmt.Sprintf("line %d: references both a meal and a menu", i))
		}
		if in.MealID == 0 && in.MenuID == 0 {
			return nil, shared.NewValidationError("order", "line",
				fmt.Sprintf("line %d: references neither a meal nor a menu", i))
		}
		if in.Quantity == 0 {
			continue
		}

		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate line item id: %w", err)
		}
		items = append(items, LineItem{
			id:       id.String(),
			quantity: in.Quantity,
			mealID:   in.MealID,
			menuID:   in.MenuID,
		})
	}
	return items, nil
}

// ReplaceLineItems swaps the whole line set, validating the new inputs
// the same way placement does. Status is not checked here; the service
// decides which states accept updates.
func (o *Order) ReplaceLineItems(inputs []LineItemInput) error {
	items, err := buildLineItems(inputs)
	if err != nil {
		return err
	}

	if !o.isNew {
		o.removedItems = append(o.removedItems, o.items...)
		o.addedItems = append([]LineItem(nil), items...)
	}
	o.items = items
	o.updatedAt = time.Now()
	return nil
}

// Cancel moves a CREATED order to CANCELED. The transition is terminal.
func (o *Order) Cancel() error {
	switch o.status {
	case StatusCanceled:
		return NewOrderAlreadyCanceledError(o.id)
	case StatusDelivered:
		return NewOrderDeliveredError(o.id)
	}

	o.status = StatusCanceled
	o.updatedAt = time.Now()
	o.events = append(o.events, NewOrderCanceledEvent(o.id))
	return nil
}

// Deliver moves a CREATED order to DELIVERED, recording the amount the
// wallet was debited. The transition is terminal.
func (o *Order) Deliver(amount shared.Money) error {
	switch o.status {
	case StatusCanceled:
		return NewOrderAlreadyCanceledError(o.id)
	case StatusDelivered:
		return NewOrderDeliveredError(o.id)
	}

	o.status = StatusDelivered
	o.updatedAt = time.Now()
	o.events = append(o.events, NewOrderDeliveredEvent(o.id, o.userID, amount))
	return nil
}

func (o *Order) ID() string     { return o.id }
func (o *Order) UserID() int    { return o.userID }
func (o *Order) Status() Status { return o.status }
func (o *Order) Version() int   { return o.version }

// CreatedAt is the placement instant; it never changes after creation
// and drives the cutoff check.
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// AggregateID implements shared.AggregateRoot.
func (o *Order) AggregateID() string { return o.id }

// PullEvents returns and clears the recorded domain events.
func (o *Order) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(o.events))
	copy(events, o.events)
	o.events = make([]shared.DomainEvent, 0)
	return events
}

// IsNew reports whether the aggregate has never been persisted.
// Repository use only.
func (o *Order) IsNew() bool { return o.isNew }

// AddedItems returns the lines inserted since load. Repository use only.
func (o *Order) AddedItems() []LineItem {
	items := make([]LineItem, len(o.addedItems))
	copy(items, o.addedItems)
	return items
}

// RemovedItems returns the lines deleted since load. Repository use only.
func (o *Order) RemovedItems() []LineItem {
	items := make([]LineItem, len(o.removedItems))
	copy(items, o.removedItems)
	return items
}

// MarkPersisted clears dirty tracking and bumps the version after a
// successful save. Repository use only.
func (o *Order) MarkPersisted() {
	o.addedItems = nil
	o.removedItems = nil
	o.isNew = false
	o.version++
}

func (it LineItem) ID() string    { return it.id }
func (it LineItem) Quantity() int { return it.quantity }
func (it LineItem) MealID() int   { return it.mealID }
func (it LineItem) MenuID() int   { return it.menuID }

// ReconstructionDTO rebuilds an order from storage. Repository use only.
type ReconstructionDTO struct {
	ID        string
	UserID    int
	Items     []LineItem
	Status    Status
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RebuildFromDTO reconstructs the aggregate without running placement
// validation. Repository use only.
func RebuildFromDTO(dto ReconstructionDTO) *Order {
	return &Order{
		id:        dto.ID,
		userID:    dto.UserID,
		items:     dto.Items,
		status:    dto.Status,
		version:   dto.Version,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
		events:    nil,
		isNew:     false,
	}
}

// ItemReconstructionDTO rebuilds a line item from storage.
type ItemReconstructionDTO struct {
	ID       string
	Quantity int
	MealID   int
	MenuID   int
}

// RebuildItemFromDTO reconstructs a LineItem. Repository use only.
func RebuildItemFromDTO(dto ItemReconstructionDTO) LineItem {
	return LineItem{
		id:       dto.ID,
		quantity: dto.Quantity,
		mealID:   dto.MealID,
		menuID:   dto.MenuID,
	}
}

var _ shared.AggregateRoot = (*Order)(nil)
