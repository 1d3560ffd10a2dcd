package order

import (
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// OrderPlacedEvent records a new order entering the CREATED state.
type OrderPlacedEvent struct {
	orderID    string
	userID     int
	lineCount  int
	occurredOn time.Time
}

func NewOrderPlacedEvent(orderID string, userID, lineCount int) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		orderID:    orderID,
		userID:     userID,
		lineCount:  lineCount,
		occurredOn: time.Now(),
	}
}

func (e *OrderPlacedEvent) EventName() string      { return "order.placed" }
func (e *OrderPlacedEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderPlacedEvent) GetAggregateID() string { return e.orderID }
func (e *OrderPlacedEvent) OrderID() string        { return e.orderID }
func (e *OrderPlacedEvent) UserID() int            { return e.userID }
func (e *OrderPlacedEvent) LineCount() int         { return e.lineCount }

// OrderCanceledEvent records the CREATED to CANCELED transition.
type OrderCanceledEvent struct {
	orderID    string
	occurredOn time.Time
}

func NewOrderCanceledEvent(orderID string) *OrderCanceledEvent {
	return &OrderCanceledEvent{
		orderID:    orderID,
		occurredOn: time.Now(),
	}
}

func (e *OrderCanceledEvent) EventName() string      { return "order.canceled" }
func (e *OrderCanceledEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderCanceledEvent) GetAggregateID() string { return e.orderID }
func (e *OrderCanceledEvent) OrderID() string        { return e.orderID }

// OrderDeliveredEvent records the CREATED to DELIVERED transition and
// the amount debited from the owner's wallet.
type OrderDeliveredEvent struct {
	orderID    string
	userID     int
	amount     shared.Money
	occurredOn time.Time
}

func NewOrderDeliveredEvent(orderID string, userID int, amount shared.Money) *OrderDeliveredEvent {
	return &OrderDeliveredEvent{
		orderID:    orderID,
		userID:     userID,
		amount:     amount,
		occurredOn: time.Now(),
	}
}

func (e *OrderDeliveredEvent) EventName() string      { return "order.delivered" }
func (e *OrderDeliveredEvent) OccurredOn() time.Time  { return e.occurredOn }
func (e *OrderDeliveredEvent) GetAggregateID() string { return e.orderID }
func (e *OrderDeliveredEvent) OrderID() string        { return e.orderID }
func (e *OrderDeliveredEvent) UserID() int            { return e.userID }
func (e *OrderDeliveredEvent) Amount() shared.Money   { return e.amount }
