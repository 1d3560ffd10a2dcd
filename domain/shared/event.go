package shared

import (
	"fmt"
	"time"
)

// DomainEvent is recorded by aggregates on state changes. The unit of
// work collects events inside the transaction and stores them in the
// outbox table; a background relay publishes them afterwards.
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	GetAggregateID() string
}

// ValidateEvent rejects structurally incomplete events before they
// reach the outbox table.
func ValidateEvent(event DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.EventName() == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	if event.GetAggregateID() == "" {
		return fmt.Errorf("aggregate ID cannot be empty")
	}
	if event.OccurredOn().IsZero() {
		return fmt.Errorf("occurred on time cannot be zero")
	}
	return nil
}
