package po

import (
	"encoding/json"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"github.com/google/uuid"
)

// OutboxEventPO Outbox event persistence object
// Implements transactional outbox pattern for reliable event publishing
type OutboxEventPO struct {
	ID          string    `gorm:"primaryKey;size:64"`
	AggregateID string    `gorm:"size:64;index;not null"`
	EventType   string    `gorm:"size:100;index;not null"`          // e.g., "order.placed", "wallet.debited"
	Payload     string    `gorm:"type:json;not null"`               // JSON serialized event data
	Status      string    `gorm:"size:20;default:PENDING;not null"` // PENDING, PROCESSING, PUBLISHED, FAILED
	RetryCount  int       `gorm:"default:0;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (OutboxEventPO) TableName() string {
	return "outbox_events"
}

// EventStatus Outbox event status enum
type EventStatus string

const (
	EventStatusPending    EventStatus = "PENDING"
	EventStatusProcessing EventStatus = "PROCESSING"
	EventStatusPublished  EventStatus = "PUBLISHED"
	EventStatusFailed     EventStatus = "FAILED"
)

// FromDomainEvent Convert domain event to outbox persistence object
func FromDomainEvent(event shared.DomainEvent) (*OutboxEventPO, error) {
	payload, err := serializeEventToJSON(event)
	if err != nil {
		return nil, err
	}

	return &OutboxEventPO{
		ID:          uuid.New().String(),
		AggregateID: event.GetAggregateID(),
		EventType:   event.EventName(),
		Payload:     payload,
		Status:      string(EventStatusPending),
		RetryCount:  0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// serializeEventToJSON flattens the event into a generic payload.
// Event-specific fields are picked up through small getter interfaces
// so the outbox stays decoupled from concrete event types.
func serializeEventToJSON(event shared.DomainEvent) (string, error) {
	eventData := map[string]interface{}{
		"event_name":   event.EventName(),
		"aggregate_id": event.GetAggregateID(),
		"occurred_on":  event.OccurredOn(),
	}

	if getter, ok := event.(interface{ OrderID() string }); ok {
		eventData["order_id"] = getter.OrderID()
	}
	if getter, ok := event.(interface{ UserID() int }); ok {
		eventData["user_id"] = getter.UserID()
	}
	if getter, ok := event.(interface{ LineCount() int }); ok {
		eventData["line_count"] = getter.LineCount()
	}
	if getter, ok := event.(interface{ Amount() shared.Money }); ok {
		eventData["amount"] = getter.Amount().String()
	}
	if getter, ok := event.(interface{ Balance() shared.Money }); ok {
		eventData["balance"] = getter.Balance().String()
	}
	if getter, ok := event.(interface{ Name() string }); ok {
		eventData["name"] = getter.Name()
	}
	if getter, ok := event.(interface{ Email() string }); ok {
		eventData["email"] = getter.Email()
	}

	data, err := json.Marshal(eventData)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToEventData Extract event data from outbox PO (for debugging/testing)
func (po *OutboxEventPO) ToEventData() (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(po.Payload), &data); err != nil {
		return nil, err
	}
	return data, nil
}
