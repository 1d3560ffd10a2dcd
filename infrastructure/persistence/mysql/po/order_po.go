package po

import (
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
)

// OrderPO Order persistence object
// Note: Only used for database mapping, does not contain any business logic
// Defining GORM associations is prohibited here
type OrderPO struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    int       `gorm:"index;not null"` // Only store ID, no association with User
	Status    uint8     `gorm:"not null"`
	Version   int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"not null"` // placement instant, set by the domain clock
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (OrderPO) TableName() string {
	return "orders"
}

// LineItemPO Order line item persistence object
type LineItemPO struct {
	ID       string `gorm:"primaryKey;size:64"`
	OrderID  string `gorm:"size:64;index;not null"` // Only store ID, no GORM association
	Quantity int    `gorm:"not null"`
	MealID   int    `gorm:"default:0"`
	MenuID   int    `gorm:"default:0"`
}

// TableName Specify table name
func (LineItemPO) TableName() string {
	return "order_line_items"
}

// FromOrderDomain Convert domain model to persistence objects
func FromOrderDomain(o *order.Order) (*OrderPO, []LineItemPO) {
	orderPO := &OrderPO{
		ID:        o.ID(),
		UserID:    o.UserID(),
		Status:    o.Status().Wire(),
		Version:   o.Version(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}

	items := o.Items()
	itemPOs := make([]LineItemPO, len(items))
	for i, item := range items {
		itemPOs[i] = LineItemPO{
			ID:       item.ID(),
			OrderID:  o.ID(),
			Quantity: item.Quantity(),
			MealID:   item.MealID(),
			MenuID:   item.MenuID(),
		}
	}

	return orderPO, itemPOs
}

// ToDomain Convert persistence object to domain model
// An unknown status code degrades to CREATED; the caller logs it.
func (po *OrderPO) ToDomain(itemPOs []LineItemPO) *order.Order {
	items := make([]order.LineItem, len(itemPOs))
	for i, itemPO := range itemPOs {
		items[i] = order.RebuildItemFromDTO(order.ItemReconstructionDTO{
			ID:       itemPO.ID,
			Quantity: itemPO.Quantity,
			MealID:   itemPO.MealID,
			MenuID:   itemPO.MenuID,
		})
	}

	status, err := order.ParseStatus(po.Status)
	if err != nil {
		status = order.StatusCreated
	}

	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:        po.ID,
		UserID:    po.UserID,
		Items:     items,
		Status:    status,
		Version:   po.Version,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	})
}
