package mysql

import (
	"context"
	"errors"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mysql/po"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/specification"

	"gorm.io/gorm"
)

// OrderRepository MySQL/GORM implementation of order repository
// DDD principle: Repository is only responsible for persistence of aggregate roots, not event publishing
// GORM usage specification: Association features are prohibited to maintain DDD aggregate boundaries
type OrderRepository struct {
	db         *gorm.DB
	translator *specification.GormTranslator
}

// NewOrderRepository Create order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:         db,
		translator: specification.NewGormTranslator(),
	}
}

// getDB returns the transaction from context if available, otherwise the default db
func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save Save order (create or update)
// Note: Manually manage saving of orders and line items, do not use GORM associations
// When called within UoW.Execute(), it uses the transaction from context
// When called standalone, it creates its own transaction for atomicity
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return r.saveWithTx(tx, o)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.saveWithTx(tx, o)
	})
}

func (r *OrderRepository) saveWithTx(tx *gorm.DB, o *order.Order) error {
	orderPO, itemPOs := po.FromOrderDomain(o)

	if o.IsNew() {
		if err := tx.Create(orderPO).Error; err != nil {
			return err
		}
	} else {
		expectedVersion := o.Version()

		// Versioned update serializes concurrent deliver/cancel against
		// the same order: the loser sees zero rows and retries.
		result := tx.Model(&po.OrderPO{}).
			Where("id = ? AND version = ?", o.ID(), expectedVersion).
			Updates(map[string]interface{}{
				"status":     orderPO.Status,
				"version":    expectedVersion + 1,
				"updated_at": orderPO.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&po.OrderPO{}).Where("id = ?", o.ID()).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return order.NewOrderNotFoundError(o.ID())
			}
			return order.NewConcurrentModificationError(o.ID())
		}
	}

	// Line items: delete then insert keeps the write path simple and
	// stays correct because items are only replaced wholesale.
	if err := tx.Where("order_id = ?", o.ID()).Delete(&po.LineItemPO{}).Error; err != nil {
		return err
	}
	if len(itemPOs) > 0 {
		if err := tx.Create(&itemPOs).Error; err != nil {
			return err
		}
	}

	o.MarkPersisted()
	return nil
}

// FindByID Find order by ID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	db := r.getDB(ctx)
	var orderPO po.OrderPO

	result := db.First(&orderPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(id)
		}
		return nil, result.Error
	}

	items, err := r.loadItems(db, orderPO.ID)
	if err != nil {
		return nil, err
	}
	return orderPO.ToDomain(items), nil
}

// FindByUserID Find order list by user ID
func (r *OrderRepository) FindByUserID(ctx context.Context, userID int) ([]*order.Order, error) {
	db := r.getDB(ctx)
	var orderPOs []po.OrderPO

	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderPOs).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(db, orderPOs)
}

// FindBySpecification translates the specification to SQL where
// possible; untranslatable specifications are evaluated in memory over
// the full scan.
func (r *OrderRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*order.Order]) ([]*order.Order, error) {
	db := r.getDB(ctx)

	query := r.translator.Translate(spec)
	scope := db
	if query != nil {
		scope = query(db)
	}

	var orderPOs []po.OrderPO
	if err := scope.Order("created_at DESC").Find(&orderPOs).Error; err != nil {
		return nil, err
	}

	orders, err := r.toDomainList(db, orderPOs)
	if err != nil {
		return nil, err
	}
	if query != nil || spec == nil {
		return orders, nil
	}

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if spec.IsSatisfiedBy(ctx, o) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (r *OrderRepository) loadItems(db *gorm.DB, orderID string) ([]po.LineItemPO, error) {
	// Manual query instead of Preload to keep aggregate boundaries clear.
	var itemPOs []po.LineItemPO
	if err := db.Where("order_id = ?", orderID).Find(&itemPOs).Error; err != nil {
		return nil, err
	}
	return itemPOs, nil
}

func (r *OrderRepository) toDomainList(db *gorm.DB, orderPOs []po.OrderPO) ([]*order.Order, error) {
	orders := make([]*order.Order, len(orderPOs))
	for i, orderPO := range orderPOs {
		items, err := r.loadItems(db, orderPO.ID)
		if err != nil {
			return nil, err
		}
		orders[i] = orderPO.ToDomain(items)
	}
	return orders, nil
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
