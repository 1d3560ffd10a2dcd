package mysql

import (
	"context"
	"errors"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// ConstraintRepository MySQL/GORM implementation of the ordering
// configuration store.
type ConstraintRepository struct {
	db *gorm.DB
}

func NewConstraintRepository(db *gorm.DB) *ConstraintRepository {
	return &ConstraintRepository{db: db}
}

func (r *ConstraintRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *ConstraintRepository) FindByID(ctx context.Context, id int) (*constraint.Constraint, error) {
	var constraintPO po.ConstraintPO
	result := r.getDB(ctx).First(&constraintPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, constraint.NewConstraintNotFoundError(id)
		}
		return nil, result.Error
	}

	return constraintPO.ToDomain(), nil
}

func (r *ConstraintRepository) Save(ctx context.Context, c *constraint.Constraint) error {
	db := r.getDB(ctx)
	constraintPO := po.FromConstraintDomain(c)

	if constraintPO.ID == 0 {
		if err := db.Create(constraintPO).Error; err != nil {
			return err
		}
		c.AssignID(constraintPO.ID)
		return nil
	}
	return db.Save(constraintPO).Error
}

// SeedDefault inserts the default configuration record (id 1, cutoff
// 10:30:00, VAT 20%) if no row with that id exists yet.
func (r *ConstraintRepository) SeedDefault(ctx context.Context) error {
	defaultPO := po.FromConstraintDomain(constraint.Default())
	return r.getDB(ctx).
		Where(po.ConstraintPO{ID: constraint.DefaultConstraintID}).
		Attrs(defaultPO).
		FirstOrCreate(&po.ConstraintPO{}).Error
}

var _ constraint.Repository = (*ConstraintRepository)(nil)
