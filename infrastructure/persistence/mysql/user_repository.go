package mysql

import (
	"context"
	"errors"
	"strings"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "1062")
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return r.saveWithTx(tx, u)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.saveWithTx(tx, u)
	})
}

func (r *UserRepository) saveWithTx(tx *gorm.DB, u *user.User) error {
	userPO := po.FromUserDomain(u)

	if u.IsNew() {
		if err := tx.Create(userPO).Error; err != nil {
			if isDuplicateKeyError(err) {
				return user.NewEmailAlreadyExistsError(userPO.Email)
			}
			return err
		}
		// The id is assigned by auto-increment on insert.
		u.AssignID(userPO.ID)
	} else {
		expectedVersion := u.Version()

		// Strict optimistic lock: update only the row still at the
		// loaded version so concurrent writes never silently overwrite.
		result := tx.Model(&po.UserPO{}).
			Where("id = ? AND version = ?", u.ID(), expectedVersion).
			Updates(map[string]interface{}{
				"name":       userPO.Name,
				"email":      userPO.Email,
				"sex":        userPO.Sex,
				"wallet":     userPO.Wallet,
				"version":    expectedVersion + 1,
				"updated_at": userPO.UpdatedAt,
			})

		if result.Error != nil {
			if isDuplicateKeyError(result.Error) {
				return user.NewEmailAlreadyExistsError(userPO.Email)
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&po.UserPO{}).Where("id = ?", u.ID()).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return user.NewUserNotFoundError(u.ID())
			}
			return user.NewConcurrentModificationError(u.ID())
		}
	}

	u.MarkPersisted()
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*user.User, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var userPO po.UserPO
	result := r.getDB(ctx).First(&userPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.NewUserNotFoundError(id)
		}
		return nil, result.Error
	}

	return userPO.ToDomain(), nil
}

// FindByEmail returns (nil, nil) when no user has the address; callers
// use it as an existence probe during registration.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var userPO po.UserPO
	result := r.getDB(ctx).First(&userPO, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return userPO.ToDomain(), nil
}

var _ user.Repository = (*UserRepository)(nil)
