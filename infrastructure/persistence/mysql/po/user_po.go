package po

import (
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"

	"github.com/shopspring/decimal"
)

type UserPO struct {
	ID        int             `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"size:100;not null"`
	Email     string          `gorm:"size:255;uniqueIndex;not null"`
	Sex       uint8           `gorm:"not null;default:2"`
	Wallet    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Version   int             `gorm:"default:0"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (UserPO) TableName() string {
	return "users"
}

func FromUserDomain(u *user.User) *UserPO {
	return &UserPO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		Sex:       uint8(u.Sex().Wire()),
		Wallet:    u.Wallet().Amount(),
		Version:   u.Version(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func (po *UserPO) ToDomain() *user.User {
	return user.RebuildFromDTO(user.ReconstructionDTO{
		ID:        po.ID,
		Name:      po.Name,
		Email:     po.Email,
		Sex:       user.SexFromWire(int(po.Sex)),
		Wallet:    shared.NewMoney(po.Wallet),
		Version:   po.Version,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	})
}
