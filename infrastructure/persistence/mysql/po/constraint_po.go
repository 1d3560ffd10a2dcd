package po

import (
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"

	"github.com/shopspring/decimal"
)

// ConstraintPO Constraint persistence object. The id is signed so the
// -1 "no constraint" sentinel never collides with a stored row.
type ConstraintPO struct {
	ID             int             `gorm:"primaryKey;autoIncrement"`
	OrderTimeLimit string          `gorm:"size:8;not null"`
	MaxOrderPerDay int             `gorm:"not null"`
	RateVAT        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (ConstraintPO) TableName() string {
	return "constraints"
}

func FromConstraintDomain(c *constraint.Constraint) *ConstraintPO {
	return &ConstraintPO{
		ID:             c.ID(),
		OrderTimeLimit: c.OrderTimeLimit().String(),
		MaxOrderPerDay: c.MaxOrderPerDay(),
		RateVAT:        c.RateVAT(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

// ToDomain converts the row back. An unparsable time limit falls back
// to the default cutoff rather than failing the lookup.
func (po *ConstraintPO) ToDomain() *constraint.Constraint {
	limit, err := constraint.ParseTimeOfDay(po.OrderTimeLimit)
	if err != nil {
		limit = constraint.MustTimeOfDay(constraint.DefaultOrderTimeLimit)
	}
	return constraint.RebuildFromDTO(constraint.ReconstructionDTO{
		ID:             po.ID,
		OrderTimeLimit: limit,
		MaxOrderPerDay: po.MaxOrderPerDay,
		RateVAT:        po.RateVAT,
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
	})
}
