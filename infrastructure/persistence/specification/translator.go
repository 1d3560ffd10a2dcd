package specification

import (
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"gorm.io/gorm"
)

// GormTranslator converts order domain specifications to GORM queries.
// DDD principle: Infrastructure layer handles framework-specific concerns
type GormTranslator struct{}

// NewGormTranslator creates a new GORM translator
func NewGormTranslator() *GormTranslator {
	return &GormTranslator{}
}

// Translate converts a domain specification to a GORM query function.
// Returns nil if the specification type is not supported; the caller
// falls back to in-memory filtering for those.
func (t *GormTranslator) Translate(spec shared.Specification[*order.Order]) func(*gorm.DB) *gorm.DB {
	if spec == nil {
		return nil
	}

	if s, ok := spec.(shared.AndSpecification[*order.Order]); ok {
		return t.translateAnd(s)
	}
	return t.translateConcrete(spec)
}

// translateAnd conjoins both sides; one untranslatable side makes the
// whole composition untranslatable so the SQL result never widens.
func (t *GormTranslator) translateAnd(spec shared.AndSpecification[*order.Order]) func(*gorm.DB) *gorm.DB {
	leftQuery := t.Translate(spec.Left)
	rightQuery := t.Translate(spec.Right)
	if leftQuery == nil || rightQuery == nil {
		return nil
	}

	return func(db *gorm.DB) *gorm.DB {
		return rightQuery(leftQuery(db))
	}
}

// translateConcrete translates the known order specifications.
func (t *GormTranslator) translateConcrete(spec shared.Specification[*order.Order]) func(*gorm.DB) *gorm.DB {
	switch s := spec.(type) {
	case order.ByUserIDSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", s.UserID)
		}
	case order.ByStatusSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", s.Status.Wire())
		}
	case order.ByDateRangeSpecification:
		return func(db *gorm.DB) *gorm.DB {
			if !s.Start.IsZero() {
				db = db.Where("created_at >= ?", s.Start)
			}
			if !s.End.IsZero() {
				db = db.Where("created_at <= ?", s.End)
			}
			return db
		}
	}

	// Unknown specification type
	return nil
}
