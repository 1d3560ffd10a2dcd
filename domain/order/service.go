package order

import (
	"context"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
)

// AdmissionService applies the cross-aggregate placement rules: every
// referenced catalog item must exist and be orderable for the current
// week and day, and the placement instant must fall strictly before the
// constraint's daily cutoff.
//
// Both checks are bypassed when the caller passes the -1 constraint
// sentinel.
type AdmissionService struct {
	catalog     CatalogGateway
	constraints ConstraintGateway
}

func NewAdmissionService(catalogGW CatalogGateway, constraintGW ConstraintGateway) *AdmissionService {
	return &AdmissionService{catalog: catalogGW, constraints: constraintGW}
}

// Admit validates order inputs against the catalog and the constraint
// at the given placement instant. The constraint id is resolved with
// the default-1 rule; nil means default.
func (s *AdmissionService) Admit(ctx context.Context, inputs []LineItemInput, at time.Time, constraintID *int) error {
	resolved := constraint.ResolveID(constraintID)
	if resolved == constraint.NoConstraintID {
		// Still resolve the items so a dangling reference fails fast.
		for _, in := range inputs {
			if _, err := s.resolve(ctx, in); err != nil {
				return err
			}
		}
		return nil
	}

	week, day := catalog.SlotOf(at)
	for _, in := range inputs {
		item, err := s.resolve(ctx, in)
		if err != nil {
			return err
		}
		if !item.Availability().AvailableFor(week, day) {
			kind := "meal"
			if in.MenuID != 0 {
				kind = "menu"
			}
			return catalog.NewNotAvailableError(kind, item.ID(), week, day)
		}
	}

	c, err := s.constraints.FindByID(ctx, resolved)
	if err != nil {
		return err
	}
	if !c.AcceptsOrderAt(at) {
		return NewTimeOutError(at, c.OrderTimeLimit())
	}
	return nil
}

func (s *AdmissionService) resolve(ctx context.Context, in LineItemInput) (catalog.Item, error) {
	if in.MenuID != 0 {
		menu, err := s.catalog.FindMenuByID(ctx, in.MenuID)
		if err != nil {
			return nil, err
		}
		return menu, nil
	}
	meal, err := s.catalog.FindMealByID(ctx, in.MealID)
	if err != nil {
		return nil, err
	}
	return meal, nil
}
