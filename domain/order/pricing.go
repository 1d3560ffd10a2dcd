package order

import (
	"context"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"github.com/shopspring/decimal"
)

// CatalogGateway resolves the catalog items referenced by line items.
type CatalogGateway interface {
	FindMealByID(ctx context.Context, id int) (*catalog.Meal, error)
	FindMenuByID(ctx context.Context, id int) (*catalog.Menu, error)
}

// ConstraintGateway resolves the pricing configuration.
type ConstraintGateway interface {
	FindByID(ctx context.Context, id int) (*constraint.Constraint, error)
}

// Quotation is the result of pricing an order against the current
// catalog and constraint state.
type Quotation struct {
	DutyFree  shared.Money
	Inclusive shared.Money
	RateVAT   decimal.Decimal
}

// PriceEngine computes order totals from live catalog prices.
type PriceEngine struct {
	catalog     CatalogGateway
	constraints ConstraintGateway
}

func NewPriceEngine(catalogGW CatalogGateway, constraintGW ConstraintGateway) *PriceEngine {
	return &PriceEngine{catalog: catalogGW, constraints: constraintGW}
}

// ComputePrice prices an order at the current catalog state.
//
// A nil constraint id resolves to the default record; the -1 sentinel
// skips the lookup entirely and applies no VAT. The result is a pure
// function of the order, the catalog, and the constraint, so repeated
// calls on unchanged state return identical quotations.
func (p *PriceEngine) ComputePrice(ctx context.Context, o *Order, constraintID *int) (Quotation, error) {
	rate := decimal.Zero
	if id := constraint.ResolveID(constraintID); id != constraint.NoConstraintID {
		c, err := p.constraints.FindByID(ctx, id)
		if err != nil {
			return Quotation{}, err
		}
		rate = c.RateVAT()
	}

	dutyFree := shared.ZeroMoney()
	for _, item := range o.Items() {
		unit, err := p.unitPrice(ctx, item)
		if err != nil {
			return Quotation{}, err
		}
		dutyFree = dutyFree.Add(unit.Times(item.Quantity()))
	}

	return Quotation{
		DutyFree:  dutyFree,
		Inclusive: dutyFree.WithVAT(rate),
		RateVAT:   rate,
	}, nil
}

// unitPrice resolves the duty-free price of the meal or menu a line
// references. A line resolving to nothing contributes zero; upstream
// validation should make that unreachable.
func (p *PriceEngine) unitPrice(ctx context.Context, item LineItem) (shared.Money, error) {
	switch {
	case item.MealID() != 0:
		meal, err := p.catalog.FindMealByID(ctx, item.MealID())
		if err != nil {
			return shared.Money{}, err
		}
		return meal.PriceDutyFree(), nil
	case item.MenuID() != 0:
		menu, err := p.catalog.FindMenuByID(ctx, item.MenuID())
		if err != nil {
			return shared.Money{}, err
		}
		return menu.PriceDutyFree(), nil
	default:
		return shared.ZeroMoney(), nil
	}
}
