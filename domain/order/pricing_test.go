package order

import (
	"context"
	"errors"
	"testing"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"github.com/shopspring/decimal"
)

// stubCatalog serves fixed meals and menus to the price engine and the
// admission service.
type stubCatalog struct {
	meals map[int]*catalog.Meal
	menus map[int]*catalog.Menu
}

func (s *stubCatalog) FindMealByID(_ context.Context, id int) (*catalog.Meal, error) {
	if m, ok := s.meals[id]; ok {
		return m, nil
	}
	return nil, catalog.NewMealNotFoundError(id)
}

func (s *stubCatalog) FindMenuByID(_ context.Context, id int) (*catalog.Menu, error) {
	if m, ok := s.menus[id]; ok {
		return m, nil
	}
	return nil, catalog.NewMenuNotFoundError(id)
}

type stubConstraints struct {
	records map[int]*constraint.Constraint
}

func (s *stubConstraints) FindByID(_ context.Context, id int) (*constraint.Constraint, error) {
	if c, ok := s.records[id]; ok {
		return c, nil
	}
	return nil, constraint.NewConstraintNotFoundError(id)
}

func newMealFixture(t *testing.T, id int, price string, availability catalog.WindowSet) *catalog.Meal {
	t.Helper()
	m, err := catalog.NewMeal("meal", "", shared.MustMoney(price), catalog.CategoryUnknown, availability)
	if err != nil {
		t.Fatalf("NewMeal failed: %v", err)
	}
	m.AssignID(id)
	return m
}

func newMenuFixture(t *testing.T, id int, price string, availability catalog.WindowSet) *catalog.Menu {
	t.Helper()
	m, err := catalog.NewMenu("menu", "", shared.MustMoney(price), availability, nil)
	if err != nil {
		t.Fatalf("NewMenu failed: %v", err)
	}
	m.AssignID(id)
	return m
}

func pricingFixtures(t *testing.T) (*stubCatalog, *stubConstraints) {
	t.Helper()
	cat := &stubCatalog{
		meals: map[int]*catalog.Meal{
			10: newMealFixture(t, 10, "5.00", catalog.WindowSet{}),
			11: newMealFixture(t, 11, "6.00", catalog.WindowSet{}),
		},
		menus: map[int]*catalog.Menu{
			20: newMenuFixture(t, 20, "12.50", catalog.WindowSet{}),
		},
	}
	cons := &stubConstraints{
		records: map[int]*constraint.Constraint{
			constraint.DefaultConstraintID: constraint.Default(),
		},
	}
	return cat, cons
}

func twoMealOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder(1, placedAt, []LineItemInput{
		{Quantity: 2, MealID: 10},
		{Quantity: 1, MealID: 11},
	})
	if err != nil {
		t.Fatalf("NewOrder failed: %v", err)
	}
	return o
}

func TestComputePriceWithoutConstraint(t *testing.T) {
	cat, cons := pricingFixtures(t)
	engine := NewPriceEngine(cat, cons)

	skip := constraint.NoConstraintID
	quote, err := engine.ComputePrice(context.Background(), twoMealOrder(t), &skip)
	if err != nil {
		t.Fatalf("ComputePrice failed: %v", err)
	}

	if !quote.DutyFree.Equals(shared.MustMoney("16.00")) {
		t.Errorf("DutyFree = %s, want 16.00", quote.DutyFree)
	}
	if !quote.Inclusive.Equals(shared.MustMoney("16.00")) {
		t.Errorf("Inclusive = %s, want 16.00 (no VAT with the -1 sentinel)", quote.Inclusive)
	}
	if !quote.RateVAT.Equal(decimal.Zero) {
		t.Errorf("RateVAT = %s, want 0", quote.RateVAT)
	}
}

func TestComputePriceWithDefaultConstraint(t *testing.T) {
	cat, cons := pricingFixtures(t)
	engine := NewPriceEngine(cat, cons)

	// nil constraint id resolves to the default record (20% VAT).
	quote, err := engine.ComputePrice(context.Background(), twoMealOrder(t), nil)
	if err != nil {
		t.Fatalf("ComputePrice failed: %v", err)
	}

	if !quote.DutyFree.Equals(shared.MustMoney("16.00")) {
		t.Errorf("DutyFree = %s, want 16.00", quote.DutyFree)
	}
	if !quote.Inclusive.Equals(shared.MustMoney("19.20")) {
		t.Errorf("Inclusive = %s, want 19.20", quote.Inclusive)
	}
}

func TestComputePriceUsesMenuOwnPrice(t *testing.T) {
	cat, cons := pricingFixtures(t)
	engine := NewPriceEngine(cat, cons)

	o, err := NewOrder(1, placedAt, []LineItemInput{{Quantity: 2, MenuID: 20}})
	if err != nil {
		t.Fatalf("NewOrder failed: %v", err)
	}

	skip := constraint.NoConstraintID
	quote, err := engine.ComputePrice(context.Background(), o, &skip)
	if err != nil {
		t.Fatalf("ComputePrice failed: %v", err)
	}
	if !quote.DutyFree.Equals(shared.MustMoney("25.00")) {
		t.Errorf("DutyFree = %s, want 25.00", quote.DutyFree)
	}
}

func TestComputePriceUnknownConstraint(t *testing.T) {
	cat, cons := pricingFixtures(t)
	engine := NewPriceEngine(cat, cons)

	unknown := 42
	_, err := engine.ComputePrice(context.Background(), twoMealOrder(t), &unknown)
	if !errors.Is(err, constraint.ErrConstraintNotFound) {
		t.Errorf("got %v, want ErrConstraintNotFound", err)
	}
}

func TestComputePriceUnknownMeal(t *testing.T) {
	cat, cons := pricingFixtures(t)
	engine := NewPriceEngine(cat, cons)

	o, err := NewOrder(1, placedAt, []LineItemInput{{Quantity: 1, MealID: 999}})
	if err != nil {
		t.Fatalf("NewOrder failed: %v", err)
	}

	_, err = engine.ComputePrice(context.Background(), o, nil)
	if !errors.Is(err, catalog.ErrMealNotFound) {
		t.Errorf("got %v, want ErrMealNotFound", err)
	}
}

func TestComputePriceIsIdempotent(t *testing.T) {
	cat, cons := pricingFixtures(t)
	engine := NewPriceEngine(cat, cons)
	o := twoMealOrder(t)

	first, err := engine.ComputePrice(context.Background(), o, nil)
	if err != nil {
		t.Fatalf("first ComputePrice failed: %v", err)
	}
	second, err := engine.ComputePrice(context.Background(), o, nil)
	if err != nil {
		t.Fatalf("second ComputePrice failed: %v", err)
	}

	if !first.DutyFree.Equals(second.DutyFree) || !first.Inclusive.Equals(second.Inclusive) {
		t.Errorf("repeated pricing on unchanged state diverged: %+v vs %+v", first, second)
	}
}
