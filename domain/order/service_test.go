package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
)

// 2026-03-10 is a Tuesday in ISO week 11.
var admissionInstant = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func admissionFixtures(t *testing.T) *AdmissionService {
	t.Helper()

	week11 := catalog.NewWindowSet(mustTestWindow(t, 11, catalog.AnyDay))
	week12 := catalog.NewWindowSet(mustTestWindow(t, 12, catalog.AnyDay))

	cat := &stubCatalog{
		meals: map[int]*catalog.Meal{
			10: newMealFixture(t, 10, "5.00", catalog.WindowSet{}),
			11: newMealFixture(t, 11, "6.00", week11),
			12: newMealFixture(t, 12, "7.00", week12),
		},
		menus: map[int]*catalog.Menu{
			20: newMenuFixture(t, 20, "12.50", week11),
		},
	}
	cons := &stubConstraints{
		records: map[int]*constraint.Constraint{
			constraint.DefaultConstraintID: constraint.Default(),
		},
	}
	return NewAdmissionService(cat, cons)
}

func mustTestWindow(t *testing.T, week, day int) catalog.Window {
	t.Helper()
	w, err := catalog.NewWindow(week, day)
	if err != nil {
		t.Fatalf("NewWindow(%d, %d) failed: %v", week, day, err)
	}
	return w
}

func TestAdmitAcceptsAvailableItemsBeforeCutoff(t *testing.T) {
	svc := admissionFixtures(t)

	inputs := []LineItemInput{
		{Quantity: 1, MealID: 10}, // always available
		{Quantity: 2, MealID: 11}, // week 11
		{Quantity: 1, MenuID: 20}, // week 11
	}

	if err := svc.Admit(context.Background(), inputs, admissionInstant, nil); err != nil {
		t.Fatalf("Admit failed: %v", err)
	}
}

func TestAdmitRejectsItemOutsideItsWindow(t *testing.T) {
	svc := admissionFixtures(t)

	// Meal 12 is only orderable in week 12; the instant is week 11.
	inputs := []LineItemInput{{Quantity: 1, MealID: 12}}

	err := svc.Admit(context.Background(), inputs, admissionInstant, nil)
	if !errors.Is(err, catalog.ErrNotAvailableForThisWeek) {
		t.Fatalf("got %v, want ErrNotAvailableForThisWeek", err)
	}

	var notAvail *catalog.NotAvailableError
	if !errors.As(err, &notAvail) {
		t.Fatalf("error should carry the item detail, got %T", err)
	}
	if notAvail.ItemID != 12 || notAvail.Week != 11 {
		t.Errorf("detail = item %d week %d, want item 12 week 11", notAvail.ItemID, notAvail.Week)
	}
}

func TestAdmitEnforcesStrictCutoff(t *testing.T) {
	svc := admissionFixtures(t)
	inputs := []LineItemInput{{Quantity: 1, MealID: 10}}
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("one second before is accepted", func(t *testing.T) {
		at := day.Add(10*time.Hour + 29*time.Minute + 59*time.Second)
		if err := svc.Admit(context.Background(), inputs, at, nil); err != nil {
			t.Errorf("Admit failed: %v", err)
		}
	})

	t.Run("exactly at the limit is rejected", func(t *testing.T) {
		at := day.Add(10*time.Hour + 30*time.Minute)
		err := svc.Admit(context.Background(), inputs, at, nil)
		if !errors.Is(err, ErrTimeOut) {
			t.Errorf("got %v, want ErrTimeOut", err)
		}
	})

	t.Run("after the limit is rejected", func(t *testing.T) {
		at := day.Add(14 * time.Hour)
		err := svc.Admit(context.Background(), inputs, at, nil)
		if !errors.Is(err, ErrTimeOut) {
			t.Errorf("got %v, want ErrTimeOut", err)
		}
	})
}

func TestAdmitSentinelSkipsChecksButResolvesItems(t *testing.T) {
	svc := admissionFixtures(t)
	skip := constraint.NoConstraintID
	afterCutoff := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("cutoff and availability bypassed", func(t *testing.T) {
		// Meal 12 is out of window and the instant is past the cutoff;
		// the -1 sentinel waives both rules.
		inputs := []LineItemInput{{Quantity: 1, MealID: 12}}
		if err := svc.Admit(context.Background(), inputs, afterCutoff, &skip); err != nil {
			t.Errorf("Admit with sentinel failed: %v", err)
		}
	})

	t.Run("dangling reference still fails", func(t *testing.T) {
		inputs := []LineItemInput{{Quantity: 1, MealID: 999}}
		err := svc.Admit(context.Background(), inputs, afterCutoff, &skip)
		if !errors.Is(err, catalog.ErrMealNotFound) {
			t.Errorf("got %v, want ErrMealNotFound", err)
		}
	})
}

func TestAdmitUnknownConstraint(t *testing.T) {
	svc := admissionFixtures(t)
	unknown := 42

	err := svc.Admit(context.Background(), []LineItemInput{{Quantity: 1, MealID: 10}}, admissionInstant, &unknown)
	if !errors.Is(err, constraint.ErrConstraintNotFound) {
		t.Errorf("got %v, want ErrConstraintNotFound", err)
	}
}

func TestAdmitUnknownMenu(t *testing.T) {
	svc := admissionFixtures(t)

	err := svc.Admit(context.Background(), []LineItemInput{{Quantity: 1, MenuID: 999}}, admissionInstant, nil)
	if !errors.Is(err, catalog.ErrMenuNotFound) {
		t.Errorf("got %v, want ErrMenuNotFound", err)
	}
}
