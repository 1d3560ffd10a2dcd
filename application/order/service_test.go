package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mocks"
)

// A Tuesday morning in ISO week 11, well before the 10:30 cutoff.
var placementInstant = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type serviceFixture struct {
	service     *ApplicationService
	orders      *mocks.MockOrderRepository
	users       *mocks.MockUserRepository
	catalog     *mocks.MockCatalogRepository
	constraints *mocks.MockConstraintRepository
	uow         *mocks.MockUnitOfWork

	owner   *user.User
	mealID  int // 5.00, no availability restriction
	weekID  int // 6.00, week 11 only
	otherID int // 4.00, week 12 only
	menuID  int // 12.50, no availability restriction
}

func newServiceFixture(t *testing.T, clock shared.Clock) *serviceFixture {
	t.Helper()
	ctx := context.Background()

	f := &serviceFixture{
		orders:      mocks.NewMockOrderRepository(),
		users:       mocks.NewMockUserRepository(),
		catalog:     mocks.NewMockCatalogRepository(),
		constraints: mocks.NewMockConstraintRepository(),
		uow:         mocks.NewMockUnitOfWork(),
	}
	f.constraints.SeedDefault()

	owner, err := user.NewUser("Alice Martin", "alice@example.com", user.SexWoman)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if err := f.users.Save(ctx, owner); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if err := owner.Credit(shared.MustMoney("100.00")); err != nil {
		t.Fatalf("credit wallet: %v", err)
	}
	f.owner = owner

	f.mealID = f.seedMeal(t, "roast chicken", "5.00", "")
	f.weekID = f.seedMeal(t, "week eleven special", "6.00", "11")
	f.otherID = f.seedMeal(t, "week twelve special", "4.00", "12")
	f.menuID = f.seedMenu(t, "worker lunch", "12.50", "", []int{f.mealID, f.weekID})

	f.service = NewApplicationService(f.orders, f.users, f.catalog, f.constraints, f.uow, clock)
	return f
}

func (f *serviceFixture) seedMeal(t *testing.T, label, price, windows string) int {
	t.Helper()
	set, dropped := catalog.ParseWindowSet(windows)
	if len(dropped) > 0 {
		t.Fatalf("bad fixture windows %q: %v", windows, dropped)
	}
	meal, err := catalog.NewMeal(label, "", shared.MustMoney(price), catalog.CategoryUnknown, set)
	if err != nil {
		t.Fatalf("NewMeal %s: %v", label, err)
	}
	if err := f.catalog.SaveMeal(context.Background(), meal); err != nil {
		t.Fatalf("save meal %s: %v", label, err)
	}
	return meal.ID()
}

func (f *serviceFixture) seedMenu(t *testing.T, label, price, windows string, mealIDs []int) int {
	t.Helper()
	set, dropped := catalog.ParseWindowSet(windows)
	if len(dropped) > 0 {
		t.Fatalf("bad fixture windows %q: %v", windows, dropped)
	}
	menu, err := catalog.NewMenu(label, "", shared.MustMoney(price), set, mealIDs)
	if err != nil {
		t.Fatalf("NewMenu %s: %v", label, err)
	}
	if err := f.catalog.SaveMenu(context.Background(), menu); err != nil {
		t.Fatalf("save menu %s: %v", label, err)
	}
	return menu.ID()
}

// twoMealRequest totals 16.00 duty free, 19.20 with the default 20% VAT.
func (f *serviceFixture) twoMealRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		UserID: f.owner.ID(),
		Items: []LineItemRequest{
			{Quantity: 2, MealID: f.mealID},
			{Quantity: 1, MealID: f.weekID},
		},
	}
}

func TestPlaceOrderCreatesOrderAndCollectsEvent(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	resp, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		UserID: f.owner.ID(),
		Items: []LineItemRequest{
			{Quantity: 2, MealID: f.mealID},
			{Quantity: 1, MenuID: f.menuID},
		},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if resp.Status != "CREATED" {
		t.Errorf("status = %s, want CREATED", resp.Status)
	}
	if resp.UserID != f.owner.ID() {
		t.Errorf("user id = %d, want %d", resp.UserID, f.owner.ID())
	}
	if len(resp.Items) != 2 {
		t.Fatalf("item count = %d, want 2", len(resp.Items))
	}
	if !resp.CreatedAt.Equal(placementInstant) {
		t.Errorf("created at = %v, want %v", resp.CreatedAt, placementInstant)
	}

	if _, err := f.orders.FindByID(ctx, resp.ID); err != nil {
		t.Errorf("order not persisted: %v", err)
	}

	var placed bool
	for _, ev := range f.uow.Collected {
		if ev.EventName() == "order.placed" {
			placed = true
		}
	}
	if !placed {
		t.Error("no order.placed event collected")
	}
}

func TestPlaceOrderRejectsItemOutsideItsWindow(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	_, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		UserID: f.owner.ID(),
		Items: []LineItemRequest{
			{Quantity: 1, MealID: f.mealID},
			{Quantity: 1, MealID: f.otherID},
		},
	})
	if !errors.Is(err, catalog.ErrNotAvailableForThisWeek) {
		t.Fatalf("err = %v, want ErrNotAvailableForThisWeek", err)
	}

	var na *catalog.NotAvailableError
	if !errors.As(err, &na) {
		t.Fatalf("err %v does not carry NotAvailableError", err)
	}
	if na.ItemID != f.otherID || na.Week != 11 {
		t.Errorf("failure names item %d week %d, want item %d week 11", na.ItemID, na.Week, f.otherID)
	}

	stored, err := f.orders.FindBySpecification(ctx, nil)
	if err != nil {
		t.Fatalf("FindBySpecification: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("rejected order was persisted")
	}
}

func TestPlaceOrderCutoffIsStrict(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		at      time.Time
		allowed bool
	}{
		{"one second before cutoff", day.Add(10*time.Hour + 29*time.Minute + 59*time.Second), true},
		{"exactly at cutoff", day.Add(10*time.Hour + 30*time.Minute), false},
		{"afternoon", day.Add(14 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t, shared.FixedClock{Instant: tc.at})
			_, err := f.service.PlaceOrder(context.Background(), f.twoMealRequest())
			if tc.allowed && err != nil {
				t.Fatalf("PlaceOrder: %v", err)
			}
			if !tc.allowed && !errors.Is(err, order.ErrTimeOut) {
				t.Fatalf("err = %v, want ErrTimeOut", err)
			}
		})
	}
}

func TestPlaceOrderSentinelConstraintSkipsChecks(t *testing.T) {
	afternoon := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	f := newServiceFixture(t, shared.FixedClock{Instant: afternoon})
	waive := -1

	resp, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{
		UserID:       f.owner.ID(),
		ConstraintID: &waive,
		Items:        []LineItemRequest{{Quantity: 1, MealID: f.otherID}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder with -1 constraint: %v", err)
	}
	if resp.Status != "CREATED" {
		t.Errorf("status = %s, want CREATED", resp.Status)
	}
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})

	_, err := f.service.PlaceOrder(context.Background(), PlaceOrderRequest{
		UserID: 999,
		Items:  []LineItemRequest{{Quantity: 1, MealID: f.mealID}},
	})
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeliverAndPayDebitsWallet(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	placed, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	delivered, err := f.service.DeliverAndPay(ctx, DeliverOrderRequest{OrderID: placed.ID})
	if err != nil {
		t.Fatalf("DeliverAndPay: %v", err)
	}
	if delivered.Status != "DELIVERED" {
		t.Errorf("status = %s, want DELIVERED", delivered.Status)
	}

	// 16.00 duty free + 20% VAT leaves 100.00 - 19.20.
	if got := f.owner.Wallet().String(); got != "80.80" {
		t.Errorf("wallet = %s, want 80.80", got)
	}

	var amount string
	for _, ev := range f.uow.Collected {
		if de, ok := ev.(*order.OrderDeliveredEvent); ok {
			amount = de.Amount().String()
		}
	}
	if amount != "19.20" {
		t.Errorf("delivered event amount = %q, want 19.20", amount)
	}
}

func TestDeliverAndPayLackOfMoneyLeavesOrderCreated(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	// 50 * 5.00 * 1.20 = 300.00, far beyond the 100.00 wallet.
	placed, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		UserID: f.owner.ID(),
		Items:  []LineItemRequest{{Quantity: 50, MealID: f.mealID}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	_, err = f.service.DeliverAndPay(ctx, DeliverOrderRequest{OrderID: placed.ID})
	if !errors.Is(err, user.ErrLackOfMoney) {
		t.Fatalf("err = %v, want ErrLackOfMoney", err)
	}

	after, err := f.service.GetOrder(ctx, placed.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if after.Status != "CREATED" {
		t.Errorf("status after failed delivery = %s, want CREATED", after.Status)
	}
	if got := f.owner.Wallet().String(); got != "100.00" {
		t.Errorf("wallet after failed delivery = %s, want 100.00", got)
	}
}

func TestTerminalStatesRejectFurtherTransitions(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	canceled, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.service.CancelOrder(ctx, canceled.ID); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if _, err := f.service.DeliverAndPay(ctx, DeliverOrderRequest{OrderID: canceled.ID}); !errors.Is(err, order.ErrOrderCanceled) {
		t.Errorf("deliver after cancel: err = %v, want ErrOrderCanceled", err)
	}
	if _, err := f.service.CancelOrder(ctx, canceled.ID); !errors.Is(err, order.ErrOrderCanceled) {
		t.Errorf("double cancel: err = %v, want ErrOrderCanceled", err)
	}

	delivered, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.service.DeliverAndPay(ctx, DeliverOrderRequest{OrderID: delivered.ID}); err != nil {
		t.Fatalf("DeliverAndPay: %v", err)
	}
	if _, err := f.service.CancelOrder(ctx, delivered.ID); !errors.Is(err, order.ErrOrderDelivered) {
		t.Errorf("cancel after delivery: err = %v, want ErrOrderDelivered", err)
	}
	if _, err := f.service.DeliverAndPay(ctx, DeliverOrderRequest{OrderID: delivered.ID}); !errors.Is(err, order.ErrOrderDelivered) {
		t.Errorf("double delivery: err = %v, want ErrOrderDelivered", err)
	}
}

func TestUpdateOrderReplacesLineItems(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	placed, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		UserID: f.owner.ID(),
		Items:  []LineItemRequest{{Quantity: 1, MealID: f.mealID}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	updated, err := f.service.UpdateOrder(ctx, UpdateOrderRequest{
		OrderID: placed.ID,
		Items:   []LineItemRequest{{Quantity: 3, MealID: f.weekID}},
	})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if updated.Status != "CREATED" {
		t.Errorf("status = %s, want CREATED", updated.Status)
	}
	if len(updated.Items) != 1 || updated.Items[0].MealID != f.weekID || updated.Items[0].Quantity != 3 {
		t.Errorf("items = %+v, want one line of 3x meal %d", updated.Items, f.weekID)
	}
}

func TestUpdateOrderAllowedOnTerminalStatus(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	placed, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.service.CancelOrder(ctx, placed.ID); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	updated, err := f.service.UpdateOrder(ctx, UpdateOrderRequest{
		OrderID: placed.ID,
		Items:   []LineItemRequest{{Quantity: 1, MealID: f.mealID}},
	})
	if err != nil {
		t.Fatalf("UpdateOrder on canceled order: %v", err)
	}
	if updated.Status != "CANCELED" {
		t.Errorf("status = %s, want CANCELED unchanged", updated.Status)
	}
	if len(updated.Items) != 1 {
		t.Errorf("item count = %d, want 1", len(updated.Items))
	}
}

func TestUpdateOrderReRunsCutoff(t *testing.T) {
	afternoon := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	f := newServiceFixture(t, shared.FixedClock{Instant: afternoon})
	ctx := context.Background()
	waive := -1

	placed, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		UserID:       f.owner.ID(),
		ConstraintID: &waive,
		Items:        []LineItemRequest{{Quantity: 1, MealID: f.mealID}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// Without the waiver the update instant is past the cutoff.
	_, err = f.service.UpdateOrder(ctx, UpdateOrderRequest{
		OrderID: placed.ID,
		Items:   []LineItemRequest{{Quantity: 2, MealID: f.mealID}},
	})
	if !errors.Is(err, order.ErrTimeOut) {
		t.Fatalf("err = %v, want ErrTimeOut", err)
	}
}

func TestComputePriceIsStableAcrossCalls(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	placed, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	first, err := f.service.ComputePrice(ctx, placed.ID, nil)
	if err != nil {
		t.Fatalf("ComputePrice: %v", err)
	}
	second, err := f.service.ComputePrice(ctx, placed.ID, nil)
	if err != nil {
		t.Fatalf("ComputePrice: %v", err)
	}
	if *first != *second {
		t.Errorf("quotes differ: %+v vs %+v", first, second)
	}
	if first.DutyFree != "16.00" || first.Inclusive != "19.20" {
		t.Errorf("quote = %+v, want 16.00 / 19.20", first)
	}

	after, err := f.service.GetOrder(ctx, placed.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if after.Status != "CREATED" {
		t.Errorf("pricing mutated status to %s", after.Status)
	}
}

func TestComputePriceUsesLiveCatalogState(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	placed, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		UserID: f.owner.ID(),
		Items:  []LineItemRequest{{Quantity: 2, MealID: f.mealID}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	before, err := f.service.ComputePrice(ctx, placed.ID, nil)
	if err != nil {
		t.Fatalf("ComputePrice: %v", err)
	}
	if before.DutyFree != "10.00" {
		t.Fatalf("duty free before price change = %s, want 10.00", before.DutyFree)
	}

	repriced := catalog.RebuildMealFromDTO(catalog.MealReconstructionDTO{
		ID:    f.mealID,
		Label: "roast chicken",
		Price: shared.MustMoney("7.00"),
	})
	if err := f.catalog.SaveMeal(ctx, repriced); err != nil {
		t.Fatalf("SaveMeal: %v", err)
	}

	after, err := f.service.ComputePrice(ctx, placed.ID, nil)
	if err != nil {
		t.Fatalf("ComputePrice: %v", err)
	}
	if after.DutyFree != "14.00" {
		t.Errorf("duty free after price change = %s, want 14.00", after.DutyFree)
	}
}

func TestSearchOrdersDefaultsToCreated(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	created, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	canceled, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.service.CancelOrder(ctx, canceled.ID); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	results, err := f.service.SearchOrders(ctx, SearchOrdersRequest{})
	if err != nil {
		t.Fatalf("SearchOrders: %v", err)
	}
	if len(results) != 1 || results[0].ID != created.ID {
		t.Errorf("default search returned %d orders, want only the created one", len(results))
	}

	status := "CANCELED"
	results, err = f.service.SearchOrders(ctx, SearchOrdersRequest{Status: &status})
	if err != nil {
		t.Fatalf("SearchOrders: %v", err)
	}
	if len(results) != 1 || results[0].ID != canceled.ID {
		t.Errorf("canceled search returned %d orders, want only the canceled one", len(results))
	}
}

func TestSearchOrdersRejectsBadInput(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	begin := placementInstant
	end := placementInstant.Add(-time.Hour)
	_, err := f.service.SearchOrders(ctx, SearchOrdersRequest{Begin: &begin, End: &end})
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("inverted range: err = %v, want ErrInvalidInput", err)
	}

	status := "SHIPPED"
	_, err = f.service.SearchOrders(ctx, SearchOrdersRequest{Status: &status})
	if !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("unknown status: err = %v, want ErrInvalidInput", err)
	}
}

func TestGetUserOrdersFiltersByOwner(t *testing.T) {
	f := newServiceFixture(t, shared.FixedClock{Instant: placementInstant})
	ctx := context.Background()

	other, err := user.NewUser("Bob Durand", "bob@example.com", user.SexMan)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if err := f.users.Save(ctx, other); err != nil {
		t.Fatalf("save user: %v", err)
	}

	mine, err := f.service.PlaceOrder(ctx, f.twoMealRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.service.PlaceOrder(ctx, PlaceOrderRequest{
		UserID: other.ID(),
		Items:  []LineItemRequest{{Quantity: 1, MealID: f.mealID}},
	}); err != nil {
		t.Fatalf("PlaceOrder for second user: %v", err)
	}

	results, err := f.service.GetUserOrders(ctx, f.owner.ID())
	if err != nil {
		t.Fatalf("GetUserOrders: %v", err)
	}
	if len(results) != 1 || results[0].ID != mine.ID {
		t.Errorf("got %d orders for owner, want exactly the one they placed", len(results))
	}
}
