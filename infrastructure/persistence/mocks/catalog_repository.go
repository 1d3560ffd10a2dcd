package mocks

import (
	"context"
	"sync"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
)

// MockCatalogRepository In-memory implementation of the catalog.
type MockCatalogRepository struct {
	meals      map[int]*catalog.Meal
	menus      map[int]*catalog.Menu
	nextMealID int
	nextMenuID int
	mu         sync.RWMutex
}

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		meals:      make(map[int]*catalog.Meal),
		menus:      make(map[int]*catalog.Menu),
		nextMealID: 1,
		nextMenuID: 1,
	}
}

func (r *MockCatalogRepository) FindMealByID(ctx context.Context, id int) (*catalog.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meal, exists := r.meals[id]
	if !exists {
		return nil, catalog.NewMealNotFoundError(id)
	}
	return meal, nil
}

func (r *MockCatalogRepository) FindMenuByID(ctx context.Context, id int) (*catalog.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menu, exists := r.menus[id]
	if !exists {
		return nil, catalog.NewMenuNotFoundError(id)
	}
	return menu, nil
}

func (r *MockCatalogRepository) FindMealsAvailableFor(ctx context.Context, week, day int) ([]*catalog.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var meals []*catalog.Meal
	for _, meal := range r.meals {
		if meal.Availability().AvailableFor(week, day) {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

func (r *MockCatalogRepository) FindMenusAvailableFor(ctx context.Context, week, day int) ([]*catalog.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var menus []*catalog.Menu
	for _, menu := range r.menus {
		if menu.Availability().AvailableFor(week, day) {
			menus = append(menus, menu)
		}
	}
	return menus, nil
}

func (r *MockCatalogRepository) SaveMeal(ctx context.Context, meal *catalog.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meal.ID() == 0 {
		meal.AssignID(r.nextMealID)
		r.nextMealID++
	}
	r.meals[meal.ID()] = meal
	return nil
}

func (r *MockCatalogRepository) SaveMenu(ctx context.Context, menu *catalog.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if menu.ID() == 0 {
		menu.AssignID(r.nextMenuID)
		r.nextMenuID++
	}
	r.menus[menu.ID()] = menu
	return nil
}

var _ catalog.Repository = (*MockCatalogRepository)(nil)
