// Package catalog exposes the browse and admin surface of the meal and
// menu catalog: create items with availability windows, fetch them by
// id, and list what is orderable for a given or current week/day slot.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"go.uber.org/zap"
)

// ApplicationService coordinates catalog reads and writes.
type ApplicationService struct {
	repo  catalog.Repository
	uow   shared.UnitOfWork
	clock shared.Clock
	log   *zap.Logger
}

func NewApplicationService(repo catalog.Repository, uow shared.UnitOfWork, clock shared.Clock, log *zap.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, uow: uow, clock: clock, log: log}
}

// CreateMealRequest is the meal admin input. Availability is the
// compact window encoding, e.g. "5,10:2"; empty means always available.
type CreateMealRequest struct {
	Label        string `json:"label" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	Category     uint8  `json:"category"`
	Availability string `json:"availability"`
}

// CreateMenuRequest is the menu admin input.
type CreateMenuRequest struct {
	Label        string `json:"label" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	Availability string `json:"availability"`
	MealIDs      []int  `json:"meal_ids"`
}

// SlotQuery selects a week/day pair. Zero Week means the current slot;
// zero Day means any day of the week.
type SlotQuery struct {
	Week int `form:"week"`
	Day  int `form:"day"`
}

// MealResponse is the serializable meal snapshot.
type MealResponse struct {
	ID           int       `json:"id"`
	Label        string    `json:"label"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price_duty_free"`
	Category     string    `json:"category"`
	Availability string    `json:"availability,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MenuResponse is the serializable menu snapshot.
type MenuResponse struct {
	ID           int       `json:"id"`
	Label        string    `json:"label"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price_duty_free"`
	Availability string    `json:"availability,omitempty"`
	MealIDs      []int     `json:"meal_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateMeal stores a new meal. Malformed availability tokens are
// logged and dropped rather than rejecting the whole request.
func (s *ApplicationService) CreateMeal(ctx context.Context, req CreateMealRequest) (*MealResponse, error) {
	price, err := shared.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, err
	}
	windows := s.parseWindows("meal", req.Label, req.Availability)

	var meal *catalog.Meal
	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		meal, err = catalog.NewMeal(req.Label, req.Description, price, catalog.CategoryFromWire(int(req.Category)), windows)
		if err != nil {
			return err
		}
		return s.repo.SaveMeal(ctx, meal)
	})
	if err != nil {
		return nil, err
	}
	return toMealResponse(meal), nil
}

// CreateMenu stores a new menu referencing existing meals.
func (s *ApplicationService) CreateMenu(ctx context.Context, req CreateMenuRequest) (*MenuResponse, error) {
	price, err := shared.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, err
	}
	windows := s.parseWindows("menu", req.Label, req.Availability)

	var menu *catalog.Menu
	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		for _, mealID := range req.MealIDs {
			if _, err := s.repo.FindMealByID(ctx, mealID); err != nil {
				return err
			}
		}
		var err error
		menu, err = catalog.NewMenu(req.Label, req.Description, price, windows, req.MealIDs)
		if err != nil {
			return err
		}
		return s.repo.SaveMenu(ctx, menu)
	})
	if err != nil {
		return nil, err
	}
	return toMenuResponse(menu), nil
}

// GetMeal returns one meal snapshot.
func (s *ApplicationService) GetMeal(ctx context.Context, id int) (*MealResponse, error) {
	meal, err := s.repo.FindMealByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMealResponse(meal), nil
}

// GetMenu returns one menu snapshot.
func (s *ApplicationService) GetMenu(ctx context.Context, id int) (*MenuResponse, error) {
	menu, err := s.repo.FindMenuByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMenuResponse(menu), nil
}

// ListMealsForSlot returns the meals orderable for the queried slot.
func (s *ApplicationService) ListMealsForSlot(ctx context.Context, q SlotQuery) ([]*MealResponse, error) {
	week, day, err := s.resolveSlot(q)
	if err != nil {
		return nil, err
	}
	meals, err := s.repo.FindMealsAvailableFor(ctx, week, day)
	if err != nil {
		return nil, err
	}
	responses := make([]*MealResponse, len(meals))
	for i, m := range meals {
		responses[i] = toMealResponse(m)
	}
	return responses, nil
}

// ListMenusForSlot returns the menus orderable for the queried slot.
func (s *ApplicationService) ListMenusForSlot(ctx context.Context, q SlotQuery) ([]*MenuResponse, error) {
	week, day, err := s.resolveSlot(q)
	if err != nil {
		return nil, err
	}
	menus, err := s.repo.FindMenusAvailableFor(ctx, week, day)
	if err != nil {
		return nil, err
	}
	responses := make([]*MenuResponse, len(menus))
	for i, m := range menus {
		responses[i] = toMenuResponse(m)
	}
	return responses, nil
}

// resolveSlot validates an explicit week/day query or derives the
// current slot from the clock when week is unset.
func (s *ApplicationService) resolveSlot(q SlotQuery) (week, day int, err error) {
	if q.Week == 0 {
		week, day = catalog.SlotOf(s.clock.Now())
		return week, day, nil
	}
	if q.Week < catalog.MinWeek || q.Week > catalog.MaxWeek {
		return 0, 0, shared.NewValidationError("catalog", "week",
			fmt.Sprintf("week %d out of range [%d,%d]", q.Week, catalog.MinWeek, catalog.MaxWeek))
	}
	if q.Day != catalog.AnyDay && (q.Day < catalog.MinDay || q.Day > catalog.MaxDay) {
		return 0, 0, shared.NewValidationError("catalog", "day",
			fmt.Sprintf("day %d out of range [%d,%d]", q.Day, catalog.MinDay, catalog.MaxDay))
	}
	return q.Week, q.Day, nil
}

func (s *ApplicationService) parseWindows(kind, label, encoded string) catalog.WindowSet {
	windows, dropped := catalog.ParseWindowSet(encoded)
	for _, token := range dropped {
		s.log.Warn("dropping malformed availability token",
			zap.String("kind", kind),
			zap.String("label", label),
			zap.String("token", token))
	}
	return windows
}

func toMealResponse(m *catalog.Meal) *MealResponse {
	return &MealResponse{
		ID:           m.ID(),
		Label:        m.Label(),
		Description:  m.Description(),
		Price:        m.PriceDutyFree().String(),
		Category:     m.Category().String(),
		Availability: m.Availability().String(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}

func toMenuResponse(m *catalog.Menu) *MenuResponse {
	return &MenuResponse{
		ID:           m.ID(),
		Label:        m.Label(),
		Description:  m.Description(),
		Price:        m.PriceDutyFree().String(),
		Availability: m.Availability().String(),
		MealIDs:      m.MealIDs(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}
