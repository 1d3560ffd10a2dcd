package catalog

import (
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
)

// Item is the common view the order workflow and the price engine take
// of a meal or a menu: identity, live duty-free price, and availability.
type Item interface {
	ID() int
	Label() string
	PriceDutyFree() shared.Money
	Availability() WindowSet
}

// Meal is a single dish. Orders reference it by identity only, so a
// later price change is reflected in any total computed afterwards.
type Meal struct {
	id           int
	label        string
	description  string
	price        shared.Money
	category     Category
	availability WindowSet
	createdAt    time.Time
	updatedAt    time.Time
}

// NewMeal builds a meal. The id is assigned by the repository on save.
func NewMeal(label, description string, price shared.Money, category Category, availability WindowSet) (*Meal, error) {
	if label == "" {
		return nil, shared.NewValidationError("meal", "label", "meal label is required")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("meal", "price_duty_free", "meal price cannot be negative")
	}
	now := time.Now()
	return &Meal{
		label:        label,
		description:  description,
		price:        price,
		category:     category,
		availability: availability,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (m *Meal) ID() int                     { return m.id }
func (m *Meal) Label() string               { return m.label }
func (m *Meal) Description() string         { return m.description }
func (m *Meal) PriceDutyFree() shared.Money { return m.price }
func (m *Meal) Category() Category          { return m.category }
func (m *Meal) Availability() WindowSet     { return m.availability }
func (m *Meal) CreatedAt() time.Time        { return m.createdAt }
func (m *Meal) UpdatedAt() time.Time        { return m.updatedAt }

// AssignID sets the storage-assigned identity after the first save.
// Repository use only; assigning twice is a programming error.
func (m *Meal) AssignID(id int) {
	if m.id == 0 {
		m.id = id
	}
}

// MealReconstructionDTO rebuilds a Meal from storage. Repository use only.
type MealReconstructionDTO struct {
	ID           int
	Label        string
	Description  string
	Price        shared.Money
	Category     Category
	Availability WindowSet
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RebuildMealFromDTO reconstructs a Meal without re-running creation rules.
func RebuildMealFromDTO(dto MealReconstructionDTO) *Meal {
	return &Meal{
		id:           dto.ID,
		label:        dto.Label,
		description:  dto.Description,
		price:        dto.Price,
		category:     dto.Category,
		availability: dto.Availability,
		createdAt:    dto.CreatedAt,
		updatedAt:    dto.UpdatedAt,
	}
}

// Menu is a fixed-price combination of dishes. It carries its own
// duty-free price and availability windows, independent of the meals
// it lists.
type Menu struct {
	id           int
	label        string
	description  string
	price        shared.Money
	availability WindowSet
	mealIDs      []int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewMenu builds a menu referencing its composed meals by identity.
func NewMenu(label, description string, price shared.Money, availability WindowSet, mealIDs []int) (*Menu, error) {
	if label == "" {
		return nil, shared.NewValidationError("menu", "label", "menu label is required")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("menu", "price_duty_free", "menu price cannot be negative")
	}
	now := time.Now()
	return &Menu{
		label:        label,
		description:  description,
		price:        price,
		availability: availability,
		mealIDs:      append([]int(nil), mealIDs...),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (m *Menu) ID() int                     { return m.id }
func (m *Menu) Label() string               { return m.label }
func (m *Menu) Description() string         { return m.description }
func (m *Menu) PriceDutyFree() shared.Money { return m.price }
func (m *Menu) Availability() WindowSet     { return m.availability }
func (m *Menu) CreatedAt() time.Time        { return m.createdAt }
func (m *Menu) UpdatedAt() time.Time        { return m.updatedAt }

// MealIDs returns a copy of the composed meal identities.
func (m *Menu) MealIDs() []int {
	return append([]int(nil), m.mealIDs...)
}

// AssignID sets the storage-assigned identity after the first save.
// Repository use only.
func (m *Menu) AssignID(id int) {
	if m.id == 0 {
		m.id = id
	}
}

// MenuReconstructionDTO rebuilds a Menu from storage. Repository use only.
type MenuReconstructionDTO struct {
	ID           int
	Label        string
	Description  string
	Price        shared.Money
	Availability WindowSet
	MealIDs      []int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RebuildMenuFromDTO reconstructs a Menu without re-running creation rules.
func RebuildMenuFromDTO(dto MenuReconstructionDTO) *Menu {
	return &Menu{
		id:           dto.ID,
		label:        dto.Label,
		description:  dto.Description,
		price:        dto.Price,
		availability: dto.Availability,
		mealIDs:      append([]int(nil), dto.MealIDs...),
		createdAt:    dto.CreatedAt,
		updatedAt:    dto.UpdatedAt,
	}
}

// Compile-time checks that both entities satisfy the Item view.
var (
	_ Item = (*Meal)(nil)
	_ Item = (*Menu)(nil)
)
