package po

import (
	"time"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"

	"github.com/shopspring/decimal"
)

// MealPO Meal persistence object. Availability holds the compact
// window encoding; an empty string means always available.
type MealPO struct {
	ID           int             `gorm:"primaryKey;autoIncrement"`
	Label        string          `gorm:"size:200;not null"`
	Description  string          `gorm:"size:2000"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category     uint8           `gorm:"not null;default:0"`
	Availability string          `gorm:"size:1000"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

func (MealPO) TableName() string {
	return "meals"
}

// MenuPO Menu persistence object. Composed meal ids live in the
// menu_meals join table, managed by the repository without GORM
// associations.
type MenuPO struct {
	ID           int             `gorm:"primaryKey;autoIncrement"`
	Label        string          `gorm:"size:200;not null"`
	Description  string          `gorm:"size:2000"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Availability string          `gorm:"size:1000"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

func (MenuPO) TableName() string {
	return "menus"
}

// MenuMealPO links a menu to one composed meal.
type MenuMealPO struct {
	MenuID int `gorm:"primaryKey;autoIncrement:false"`
	MealID int `gorm:"primaryKey;autoIncrement:false"`
}

func (MenuMealPO) TableName() string {
	return "menu_meals"
}

func FromMealDomain(m *catalog.Meal) *MealPO {
	return &MealPO{
		ID:           m.ID(),
		Label:        m.Label(),
		Description:  m.Description(),
		Price:        m.PriceDutyFree().Amount(),
		Category:     uint8(m.Category().Wire()),
		Availability: m.Availability().String(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}

// ToDomain converts the row back. Malformed availability tokens are
// dropped permissively and returned for the caller to log.
func (po *MealPO) ToDomain() (*catalog.Meal, []string) {
	windows, dropped := catalog.ParseWindowSet(po.Availability)
	meal := catalog.RebuildMealFromDTO(catalog.MealReconstructionDTO{
		ID:           po.ID,
		Label:        po.Label,
		Description:  po.Description,
		Price:        shared.NewMoney(po.Price),
		Category:     catalog.CategoryFromWire(int(po.Category)),
		Availability: windows,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	})
	return meal, dropped
}

func FromMenuDomain(m *catalog.Menu) (*MenuPO, []MenuMealPO) {
	menuPO := &MenuPO{
		ID:           m.ID(),
		Label:        m.Label(),
		Description:  m.Description(),
		Price:        m.PriceDutyFree().Amount(),
		Availability: m.Availability().String(),
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}

	mealIDs := m.MealIDs()
	links := make([]MenuMealPO, len(mealIDs))
	for i, mealID := range mealIDs {
		links[i] = MenuMealPO{MenuID: m.ID(), MealID: mealID}
	}
	return menuPO, links
}

// ToDomain converts the row back, with the same permissive window
// handling as meals.
func (po *MenuPO) ToDomain(mealIDs []int) (*catalog.Menu, []string) {
	windows, dropped := catalog.ParseWindowSet(po.Availability)
	menu := catalog.RebuildMenuFromDTO(catalog.MenuReconstructionDTO{
		ID:           po.ID,
		Label:        po.Label,
		Description:  po.Description,
		Price:        shared.NewMoney(po.Price),
		Availability: windows,
		MealIDs:      mealIDs,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	})
	return menu, dropped
}
