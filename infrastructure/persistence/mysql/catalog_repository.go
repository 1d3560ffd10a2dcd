package mysql

import (
	"context"
	"errors"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mysql/po"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogRepository MySQL/GORM implementation of the meal/menu catalog.
// Availability filtering happens in memory: the window encoding is an
// opaque string to SQL, and the catalog is small.
type CatalogRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCatalogRepository(db *gorm.DB, log *zap.Logger) *CatalogRepository {
	return &CatalogRepository{db: db, log: log}
}

func (r *CatalogRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *CatalogRepository) FindMealByID(ctx context.Context, id int) (*catalog.Meal, error) {
	var mealPO po.MealPO
	result := r.getDB(ctx).First(&mealPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.NewMealNotFoundError(id)
		}
		return nil, result.Error
	}

	meal, dropped := mealPO.ToDomain()
	r.logDropped("meal", mealPO.ID, dropped)
	return meal, nil
}

func (r *CatalogRepository) FindMenuByID(ctx context.Context, id int) (*catalog.Menu, error) {
	db := r.getDB(ctx)

	var menuPO po.MenuPO
	result := db.First(&menuPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.NewMenuNotFoundError(id)
		}
		return nil, result.Error
	}

	mealIDs, err := r.loadMenuMealIDs(db, menuPO.ID)
	if err != nil {
		return nil, err
	}

	menu, dropped := menuPO.ToDomain(mealIDs)
	r.logDropped("menu", menuPO.ID, dropped)
	return menu, nil
}

func (r *CatalogRepository) FindMealsAvailableFor(ctx context.Context, week, day int) ([]*catalog.Meal, error) {
	var mealPOs []po.MealPO
	if err := r.getDB(ctx).Order("id").Find(&mealPOs).Error; err != nil {
		return nil, err
	}

	meals := make([]*catalog.Meal, 0, len(mealPOs))
	for _, mealPO := range mealPOs {
		meal, dropped := mealPO.ToDomain()
		r.logDropped("meal", mealPO.ID, dropped)
		if meal.Availability().AvailableFor(week, day) {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

func (r *CatalogRepository) FindMenusAvailableFor(ctx context.Context, week, day int) ([]*catalog.Menu, error) {
	db := r.getDB(ctx)

	var menuPOs []po.MenuPO
	if err := db.Order("id").Find(&menuPOs).Error; err != nil {
		return nil, err
	}

	menus := make([]*catalog.Menu, 0, len(menuPOs))
	for _, menuPO := range menuPOs {
		mealIDs, err := r.loadMenuMealIDs(db, menuPO.ID)
		if err != nil {
			return nil, err
		}
		menu, dropped := menuPO.ToDomain(mealIDs)
		r.logDropped("menu", menuPO.ID, dropped)
		if menu.Availability().AvailableFor(week, day) {
			menus = append(menus, menu)
		}
	}
	return menus, nil
}

func (r *CatalogRepository) SaveMeal(ctx context.Context, meal *catalog.Meal) error {
	db := r.getDB(ctx)
	mealPO := po.FromMealDomain(meal)

	if mealPO.ID == 0 {
		if err := db.Create(mealPO).Error; err != nil {
			return err
		}
		meal.AssignID(mealPO.ID)
		return nil
	}
	return db.Save(mealPO).Error
}

func (r *CatalogRepository) SaveMenu(ctx context.Context, menu *catalog.Menu) error {
	save := func(tx *gorm.DB) error {
		menuPO, _ := po.FromMenuDomain(menu)

		if menuPO.ID == 0 {
			if err := tx.Create(menuPO).Error; err != nil {
				return err
			}
			menu.AssignID(menuPO.ID)
		} else {
			if err := tx.Save(menuPO).Error; err != nil {
				return err
			}
		}

		// Join rows are rebuilt wholesale, now that the id is known.
		if err := tx.Where("menu_id = ?", menu.ID()).Delete(&po.MenuMealPO{}).Error; err != nil {
			return err
		}
		_, links := po.FromMenuDomain(menu)
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	}

	if tx := persistence.TxFromContext(ctx); tx != nil {
		return save(tx)
	}
	return r.db.WithContext(ctx).Transaction(save)
}

func (r *CatalogRepository) loadMenuMealIDs(db *gorm.DB, menuID int) ([]int, error) {
	var links []po.MenuMealPO
	if err := db.Where("menu_id = ?", menuID).Order("meal_id").Find(&links).Error; err != nil {
		return nil, err
	}
	mealIDs := make([]int, len(links))
	for i, link := range links {
		mealIDs[i] = link.MealID
	}
	return mealIDs, nil
}

// logDropped reports availability tokens that failed to parse; the
// stored set degrades permissively instead of failing the lookup.
func (r *CatalogRepository) logDropped(kind string, id int, dropped []string) {
	for _, token := range dropped {
		r.log.Warn("dropping malformed availability token",
			zap.String("kind", kind),
			zap.Int("id", id),
			zap.String("token", token))
	}
}

var _ catalog.Repository = (*CatalogRepository)(nil)
