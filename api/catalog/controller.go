// Package catalog exposes the meal and menu catalog over HTTP: admin
// creation plus the "what can I order this week" listings.
package catalog

import (
	"net/http"
	"strconv"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/ctxutil"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/response"
	catalogapp "github.com/BoobaLeBricoleur/LaCantiniere-sub001/application/catalog"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalogService *catalogapp.ApplicationService
}

func NewController(catalogService *catalogapp.ApplicationService) *Controller {
	return &Controller{
		catalogService: catalogService,
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	mealGroup := router.Group("/meals")
	{
		mealGroup.POST("", c.CreateMeal)
		mealGroup.GET("/:id", c.GetMeal)
		mealGroup.GET("", c.ListMeals)
	}

	menuGroup := router.Group("/menus")
	{
		menuGroup.POST("", c.CreateMenu)
		menuGroup.GET("/:id", c.GetMenu)
		menuGroup.GET("", c.ListMenus)
	}
}

// CreateMeal stores a new meal with its availability windows.
// POST /api/v1/meals
func (c *Controller) CreateMeal(ctx *gin.Context) {
	var req catalogapp.CreateMealRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	meal, err := c.catalogService.CreateMeal(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, meal, "meal created successfully")
}

// GetMeal returns one meal by ID.
// GET /api/v1/meals/:id
func (c *Controller) GetMeal(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		response.HandleError(ctx, err, "meal ID must be an integer", http.StatusBadRequest)
		return
	}

	meal, err := c.catalogService.GetMeal(ctxutil.WithRequestID(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, meal, "meal retrieved successfully")
}

// ListMeals returns the meals orderable for a slot; without query
// parameters the current week and day apply.
// GET /api/v1/meals?week=10&day=2
func (c *Controller) ListMeals(ctx *gin.Context) {
	var q catalogapp.SlotQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.HandleError(ctx, err, "invalid query parameters", http.StatusBadRequest)
		return
	}

	meals, err := c.catalogService.ListMealsForSlot(ctxutil.WithRequestID(ctx), q)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, meals, "meals retrieved successfully")
}

// CreateMenu stores a new menu referencing existing meals.
// POST /api/v1/menus
func (c *Controller) CreateMenu(ctx *gin.Context) {
	var req catalogapp.CreateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	menu, err := c.catalogService.CreateMenu(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, menu, "menu created successfully")
}

// GetMenu returns one menu by ID.
// GET /api/v1/menus/:id
func (c *Controller) GetMenu(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		response.HandleError(ctx, err, "menu ID must be an integer", http.StatusBadRequest)
		return
	}

	menu, err := c.catalogService.GetMenu(ctxutil.WithRequestID(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, menu, "menu retrieved successfully")
}

// ListMenus returns the menus orderable for a slot.
// GET /api/v1/menus?week=10&day=2
func (c *Controller) ListMenus(ctx *gin.Context) {
	var q catalogapp.SlotQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.HandleError(ctx, err, "invalid query parameters", http.StatusBadRequest)
		return
	}

	menus, err := c.catalogService.ListMenusForSlot(ctxutil.WithRequestID(ctx), q)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, menus, "menus retrieved successfully")
}
