package api

import (
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/health"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/middleware"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/user"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/config"

	"github.com/gin-gonic/gin"
)

// Router assembles the gin engine, the middleware chain and every
// controller's routes.
type Router struct {
	engine            *gin.Engine
	config            *config.Config
	healthController  *health.Controller
	userController    *user.Controller
	orderController   *order.Controller
	catalogController *catalog.Controller
}

func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	userController *user.Controller,
	orderController *order.Controller,
	catalogController *catalog.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: the request ID must exist before
	// anything logs.
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:            engine,
		config:            cfg,
		healthController:  healthController,
		userController:    userController,
		orderController:   orderController,
		catalogController: catalogController,
	}
}

// SetupRoutes registers every route under /api/v1.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.userController.RegisterRoutes(apiGroup)
		r.orderController.RegisterRoutes(apiGroup)
		r.catalogController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
