package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api"
	apicatalog "github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/catalog"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/health"
	apiorder "github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/order"
	apiuser "github.com/BoobaLeBricoleur/LaCantiniere-sub001/api/user"
	catalogapp "github.com/BoobaLeBricoleur/LaCantiniere-sub001/application/catalog"
	orderapp "github.com/BoobaLeBricoleur/LaCantiniere-sub001/application/order"
	userapp "github.com/BoobaLeBricoleur/LaCantiniere-sub001/application/user"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/config"
	catalogdomain "github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/catalog"
	constraintdomain "github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/constraint"
	orderdomain "github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/order"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/shared"
	userdomain "github.com/BoobaLeBricoleur/LaCantiniere-sub001/domain/user"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mocks"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/mysql"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/infrastructure/persistence/retry"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder assembles the full application from configuration:
// persistence, application services, controllers, router, HTTP server.
type AppBuilder struct {
	cfg *config.Config
}

func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// repositories groups every persistence port the services need. The
// unit of work factory hands each service its own instance so event
// collection stays isolated per transaction scope.
type repositories struct {
	users       userdomain.Repository
	orders      orderdomain.Repository
	catalog     catalogdomain.Repository
	constraints constraintdomain.Repository
	newUow      func() shared.UnitOfWork
}

func (b *AppBuilder) Build() *App {
	if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	var (
		db    *gorm.DB
		sqlDB *sql.DB
		repos repositories
	)

	if b.cfg.Database.Type == "mysql" {
		db, sqlDB, repos = b.initMySQL()
	} else {
		repos = b.initMocks()
	}

	clock := shared.SystemClock()

	userService := userapp.NewApplicationService(repos.users, repos.newUow())
	orderService := orderapp.NewApplicationService(
		repos.orders, repos.users, repos.catalog, repos.constraints, repos.newUow(), clock)
	catalogService := catalogapp.NewApplicationService(repos.catalog, repos.newUow(), clock, logger.Get())

	router := api.NewRouter(
		b.cfg,
		health.NewController(b.cfg, sqlDB),
		apiuser.NewController(userService),
		apiorder.NewController(orderService),
		apicatalog.NewController(catalogService),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		router: router,
		server: server,
		db:     db,
	}
}

func (b *AppBuilder) initMySQL() (*gorm.DB, *sql.DB, repositories) {
	logger.Info("Using MySQL/GORM persistence layer")

	db, err := NewMySQLConfig(b.cfg).Connect()
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying sql.DB", zap.Error(err))
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Failed to ping MySQL", zap.Error(err))
	}

	logger.Info("Connected to MySQL successfully")

	if b.cfg.IsDevelopment() {
		if err := mysql.AutoMigrate(context.Background(), db); err != nil {
			logger.Fatal("Failed to auto migrate", zap.Error(err))
		}
	}

	uowFactory := mysql.NewUnitOfWorkFactory(db, retry.FromAppConfig(b.cfg))

	return db, sqlDB, repositories{
		users:       mysql.NewUserRepository(db),
		orders:      mysql.NewOrderRepository(db),
		catalog:     mysql.NewCatalogRepository(db, logger.Get()),
		constraints: mysql.NewConstraintRepository(db),
		newUow:      func() shared.UnitOfWork { return uowFactory.New() },
	}
}

func (b *AppBuilder) initMocks() repositories {
	logger.Info("Using in-memory persistence layer")

	constraints := mocks.NewMockConstraintRepository()
	constraints.SeedDefault()

	return repositories{
		users:       mocks.NewMockUserRepository(),
		orders:      mocks.NewMockOrderRepository(),
		catalog:     mocks.NewMockCatalogRepository(),
		constraints: constraints,
		newUow:      func() shared.UnitOfWork { return mocks.NewMockUnitOfWork() },
	}
}
