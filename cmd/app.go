package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/api"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/config"
	"github.com/BoobaLeBricoleur/LaCantiniere-sub001/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the assembled application, ready to serve.
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
}

// Run serves HTTP until SIGINT/SIGTERM, then drains in-flight requests
// within the configured shutdown timeout.
func (a *App) Run() error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
		return err
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Closing database failed", zap.Error(err))
			}
		}
	}

	logger.Info("Server stopped")
	return logger.Sync()
}

// GetEngine exposes the gin engine for tests.
func (a *App) GetEngine() http.Handler {
	return a.router.GetEngine()
}
