package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/ecommerce-api/config"
	applogger "github.com/kendall-kelly/ecommerce-api/logger"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/routes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	slowQueryThreshold = 200 * time.Millisecond
	shutdownTimeout    = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := applogger.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
}

// run owns the database handle for the lifetime of the server and releases
// it once the server has shut down
func run(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting E-Commerce API server...", zap.String("env", cfg.GoEnv))

	// Connect to database
	db, err := config.OpenDatabase(cfg.DatabaseURL, applogger.NewGormLogger(logger, slowQueryThreshold))
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()
	logger.Info("Database connection established successfully")

	// Create tables that do not exist yet
	if err := migrate(db); err != nil {
		return err
	}
	logger.Info("Database migration completed successfully")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(routes.Options{
		DB:                 db,
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server is running", zap.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// migrate creates or updates the users, products, orders and order_products tables
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
