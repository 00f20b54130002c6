package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunargrid/internal/config"
	"lunargrid/internal/database"
	"lunargrid/internal/handlers"
	"lunargrid/internal/middleware"
	"lunargrid/internal/repositories"
	"lunargrid/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := runMigrations(cfg); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.CreateIndexes(); err != nil {
		slog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	e := buildServer(cfg, db)

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting lunargrid server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("Shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped gracefully")
}

func runMigrations(cfg *config.Config) error {
	sqlDB, err := database.OpenForMigrations(cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}
	if err := runner.RunMigrations(); err != nil {
		return err
	}
	return runner.LoadSeeds()
}

func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	aggregator := services.NewAggregationService(metrics)
	matrix := services.NewMatrixService(aggregator, metrics)
	workingSet := services.NewWorkingSet(metrics)
	confirmer := services.NewDeleteConfirmer(cfg.Grid.ConfirmDeletes)

	gridService := services.NewGridService(transactionRepo, categoryRepo, workingSet, aggregator, matrix)
	cellEditService := services.NewCellEditService(
		transactionRepo, categoryRepo, workingSet, aggregator, confirmer, metrics)

	gridHandler := handlers.NewGridHandler(gridService)
	cellHandler := handlers.NewCellHandler(cellEditService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiter(cfg.Grid.RateLimitPerSecond, cfg.Grid.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/grid", gridHandler.GetGrid)
	api.PUT("/grid/cell", cellHandler.SaveCell)
	api.DELETE("/transactions/:id", cellHandler.DeleteTransaction)

	return e
}
