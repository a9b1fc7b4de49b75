package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SahniNitish/HCI-Project/internal/api"
	"github.com/SahniNitish/HCI-Project/internal/api/handlers"
	"github.com/SahniNitish/HCI-Project/internal/repository"
	"github.com/SahniNitish/HCI-Project/internal/service"
	"github.com/SahniNitish/HCI-Project/pkg/auth"
	"github.com/SahniNitish/HCI-Project/pkg/config"
	"github.com/SahniNitish/HCI-Project/pkg/logger"
	"github.com/SahniNitish/HCI-Project/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting expense tracker service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	insightRepo := repository.NewInsightRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	llmService, err := service.NewLLMService(ctx, &cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	categorizer := service.NewCategorizer(llmService, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, categorizer, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, appLogger)
	dashboardService := service.NewDashboardService(expenseRepo, appLogger)
	advisorService := service.NewAdvisorService(llmService, expenseRepo, budgetRepo, insightRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appLogger)
	advisorHandler := handlers.NewAdvisorHandler(advisorService, appLogger)

	// Setup router
	app := api.SetupRouter(cfg, authHandler, expenseHandler, budgetHandler, dashboardHandler, advisorHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
