package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alxcrm/graphql-crm-backend/internal/config"
	"github.com/alxcrm/graphql-crm-backend/internal/db"
	"github.com/alxcrm/graphql-crm-backend/internal/graph"
	"github.com/alxcrm/graphql-crm-backend/internal/handler"
	"github.com/alxcrm/graphql-crm-backend/internal/queue"
	"github.com/alxcrm/graphql-crm-backend/internal/repository"
	"github.com/alxcrm/graphql-crm-backend/internal/service"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting CRM API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to database
	database, err := db.New(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	// Ensure schema exists
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.Migrate(migrateCtx); err != nil {
		cancelMigrate()
		logger.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cancelMigrate()

	// Connect to Redis queue
	queueClient, err := queue.NewRedisClient(queue.RedisConfig{
		URL:       cfg.Queue.RedisURL,
		QueueName: cfg.Queue.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer queueClient.Close()

	logger.Info("connected to Redis queue")

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)

	// Initialize services
	customerSvc := service.NewCustomerService(customerRepo, logger)
	productSvc := service.NewProductService(productRepo, logger)
	orderSvc := service.NewOrderService(orderRepo, customerRepo, productRepo, queueClient, logger)

	// Build GraphQL schema
	schema, err := graph.NewSchema(&graph.Resolver{
		Customers: customerSvc,
		Products:  productSvc,
		Orders:    orderSvc,
	})
	if err != nil {
		logger.Error("failed to build GraphQL schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize handlers
	graphqlHandler := handler.NewGraphQLHandler(schema, logger)
	healthHandler := handler.NewHealthHandler(database.DB, queueClient, logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(handler.RecoveryMiddleware(logger))
	r.Use(handler.LoggingMiddleware(logger))
	r.Use(handler.CORSMiddleware)

	// Register routes
	r.Get("/health", healthHandler.Health)
	r.Post("/graphql", graphqlHandler.Query)

	// Create server
	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
