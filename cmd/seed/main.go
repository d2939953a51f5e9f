package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alxcrm/graphql-crm-backend/internal/config"
	"github.com/alxcrm/graphql-crm-backend/internal/db"
	"github.com/alxcrm/graphql-crm-backend/internal/repository"
	"github.com/alxcrm/graphql-crm-backend/internal/service"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("seeding CRM database")

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Ensure schema exists
	if err := database.Migrate(ctx); err != nil {
		logger.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed through the services so validation applies
	customerSvc := service.NewCustomerService(repository.NewCustomerRepository(database.DB), logger)
	productSvc := service.NewProductService(repository.NewProductRepository(database.DB), logger)

	customers := []service.CreateCustomerInput{
		{Name: "John Doe", Email: "john@example.com", Phone: "+1234567890"},
	}

	stock := func(n int) *int { return &n }
	products := []service.CreateProductInput{
		{Name: "Phone", Price: decimal.RequireFromString("299.99"), Stock: stock(50)},
		{Name: "Tablet", Price: decimal.RequireFromString("499.99"), Stock: stock(30)},
	}

	for _, in := range customers {
		if _, err := customerSvc.Create(ctx, in); err != nil {
			logger.Warn("skipping customer seed",
				slog.String("email", in.Email),
				slog.String("error", err.Error()),
			)
		}
	}

	for _, in := range products {
		if _, err := productSvc.Create(ctx, in); err != nil {
			logger.Warn("skipping product seed",
				slog.String("name", in.Name),
				slog.String("error", err.Error()),
			)
		}
	}

	logger.Info("database seeded successfully")
}
