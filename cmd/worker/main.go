package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alxcrm/graphql-crm-backend/internal/config"
	"github.com/alxcrm/graphql-crm-backend/internal/db"
	"github.com/alxcrm/graphql-crm-backend/internal/queue"
	"github.com/alxcrm/graphql-crm-backend/internal/repository"
	"github.com/alxcrm/graphql-crm-backend/internal/worker"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting CRM notification worker")

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

	// Initialize processor
	orderRepo := repository.NewOrderRepository(database.DB)
	sender := worker.NewMockSender(0.92)
	processor := worker.NewNotificationProcessor(
		orderRepo,
		queueClient,
		sender,
		cfg.Worker.MaxRetryCount,
		logger,
	)

	// Cancel consumption on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		logger.Info("shutting down worker", slog.String("signal", sig.String()))
		cancel()
	}()

	// Consume jobs until cancelled
	err = queueClient.Consume(ctx, processor.Process, cfg.Worker.Concurrency)
	if err != nil && err != context.Canceled {
		logger.Error("consumer stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("worker stopped gracefully")
}
