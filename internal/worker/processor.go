package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/queue"
	"github.com/alxcrm/graphql-crm-backend/internal/repository"
)

// NotificationProcessor processes order-confirmation jobs from the queue
type NotificationProcessor struct {
	orderRepo   repository.OrderRepository
	queueClient queue.Client
	sender      NotificationSender
	maxRetries  int
	logger      *slog.Logger
}

// NewNotificationProcessor creates a new notification processor
func NewNotificationProcessor(
	orderRepo repository.OrderRepository,
	queueClient queue.Client,
	sender NotificationSender,
	maxRetries int,
	logger *slog.Logger,
) *NotificationProcessor {
	return &NotificationProcessor{
		orderRepo:   orderRepo,
		queueClient: queueClient,
		sender:      sender,
		maxRetries:  maxRetries,
		logger:      logger,
	}
}

// Process handles a single order-confirmation job
func (p *NotificationProcessor) Process(ctx context.Context, job *models.NotificationJob) error {
	order, err := p.orderRepo.GetByID(ctx, job.OrderID)
	if err != nil {
		p.logger.Error("failed to fetch order",
			slog.Int64("order_id", job.OrderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	content := ConfirmationMessage(order)

	p.logger.Info("processing order confirmation",
		slog.Int64("order_id", order.ID),
		slog.String("recipient", order.Customer.Email),
	)

	if err := p.sender.Send(ctx, order.Customer.Email, content); err != nil {
		p.logger.Warn("confirmation send failed",
			slog.Int64("order_id", order.ID),
			slog.Int("attempt", job.Attempt),
			slog.String("error", err.Error()),
		)
		return p.handleFailure(ctx, job, err)
	}

	p.logger.Info("order confirmation sent",
		slog.Int64("order_id", order.ID),
		slog.String("recipient", order.Customer.Email),
	)

	return nil
}

// handleFailure re-enqueues failed jobs until the retry budget runs out
func (p *NotificationProcessor) handleFailure(ctx context.Context, job *models.NotificationJob, sendErr error) error {
	if job.Attempt+1 >= p.maxRetries {
		p.logger.Error("order confirmation dropped after max retries",
			slog.Int64("order_id", job.OrderID),
			slog.Int("attempts", job.Attempt+1),
		)
		return fmt.Errorf("confirmation failed after %d attempts: %w", job.Attempt+1, sendErr)
	}

	retry := &models.NotificationJob{
		OrderID: job.OrderID,
		Attempt: job.Attempt + 1,
	}

	if err := p.queueClient.Publish(ctx, retry); err != nil {
		p.logger.Error("failed to re-enqueue confirmation",
			slog.Int64("order_id", job.OrderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to re-enqueue confirmation: %w", err)
	}

	return nil
}

// ConfirmationMessage renders the order-confirmation text for a customer
func ConfirmationMessage(order *models.Order) string {
	return fmt.Sprintf(
		"Hi %s, your order #%d totalling %s has been received.",
		order.Customer.Name,
		order.ID,
		order.TotalAmount.StringFixed(2),
	)
}
