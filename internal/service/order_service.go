package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/queue"
	"github.com/alxcrm/graphql-crm-backend/internal/repository"
)

// OrderService handles order business logic
type OrderService interface {
	// Create resolves the referenced customer and products, computes
	// the total amount and persists the order. Any referential failure
	// fails the whole operation; no partial order is created.
	Create(ctx context.Context, in CreateOrderInput) (*models.Order, error)

	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	queueClient  queue.Client
	logger       *slog.Logger
}

// NewOrderService creates a new order service. queueClient may be nil,
// in which case no confirmation notifications are enqueued.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	queueClient queue.Client,
	logger *slog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		queueClient:  queueClient,
		logger:       logger,
	}
}

// Create creates an order from resolved customer and product references
func (s *orderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCustomerID(strconv.FormatInt(in.CustomerID, 10))
		}
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	// Duplicate references resolve to a single product; the total
	// counts each distinct product once.
	products := make([]*models.Product, 0, len(in.ProductIDs))
	total := decimal.Zero
	seen := make(map[int64]bool, len(in.ProductIDs))

	for _, productID := range in.ProductIDs {
		if seen[productID] {
			continue
		}
		seen[productID] = true

		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, models.ErrInvalidProductID(strconv.FormatInt(productID, 10))
			}
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}

		products = append(products, product)
		total = total.Add(product.Price)
	}

	order := &models.Order{
		CustomerID:  customer.ID,
		TotalAmount: total,
		OrderDate:   time.Now().UTC(),
		Customer:    customer,
		Products:    products,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("failed to create order",
			slog.Int64("customer_id", customer.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("customer_id", customer.ID),
		slog.Int("products", len(products)),
		slog.String("total_amount", total.String()),
	)

	s.enqueueConfirmation(ctx, order)

	return order, nil
}

// enqueueConfirmation queues an order-confirmation notification.
// Enqueue failures never fail the mutation.
func (s *orderService) enqueueConfirmation(ctx context.Context, order *models.Order) {
	if s.queueClient == nil {
		return
	}

	job := &models.NotificationJob{OrderID: order.ID}
	if err := s.queueClient.Publish(ctx, job); err != nil {
		s.logger.Warn("failed to enqueue order confirmation",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
}

// GetByID retrieves an order with nested customer and products
func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// List retrieves all orders
func (s *orderService) List(ctx context.Context) ([]*models.Order, error) {
	return s.orderRepo.List(ctx)
}
