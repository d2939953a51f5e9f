package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/repository"
)

// ProductService handles product business logic
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create validates and persists a single product
func (s *productService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:  in.Name,
		Price: in.Price,
		Stock: in.StockOrDefault(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product",
			slog.String("name", in.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
		slog.String("price", product.Price.String()),
	)

	return product, nil
}

// GetByID retrieves a product by ID
func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// List retrieves all products
func (s *productService) List(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}
