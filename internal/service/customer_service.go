package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/repository"
)

// CustomerService handles customer business logic
type CustomerService interface {
	Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error)

	// BulkCreate validates and persists each input independently, in
	// order. Valid items are persisted even when others fail; each
	// failure yields one error string. The returned error is non-nil
	// only for store failures, never for validation failures.
	BulkCreate(ctx context.Context, inputs []CreateCustomerInput) ([]*models.Customer, []string, error)

	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create validates and persists a single customer
func (s *customerService) Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// Duplicate email check: case-sensitive exact match
	existing, err := s.customerRepo.GetByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, models.ErrEmailAlreadyExists()
	}

	customer := &models.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("failed to create customer",
			slog.String("email", in.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		slog.Int64("customer_id", customer.ID),
		slog.String("email", customer.Email),
	)

	return customer, nil
}

// BulkCreate creates customers with per-item failure isolation
func (s *customerService) BulkCreate(ctx context.Context, inputs []CreateCustomerInput) ([]*models.Customer, []string, error) {
	customers := []*models.Customer{}
	errs := []string{}

	for i, in := range inputs {
		customer, err := s.Create(ctx, in)
		if err != nil {
			if !models.IsValidationError(err) {
				// Store failure: stop here, earlier successes stand
				return customers, errs, err
			}
			errs = append(errs, bulkErrorMessage(i, in, err))
			continue
		}
		customers = append(customers, customer)
	}

	s.logger.Info("bulk customer creation completed",
		slog.Int("requested", len(inputs)),
		slog.Int("created", len(customers)),
		slog.Int("failed", len(errs)),
	)

	return customers, errs, nil
}

// GetByID retrieves a customer by ID
func (s *customerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// List retrieves all customers
func (s *customerService) List(ctx context.Context) ([]*models.Customer, error) {
	return s.customerRepo.List(ctx)
}

// bulkErrorMessage identifies the failed record by email, falling back
// to its position when no email was given
func bulkErrorMessage(index int, in CreateCustomerInput, err error) string {
	if in.Email != "" {
		return fmt.Sprintf("customer %s: %s", in.Email, err.Error())
	}
	return fmt.Sprintf("customer at index %d: %s", index, err.Error())
}
