package service

import (
	"context"
	"fmt"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/queue"
)

// mockCustomerRepository is an in-memory CustomerRepository for tests
type mockCustomerRepository struct {
	customers  []*models.Customer
	failAfterN int // when > 0, Create fails once n customers exist
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if m.failAfterN > 0 && len(m.customers) >= m.failAfterN {
		return fmt.Errorf("store unavailable")
	}
	stored := *customer
	stored.ID = int64(len(m.customers) + 1)
	m.customers = append(m.customers, &stored)
	customer.ID = stored.ID
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
}

func (m *mockCustomerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with email %s not found", email))
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	return m.customers, nil
}

// mockProductRepository is an in-memory ProductRepository for tests
type mockProductRepository struct {
	products []*models.Product
}

func (m *mockProductRepository) Create(ctx context.Context, product *models.Product) error {
	stored := *product
	stored.ID = int64(len(m.products) + 1)
	m.products = append(m.products, &stored)
	product.ID = stored.ID
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("product with ID %d not found", id))
}

func (m *mockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	return m.products, nil
}

// mockOrderRepository is an in-memory OrderRepository for tests
type mockOrderRepository struct {
	orders    []*models.Order
	createErr error
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = int64(len(m.orders) + 1)
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("order with ID %d not found", id))
}

func (m *mockOrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	return m.orders, nil
}

// mockQueueClient records published jobs
type mockQueueClient struct {
	published  []*models.NotificationJob
	publishErr error
}

func (m *mockQueueClient) Publish(ctx context.Context, job *models.NotificationJob) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, job)
	return nil
}

func (m *mockQueueClient) Consume(ctx context.Context, handler queue.JobHandler, concurrency int) error {
	return nil
}

func (m *mockQueueClient) Close() error {
	return nil
}

func (m *mockQueueClient) Health(ctx context.Context) error {
	return nil
}
