package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
)

func seededRepos() (*mockCustomerRepository, *mockProductRepository) {
	customerRepo := &mockCustomerRepository{
		customers: []*models.Customer{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Phone: "+1234567890"},
		},
	}
	productRepo := &mockProductRepository{
		products: []*models.Product{
			{ID: 1, Name: "Phone", Price: decimal.RequireFromString("299.99"), Stock: 50},
			{ID: 2, Name: "Tablet", Price: decimal.RequireFromString("499.99"), Stock: 30},
		},
	}
	return customerRepo, productRepo
}

func TestOrderService_Create(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{}
	queueClient := &mockQueueClient{}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, queueClient, testLogger())

	order, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: 1,
		ProductIDs: []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 299.99 + 499.99 must be exactly 799.98
	if !order.TotalAmount.Equal(decimal.RequireFromString("799.98")) {
		t.Errorf("expected total 799.98, got %s", order.TotalAmount)
	}
	if order.OrderDate.IsZero() {
		t.Error("expected order date assigned at creation")
	}
	if order.Customer == nil || order.Customer.Name != "John Doe" {
		t.Errorf("expected nested customer, got %+v", order.Customer)
	}
	if len(order.Products) != 2 {
		t.Fatalf("expected 2 nested products, got %d", len(order.Products))
	}
	if order.Products[0].Name != "Phone" || order.Products[1].Name != "Tablet" {
		t.Errorf("products out of order: %s, %s", order.Products[0].Name, order.Products[1].Name)
	}
	if len(orderRepo.orders) != 1 {
		t.Errorf("expected 1 persisted order, got %d", len(orderRepo.orders))
	}
}

func TestOrderService_Create_EnqueuesConfirmation(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{}
	queueClient := &mockQueueClient{}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, queueClient, testLogger())

	order, err := svc.Create(context.Background(), CreateOrderInput{CustomerID: 1, ProductIDs: []int64{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(queueClient.published) != 1 {
		t.Fatalf("expected 1 queued notification, got %d", len(queueClient.published))
	}
	if queueClient.published[0].OrderID != order.ID {
		t.Errorf("notification references wrong order: %d", queueClient.published[0].OrderID)
	}
}

func TestOrderService_Create_EnqueueFailureDoesNotFailOrder(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{}
	queueClient := &mockQueueClient{publishErr: errors.New("redis down")}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, queueClient, testLogger())

	if _, err := svc.Create(context.Background(), CreateOrderInput{CustomerID: 1, ProductIDs: []int64{1}}); err != nil {
		t.Fatalf("order creation must survive enqueue failure: %v", err)
	}
	if len(orderRepo.orders) != 1 {
		t.Errorf("expected order persisted, got %d", len(orderRepo.orders))
	}
}

func TestOrderService_Create_NoProducts(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, nil, testLogger())

	_, err := svc.Create(context.Background(), CreateOrderInput{CustomerID: 1})

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNoProductsSelected {
		t.Fatalf("expected NO_PRODUCTS_SELECTED, got: %v", err)
	}
	if len(orderRepo.orders) != 0 {
		t.Error("no order may be persisted on failure")
	}
}

func TestOrderService_Create_InvalidCustomer(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, nil, testLogger())

	_, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: 999999,
		ProductIDs: []int64{1},
	})

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeInvalidCustomerID {
		t.Fatalf("expected INVALID_CUSTOMER_ID, got: %v", err)
	}
	if len(orderRepo.orders) != 0 {
		t.Error("no order may be persisted on failure")
	}
}

func TestOrderService_Create_InvalidProduct(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, nil, testLogger())

	// One valid reference does not save the operation: any missing
	// product fails the whole order
	_, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: 1,
		ProductIDs: []int64{1, 42},
	})

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeInvalidProductID {
		t.Fatalf("expected INVALID_PRODUCT_ID, got: %v", err)
	}
	if len(orderRepo.orders) != 0 {
		t.Error("no order may be persisted on failure")
	}
}

func TestOrderService_Create_DuplicateProductReferences(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, nil, testLogger())

	order, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: 1,
		ProductIDs: []int64{1, 1, 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Duplicates collapse to a single reference
	if len(order.Products) != 2 {
		t.Errorf("expected 2 distinct products, got %d", len(order.Products))
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("799.98")) {
		t.Errorf("expected total 799.98, got %s", order.TotalAmount)
	}
}

func TestOrderService_Create_StoreFailure(t *testing.T) {
	customerRepo, productRepo := seededRepos()
	orderRepo := &mockOrderRepository{createErr: errors.New("store unavailable")}
	queueClient := &mockQueueClient{}
	svc := NewOrderService(orderRepo, customerRepo, productRepo, queueClient, testLogger())

	_, err := svc.Create(context.Background(), CreateOrderInput{CustomerID: 1, ProductIDs: []int64{1}})
	if err == nil {
		t.Fatal("expected error from store failure")
	}
	if models.IsValidationError(err) {
		t.Error("store failure must not be reported as a validation failure")
	}
	if len(queueClient.published) != 0 {
		t.Error("no notification may be queued for a failed order")
	}
}
