package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/queue"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockOrderRepository serves a fixed set of orders
type mockOrderRepository struct {
	orders []*models.Order
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) error {
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
	published []*models.NotificationJob
}

func (m *mockQueueClient) Publish(ctx context.Context, job *models.NotificationJob) error {
	m.published = append(m.published, job)
	return nil
}

func (m *mockQueueClient) Consume(ctx context.Context, handler queue.JobHandler, concurrency int) error {
	return nil
}

func (m *mockQueueClient) Close() error                     { return nil }
func (m *mockQueueClient) Health(ctx context.Context) error { return nil }

// recordingSender captures sends and optionally fails
type recordingSender struct {
	sendErr    error
	recipients []string
	contents   []string
}

func (s *recordingSender) Send(ctx context.Context, recipient, content string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.recipients = append(s.recipients, recipient)
	s.contents = append(s.contents, content)
	return nil
}

func testOrder() *models.Order {
	return &models.Order{
		ID:          1,
		CustomerID:  1,
		TotalAmount: decimal.RequireFromString("799.98"),
		Customer:    &models.Customer{ID: 1, Name: "John Doe", Email: "john@example.com"},
		Products: []*models.Product{
			{ID: 1, Name: "Phone", Price: decimal.RequireFromString("299.99")},
			{ID: 2, Name: "Tablet", Price: decimal.RequireFromString("499.99")},
		},
	}
}

func TestNotificationProcessor_Process(t *testing.T) {
	orderRepo := &mockOrderRepository{orders: []*models.Order{testOrder()}}
	queueClient := &mockQueueClient{}
	sender := &recordingSender{}
	processor := NewNotificationProcessor(orderRepo, queueClient, sender, 3, testLogger())

	err := processor.Process(context.Background(), &models.NotificationJob{OrderID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.recipients) != 1 || sender.recipients[0] != "john@example.com" {
		t.Errorf("expected send to customer email, got %v", sender.recipients)
	}
	if !strings.Contains(sender.contents[0], "John Doe") || !strings.Contains(sender.contents[0], "799.98") {
		t.Errorf("confirmation should name the customer and total: %s", sender.contents[0])
	}
	if len(queueClient.published) != 0 {
		t.Error("successful send must not re-enqueue")
	}
}

func TestNotificationProcessor_Process_RetriesOnFailure(t *testing.T) {
	orderRepo := &mockOrderRepository{orders: []*models.Order{testOrder()}}
	queueClient := &mockQueueClient{}
	sender := &recordingSender{sendErr: errors.New("gateway timeout")}
	processor := NewNotificationProcessor(orderRepo, queueClient, sender, 3, testLogger())

	err := processor.Process(context.Background(), &models.NotificationJob{OrderID: 1, Attempt: 0})
	if err != nil {
		t.Fatalf("re-enqueued failure should not surface an error: %v", err)
	}

	if len(queueClient.published) != 1 {
		t.Fatalf("expected 1 re-enqueued job, got %d", len(queueClient.published))
	}
	if queueClient.published[0].Attempt != 1 {
		t.Errorf("expected attempt incremented to 1, got %d", queueClient.published[0].Attempt)
	}
}

func TestNotificationProcessor_Process_DropsAfterMaxRetries(t *testing.T) {
	orderRepo := &mockOrderRepository{orders: []*models.Order{testOrder()}}
	queueClient := &mockQueueClient{}
	sender := &recordingSender{sendErr: errors.New("gateway timeout")}
	processor := NewNotificationProcessor(orderRepo, queueClient, sender, 3, testLogger())

	err := processor.Process(context.Background(), &models.NotificationJob{OrderID: 1, Attempt: 2})
	if err == nil {
		t.Fatal("expected error once the retry budget is exhausted")
	}
	if len(queueClient.published) != 0 {
		t.Error("exhausted job must not be re-enqueued")
	}
}

func TestNotificationProcessor_Process_MissingOrder(t *testing.T) {
	orderRepo := &mockOrderRepository{}
	queueClient := &mockQueueClient{}
	sender := &recordingSender{}
	processor := NewNotificationProcessor(orderRepo, queueClient, sender, 3, testLogger())

	err := processor.Process(context.Background(), &models.NotificationJob{OrderID: 42})
	if err == nil {
		t.Fatal("expected error for missing order")
	}
	if len(sender.recipients) != 0 {
		t.Error("nothing should be sent for a missing order")
	}
}

func TestConfirmationMessage(t *testing.T) {
	message := ConfirmationMessage(testOrder())

	if !strings.Contains(message, "John Doe") {
		t.Errorf("message should greet the customer: %s", message)
	}
	if !strings.Contains(message, "#1") {
		t.Errorf("message should reference the order: %s", message)
	}
	if !strings.Contains(message, "799.98") {
		t.Errorf("message should state the total: %s", message)
	}
}
