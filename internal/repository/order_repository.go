package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create persists the order and its product references in a single
	// transaction. order.Products must already be resolved.
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
}

// orderRepository implements OrderRepository using PostgreSQL
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts an order and its product links transactionally
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (customer_id, total_amount, order_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	err = tx.QueryRowContext(
		ctx,
		query,
		order.CustomerID,
		order.TotalAmount,
		order.OrderDate,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	linkQuery := `
		INSERT INTO order_products (order_id, product_id, position)
		VALUES ($1, $2, $3)`

	for i, product := range order.Products {
		if _, err := tx.ExecContext(ctx, linkQuery, order.ID, product.ID, i); err != nil {
			return fmt.Errorf("failed to link product %d to order: %w", product.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetByID retrieves an order with its customer and products resolved
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.total_amount, o.order_date,
		       c.name, c.email, c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`

	order := &models.Order{Customer: &models.Customer{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.TotalAmount,
		&order.OrderDate,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Customer.Phone,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("order with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	order.Customer.ID = order.CustomerID

	products, err := r.loadProducts(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Products = products

	return order, nil
}

// List retrieves all orders with nested data, ordered by ID
func (r *orderRepository) List(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.total_amount, o.order_date,
		       c.name, c.email, c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order := &models.Order{Customer: &models.Customer{}}
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.TotalAmount,
			&order.OrderDate,
			&order.Customer.Name,
			&order.Customer.Email,
			&order.Customer.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		order.Customer.ID = order.CustomerID
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for _, order := range orders {
		products, err := r.loadProducts(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Products = products
	}

	return orders, nil
}

// loadProducts fetches an order's products in their original position
func (r *orderRepository) loadProducts(ctx context.Context, orderID int64) ([]*models.Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY op.position`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Stock,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order products: %w", err)
	}

	return products, nil
}
