package service

import (
	"github.com/shopspring/decimal"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
)

// CreateCustomerInput represents a request to create a customer
type CreateCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Validate performs field-level validation on the input.
// Email uniqueness is checked against the store separately.
func (in *CreateCustomerInput) Validate() error {
	if in.Name == "" {
		return models.ErrInvalidInput("name is required")
	}
	if in.Email == "" {
		return models.ErrInvalidInput("email is required")
	}
	if in.Phone != "" && !models.IsValidPhone(in.Phone) {
		return models.ErrInvalidPhoneFormat()
	}
	return nil
}

// CreateProductInput represents a request to create a product.
// Stock is optional and defaults to 0 when omitted.
type CreateProductInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock,omitempty"`
}

// Validate performs field-level validation on the input
func (in *CreateProductInput) Validate() error {
	if in.Name == "" {
		return models.ErrInvalidInput("name is required")
	}
	if !in.Price.IsPositive() {
		return models.ErrInvalidPrice()
	}
	if in.Stock != nil && *in.Stock < 0 {
		return models.ErrNegativeStock()
	}
	return nil
}

// StockOrDefault returns the requested stock, or 0 when omitted
func (in *CreateProductInput) StockOrDefault() int {
	if in.Stock == nil {
		return 0
	}
	return *in.Stock
}

// CreateOrderInput represents a request to create an order
type CreateOrderInput struct {
	CustomerID int64   `json:"customer_id"`
	ProductIDs []int64 `json:"product_ids"`
}

// Validate performs field-level validation on the input.
// Referential existence is resolved against the store by the service.
func (in *CreateOrderInput) Validate() error {
	if len(in.ProductIDs) == 0 {
		return models.ErrNoProductsSelected()
	}
	return nil
}
