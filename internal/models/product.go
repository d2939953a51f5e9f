package models

import "github.com/shopspring/decimal"

// Product represents a sellable product
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// Validate performs field-level validation on product data
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidInput("name is required")
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice()
	}
	if p.Stock < 0 {
		return ErrNegativeStock()
	}
	return nil
}
