package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer order referencing one or more products.
// TotalAmount is fixed at creation time and never recomputed.
type Order struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
	Customer    *Customer       `json:"customer,omitempty"`
	Products    []*Product      `json:"products,omitempty"`
}

// NotificationJob represents an order-confirmation job to be queued
type NotificationJob struct {
	OrderID int64 `json:"order_id"`
	Attempt int   `json:"attempt"`
}
