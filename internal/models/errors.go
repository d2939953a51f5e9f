package models

import (
	"errors"
	"fmt"
)

// Common error types
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("operation conflicts with current state")
)

// Error codes surfaced to callers
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	CodeInvalidPhoneFormat = "INVALID_PHONE_FORMAT"
	CodeInvalidPrice       = "INVALID_PRICE"
	CodeNegativeStock      = "NEGATIVE_STOCK"
	CodeInvalidCustomerID  = "INVALID_CUSTOMER_ID"
	CodeInvalidProductID   = "INVALID_PRODUCT_ID"
	CodeNoProductsSelected = "NO_PRODUCTS_SELECTED"
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a per-field validation
// failure, as opposed to a store or infrastructure failure.
func IsValidationError(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case CodeInvalidInput, CodeEmailAlreadyExists, CodeInvalidPhoneFormat,
		CodeInvalidPrice, CodeNegativeStock, CodeInvalidCustomerID,
		CodeInvalidProductID, CodeNoProductsSelected:
		return true
	default:
		return false
	}
}

// ErrInvalidInput creates a generic validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
		Err:     ErrNotFound,
	}
}

// ErrConflictWithMsg creates a conflict error with custom message
func ErrConflictWithMsg(message string) error {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Err:     ErrConflict,
	}
}

// ErrEmailAlreadyExists signals a duplicate customer email
func ErrEmailAlreadyExists() error {
	return &AppError{
		Code:    CodeEmailAlreadyExists,
		Message: "Email already exists",
		Err:     ErrConflict,
	}
}

// ErrInvalidPhoneFormat signals a phone value outside the accepted patterns
func ErrInvalidPhoneFormat() error {
	return &AppError{
		Code:    CodeInvalidPhoneFormat,
		Message: "Invalid phone number format",
	}
}

// ErrInvalidPrice signals a non-positive product price
func ErrInvalidPrice() error {
	return &AppError{
		Code:    CodeInvalidPrice,
		Message: "Invalid price: must be greater than zero",
	}
}

// ErrNegativeStock signals a negative product stock value
func ErrNegativeStock() error {
	return &AppError{
		Code:    CodeNegativeStock,
		Message: "Invalid stock: cannot be negative",
	}
}

// ErrInvalidCustomerID signals an order referencing a missing customer
func ErrInvalidCustomerID(id string) error {
	return &AppError{
		Code:    CodeInvalidCustomerID,
		Message: fmt.Sprintf("Invalid customer ID: %s", id),
		Err:     ErrNotFound,
	}
}

// ErrInvalidProductID signals an order referencing a missing product
func ErrInvalidProductID(id string) error {
	return &AppError{
		Code:    CodeInvalidProductID,
		Message: fmt.Sprintf("Invalid product ID: %s", id),
		Err:     ErrNotFound,
	}
}

// ErrNoProductsSelected signals an order with an empty product list
func ErrNoProductsSelected() error {
	return &AppError{
		Code:    CodeNoProductsSelected,
		Message: "No products selected",
	}
}
