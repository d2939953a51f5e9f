package models

import (
	"errors"
	"testing"
)

func TestCustomer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		wantCode string
	}{
		{
			name:     "valid with international phone",
			customer: Customer{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		},
		{
			name:     "valid with dashed phone",
			customer: Customer{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
		},
		{
			name:     "valid without phone",
			customer: Customer{Name: "Carol", Email: "carol@example.com"},
		},
		{
			name:     "missing name",
			customer: Customer{Email: "dave@example.com"},
			wantCode: CodeInvalidInput,
		},
		{
			name:     "missing email",
			customer: Customer{Name: "Dave"},
			wantCode: CodeInvalidInput,
		},
		{
			name:     "phone with letters",
			customer: Customer{Name: "Eve", Email: "eve@example.com", Phone: "invalid-phone"},
			wantCode: CodeInvalidPhoneFormat,
		},
		{
			name:     "phone with wrong dash grouping",
			customer: Customer{Name: "Frank", Email: "frank@example.com", Phone: "12-3456-7890"},
			wantCode: CodeInvalidPhoneFormat,
		},
		{
			name:     "phone with plus but too few digits",
			customer: Customer{Name: "Grace", Email: "grace@example.com", Phone: "+123"},
			wantCode: CodeInvalidPhoneFormat,
		},
		{
			name:     "bare digits without plus or dashes",
			customer: Customer{Name: "Heidi", Email: "heidi@example.com", Phone: "1234567890"},
			wantCode: CodeInvalidPhoneFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("expected valid, got error: %v", err)
				}
				return
			}

			var appErr *AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got: %v", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(ErrEmailAlreadyExists()) {
		t.Error("expected duplicate email to be a validation error")
	}
	if !IsValidationError(ErrNoProductsSelected()) {
		t.Error("expected empty product list to be a validation error")
	}
	if IsValidationError(errors.New("connection refused")) {
		t.Error("expected plain error not to be a validation error")
	}
	if IsValidationError(ErrNotFoundWithMsg("customer not found")) {
		t.Error("expected not-found to not be a validation error")
	}
}
