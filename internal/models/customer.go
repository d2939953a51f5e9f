package models

import "regexp"

// Accepted phone formats: international ("+1234567890") or dashed
// ("123-456-7890").
var (
	phoneIntlPattern   = regexp.MustCompile(`^\+[0-9]{7,15}$`)
	phoneDashedPattern = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)
)

// Customer represents a customer in the system
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Validate performs field-level validation on customer data.
// Email uniqueness is checked against the store by the service layer.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ErrInvalidInput("name is required")
	}
	if c.Email == "" {
		return ErrInvalidInput("email is required")
	}
	if c.Phone != "" && !IsValidPhone(c.Phone) {
		return ErrInvalidPhoneFormat()
	}
	return nil
}

// IsValidPhone checks a phone string against the accepted formats
func IsValidPhone(phone string) bool {
	return phoneIntlPattern.MatchString(phone) || phoneDashedPattern.MatchString(phone)
}
