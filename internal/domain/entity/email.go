package entity

import (
	"regexp"
	"strings"

	domainerrors "carrental/internal/domain/errors"
)

// emailPattern accepts the local@domain.tld shape without trying to implement
// the full RFC grammar.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is an immutable value object representing a validated email address.
// The zero value is invalid; always construct through NewEmail.
type Email struct {
	value string
}

// NewEmail validates and creates an Email. The input is trimmed before
// validation.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Email{}, domainerrors.NewDomainError("Email cannot be empty.")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, domainerrors.NewDomainError("Invalid email format.")
	}

	return Email{value: value}, nil
}

// String returns the address as entered (minus surrounding whitespace).
func (e Email) String() string {
	return e.value
}

// Equals reports whether two emails match case-insensitively.
func (e Email) Equals(other Email) bool {
	return strings.EqualFold(e.value, other.value)
}

// IsZero reports whether the email was never set.
func (e Email) IsZero() bool {
	return e.value == ""
}
