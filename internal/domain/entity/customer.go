package entity

import (
	"strings"

	domainerrors "carrental/internal/domain/errors"
)

// Customer represents a person who can rent cars. Like cars, customers are
// archived via the IsActive flag rather than removed.
type Customer struct {
	ID       int64
	Name     string
	Email    Email
	IsActive bool
}

// NewCustomer validates the input and creates a Customer pending persistence.
func NewCustomer(name string, email Email) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.NewDomainError("Name cannot be empty.")
	}
	if email.IsZero() {
		return nil, domainerrors.NewDomainError("Email is required.")
	}

	return &Customer{
		Name:     name,
		Email:    email,
		IsActive: true,
	}, nil
}
