package repository

import (
	"context"
	"errors"

	"carrental/internal/domain/entity"
)

// ErrCustomerNotFound is returned when a customer lookup matches no row.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// FindByID retrieves a single customer by ID, whether active or not.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindAll retrieves all active customers.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// FindAllIncludingInactive retrieves every customer, archived ones included.
	FindAllIncludingInactive(ctx context.Context) ([]*entity.Customer, error)

	// FindInactive retrieves only archived customers.
	FindInactive(ctx context.Context) ([]*entity.Customer, error)

	// SearchByName retrieves active customers whose name contains the given
	// substring.
	SearchByName(ctx context.Context, name string) ([]*entity.Customer, error)

	// Create persists a new customer and assigns its ID.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer.
	Update(ctx context.Context, customer *entity.Customer) error

	// SetActive flips the soft-delete flag of a customer.
	SetActive(ctx context.Context, id int64, isActive bool) error
}
