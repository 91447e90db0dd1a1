// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. "Delete" operations flip the entity's active
// flag instead of removing rows, preserving historical referential integrity.
package repository

import (
	"context"
	"errors"

	"carrental/internal/domain/entity"
)

// ErrCarNotFound is returned when a car lookup matches no row.
var ErrCarNotFound = errors.New("car not found")

// CarRepository defines the standard operations for car persistence.
type CarRepository interface {
	// FindByID retrieves a single car by its ID, whether active or not.
	FindByID(ctx context.Context, id int64) (*entity.Car, error)

	// FindAll retrieves all active cars.
	FindAll(ctx context.Context) ([]*entity.Car, error)

	// FindAllIncludingInactive retrieves every car, archived ones included.
	FindAllIncludingInactive(ctx context.Context) ([]*entity.Car, error)

	// FindInactive retrieves only archived cars.
	FindInactive(ctx context.Context) ([]*entity.Car, error)

	// SearchByBrand retrieves active cars whose brand contains the given
	// substring.
	SearchByBrand(ctx context.Context, brand string) ([]*entity.Car, error)

	// Create persists a new car and assigns its ID.
	Create(ctx context.Context, car *entity.Car) error

	// Update modifies an existing car.
	Update(ctx context.Context, car *entity.Car) error

	// SetActive flips the soft-delete flag of a car.
	SetActive(ctx context.Context, id int64, isActive bool) error
}
